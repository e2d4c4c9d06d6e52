package ui

import (
	"github.com/schollz/progressbar/v3"
)

// Spinner wraps progressbar/v3 for unknown-length scans
type Spinner struct {
	bar *progressbar.ProgressBar
}

// NewSpinner creates an indeterminate spinner with a description
func NewSpinner(description string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(10),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &Spinner{bar: bar}
}

// Tick advances the spinner by n visited entries
func (s *Spinner) Tick(n int) {
	_ = s.bar.Add(n)
}

// Describe changes the spinner description
func (s *Spinner) Describe(description string) {
	s.bar.Describe(description)
}

// Finish clears the spinner from the terminal
func (s *Spinner) Finish() {
	_ = s.bar.Clear()
	_ = s.bar.Finish()
}
