package ui

import (
	"os"
	"testing"

	"github.com/fatih/color"
)

func TestInitColorsRespectsNoColor(t *testing.T) {
	old := color.NoColor
	defer func() { color.NoColor = old }()

	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	InitColors()

	if !color.NoColor {
		t.Error("expected colors disabled with NO_COLOR set")
	}
}

func TestColorizeSource(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	tests := []struct {
		input string
		want  string
	}{
		{"desktop", "desktop"},
		{"file", "file"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		if got := ColorizeSource(tt.input); got != tt.want {
			t.Errorf("ColorizeSource(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
