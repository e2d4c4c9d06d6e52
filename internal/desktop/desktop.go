package desktop

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// Entry holds the two fields of a .desktop file that matter for launching.
// Name is the display name shown to users, Exec the raw launch command line.
type Entry struct {
	Name string
	Exec string
}

// Complete reports whether both required fields were present
func (e *Entry) Complete() bool {
	return e.Name != "" && e.Exec != ""
}

// Parse extracts Name= and Exec= from a .desktop file. Lines are read in
// order and the last occurrence of each key wins. Localized keys such as
// Name[pt]= and everything else in the file are ignored.
func Parse(r io.Reader) (*Entry, error) {
	entry := &Entry{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if value, ok := strings.CutPrefix(line, "Name="); ok {
			entry.Name = value
		} else if value, ok := strings.CutPrefix(line, "Exec="); ok {
			entry.Exec = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan desktop file: %w", err)
	}

	return entry, nil
}

// ParseFile reads and parses a .desktop file from the given filesystem
func ParseFile(fs afero.Fs, path string) (*Entry, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open desktop file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// SplitExec splits an Exec line into argv, dropping field-code placeholders
// like %U and %f. Returns an error if nothing remains after filtering.
func SplitExec(execLine string) ([]string, error) {
	var argv []string
	for _, token := range strings.Fields(execLine) {
		if strings.HasPrefix(token, "%") {
			continue
		}
		argv = append(argv, token)
	}

	if len(argv) == 0 {
		return nil, fmt.Errorf("empty Exec line")
	}

	return argv, nil
}
