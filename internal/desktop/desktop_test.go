package desktop

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `[Desktop Entry]
Type=Application
Name=Firefox
Name[pt]=Raposa
Comment=Browse the web
Exec=firefox %u
Icon=firefox
`

	entry, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "Firefox", entry.Name)
	assert.Equal(t, "firefox %u", entry.Exec)
	assert.True(t, entry.Complete())
}

func TestParseLastOccurrenceWins(t *testing.T) {
	input := `Name=First
Exec=first-cmd
Name=Second
Exec=second-cmd %U
`

	entry, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "Second", entry.Name)
	assert.Equal(t, "second-cmd %U", entry.Exec)
}

func TestParseIncomplete(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing exec", "Name=Firefox\n"},
		{"missing name", "Exec=firefox\n"},
		{"empty file", ""},
		{"only comments", "# nothing here\n[Desktop Entry]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.False(t, entry.Complete())
		})
	}
}

func TestParseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/usr/share/applications/code.desktop"
	content := "[Desktop Entry]\nName=Visual Studio Code\nExec=code %F\n"
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))

	entry, err := ParseFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "Visual Studio Code", entry.Name)

	_, err = ParseFile(fs, "/nonexistent.desktop")
	assert.Error(t, err)
}

func TestSplitExec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "plain command",
			input: "firefox",
			want:  []string{"firefox"},
		},
		{
			name:  "drops placeholder",
			input: "app %U --flag",
			want:  []string{"app", "--flag"},
		},
		{
			name:  "multiple placeholders",
			input: "soffice %U %F --writer",
			want:  []string{"soffice", "--writer"},
		},
		{
			name:  "env wrapper preserved",
			input: "env GDK_BACKEND=wayland firefox %u",
			want:  []string{"env", "GDK_BACKEND=wayland", "firefox"},
		},
		{
			name:    "only placeholders",
			input:   "%U %F",
			wantErr: true,
		},
		{
			name:    "empty line",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			argv, err := SplitExec(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, argv)
		})
	}
}
