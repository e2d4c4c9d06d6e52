package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/quantmind-br/gopen/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchCmd(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cmd := NewSearchCmd(&config.Config{}, &logger)

	assert.Equal(t, "search <app name>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("json"))
	assert.NotNil(t, cmd.Flags().Lookup("full"))
	assert.NotNil(t, cmd.Flags().Lookup("limit"))
}

func TestSearchCmdJSONNoMatches(t *testing.T) {
	logger := zerolog.New(io.Discard)
	cmd := NewSearchCmd(&config.Config{}, &logger)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--json", "zzz-gopen-test-nonexistent"})

	require.NoError(t, cmd.Execute())

	var results []searchResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	assert.Empty(t, results)
}

func TestSearchCmdRequiresAppName(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cmd := NewSearchCmd(&config.Config{}, &logger)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
