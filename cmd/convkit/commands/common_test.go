package commands

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn while capturing os.Stdout and returns the output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() {
		_ = w.Close()
		os.Stdout = old
	}()

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

// withStdin replaces os.Stdin with a pipe holding content for the rest of the test.
func withStdin(t *testing.T, content string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = old
		_ = r.Close()
	})
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s=%d\n", "x", 1)
	assert.Equal(t, "x=1\n", buf.String())
}

func TestCollectInputs(t *testing.T) {
	t.Run("positional arguments", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		require.NoError(t, fs.Parse([]string{"a", "b c"}))

		inputs, err := CollectInputs(fs, strings.NewReader("ignored\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b c"}, inputs)
	})

	t.Run("stdin lines", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		require.NoError(t, fs.Parse([]string{StdinArg}))

		inputs, err := CollectInputs(fs, strings.NewReader("one\ntwo words\n\nlast"))
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two words", "", "last"}, inputs)
	})

	t.Run("dash among other arguments is literal", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		require.NoError(t, fs.Parse([]string{"x", StdinArg}))

		inputs, err := CollectInputs(fs, strings.NewReader("ignored\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "-"}, inputs)
	})
}

func TestAddOutputFlags(t *testing.T) {
	var format string
	var quiet bool
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	addOutputFlags(fs, &format, &quiet)

	require.NoError(t, fs.Parse([]string{"--format", "json", "-q"}))
	assert.Equal(t, FormatJSON, format)
	assert.True(t, quiet)
}
