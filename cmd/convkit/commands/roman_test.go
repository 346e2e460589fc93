package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestHandleRoman_Text(t *testing.T) {
	output := captureStdout(t, func() {
		require.NoError(t, HandleRoman([]string{"XII", "MCMXCIV"}))
	})

	assert.Contains(t, output, "INPUT")
	assert.Contains(t, output, `"XII"`)
	assert.Contains(t, output, "12")
	assert.Contains(t, output, "1994")
}

func TestHandleRoman_Quiet(t *testing.T) {
	output := captureStdout(t, func() {
		require.NoError(t, HandleRoman([]string{"-q", "IV", "IIII", "MMMCMXCIX"}))
	})
	assert.Equal(t, "4\n4\n3999\n", output)
}

func TestHandleRoman_Strict(t *testing.T) {
	var err error
	output := captureStdout(t, func() {
		err = HandleRoman([]string{"--strict", "--format", "json", "IV", "IIII"})
	})
	require.Error(t, err)
	assert.Equal(t, "1 of 2 inputs failed", err.Error())

	var records []romanRecord
	require.NoError(t, json.Unmarshal([]byte(output), &records))
	require.Len(t, records, 2)

	assert.Equal(t, 4, records[0].Value)
	require.NotNil(t, records[0].Canonical)
	assert.True(t, *records[0].Canonical)
	assert.Empty(t, records[0].Error)

	assert.Equal(t, "IIII", records[1].Input)
	assert.Zero(t, records[1].Value)
	assert.Contains(t, records[1].Error, "grammar error")
}

func TestHandleRoman_PermissiveFlagsNonCanonical(t *testing.T) {
	output := captureStdout(t, func() {
		require.NoError(t, HandleRoman([]string{"--format", "yaml", "VV"}))
	})

	var records []romanRecord
	require.NoError(t, yaml.Unmarshal([]byte(output), &records))
	require.Len(t, records, 1)
	assert.Equal(t, 10, records[0].Value)
	require.NotNil(t, records[0].Canonical)
	assert.False(t, *records[0].Canonical)
}

func TestHandleRoman_Encode(t *testing.T) {
	var err error
	output := captureStdout(t, func() {
		err = HandleRoman([]string{"--encode", "-q", "1994", "4000", "abc"})
	})
	require.Error(t, err)
	assert.Equal(t, "2 of 3 inputs failed", err.Error())
	assert.Equal(t, "MCMXCIV\n", output)
}

func TestHandleRoman_InvalidSymbolsStillPrintAll(t *testing.T) {
	var err error
	output := captureStdout(t, func() {
		err = HandleRoman([]string{"X", "", "ABC"})
	})
	require.Error(t, err)
	assert.Equal(t, "2 of 3 inputs failed", err.Error())
	assert.Contains(t, output, "10")
	assert.Contains(t, output, "error: empty input")
	assert.Contains(t, output, "error: invalid symbol 'A' at position 0")
}

func TestHandleRoman_Stdin(t *testing.T) {
	withStdin(t, "I\nII\n  III  \n")

	output := captureStdout(t, func() {
		require.NoError(t, HandleRoman([]string{"-q", "-"}))
	})
	assert.Equal(t, "1\n2\n3\n", output)
}

func TestHandleRoman_Errors(t *testing.T) {
	err := HandleRoman([]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least one input")

	err = HandleRoman([]string{"--format", "toml", "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
