//go:build !integration

package cli

import (
	"bytes"
	"testing"

	"github.com/cellgraph/cellgraph/pkg/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParse_Plain(t *testing.T) {
	var out bytes.Buffer
	err := RunParse(ParseConfig{Formulas: []string{"A1+2*3", "B1"}, Style: StylePlain}, &out)
	require.NoError(t, err)

	expected := "A1+2*3\n" +
		"+\n" +
		"   A1\n" +
		"   *\n" +
		"      2\n" +
		"      3\n" +
		"\n" +
		"B1\n" +
		"B1\n"
	assert.Equal(t, expected, out.String())
}

func TestRunParse_Tree(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	require.NoError(t, RunParse(ParseConfig{Formulas: []string{"(A1+2)*3"}, Style: StyleTree}, &out))

	output := out.String()
	assert.Contains(t, output, "(A1+2)*3\n*\n", "formula then the tree root")
	assert.Contains(t, output, "A1")
	assert.Contains(t, output, "└──")
}

func TestRunParse_File(t *testing.T) {
	path := writeDataset(t, "formulas.txt", "=A1+B1\n\n=2*C3\n")

	var out bytes.Buffer
	require.NoError(t, RunParse(ParseConfig{File: path, Style: StylePlain}, &out))
	assert.Contains(t, out.String(), "=A1+B1\n+\n   A1\n   B1\n")
	assert.Contains(t, out.String(), "=2*C3\n*\n   2\n   C3\n")
}

func TestRunParse_Errors(t *testing.T) {
	t.Run("unknown style", func(t *testing.T) {
		err := RunParse(ParseConfig{Formulas: []string{"A1"}, Style: "fancy"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown style "fancy"`)
	})

	t.Run("no formulas", func(t *testing.T) {
		err := RunParse(ParseConfig{Style: StylePlain}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no formulas to parse")
	})

	t.Run("missing file", func(t *testing.T) {
		err := RunParse(ParseConfig{File: "does-not-exist.txt", Style: StylePlain}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open formula file")
	})

	t.Run("malformed formula does not stop the others", func(t *testing.T) {
		var out bytes.Buffer
		err := RunParse(ParseConfig{Formulas: []string{"A1+", "B1*2"}, Style: StylePlain}, &out)
		require.Error(t, err)
		assert.ErrorIs(t, err, formula.ErrMalformedFormula)
		assert.Contains(t, err.Error(), "1 of 2 formulas failed to parse")
		assert.Contains(t, out.String(), "B1*2\n*\n   B1\n   2\n")
	})
}
