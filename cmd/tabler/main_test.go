package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabler"
)

func TestParseCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tabler.Int(42), parseCell("42"))
	assert.Equal(t, tabler.Int(-7), parseCell("-7"))
	assert.Equal(t, tabler.Float(3.1415), parseCell("3.1415"))
	assert.Equal(t, tabler.Float(100), parseCell("1e2"))
	assert.Equal(t, tabler.Text("spam"), parseCell("spam"))
	assert.Equal(t, tabler.Text("1.2.3"), parseCell("1.2.3"))
}

func TestParseRows(t *testing.T) {
	t.Parallel()
	in := strings.NewReader("item qty\nspam 42\neggs 451\n")
	rows, headers, err := parseRows(in, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"item", "qty"}, headers)
	assert.Equal(t, [][]tabler.Cell{
		{tabler.Text("spam"), tabler.Int(42)},
		{tabler.Text("eggs"), tabler.Int(451)},
	}, rows)
}

func TestParseRowsNoHeaderSkipsBlankLines(t *testing.T) {
	t.Parallel()
	in := strings.NewReader("spam 41.9999\n\neggs 451\n")
	rows, headers, err := parseRows(in, false)
	require.NoError(t, err)
	assert.Nil(t, headers)
	assert.Equal(t, [][]tabler.Cell{
		{tabler.Text("spam"), tabler.Float(41.9999)},
		{tabler.Text("eggs"), tabler.Int(451)},
	}, rows)
}

func TestParseYAML(t *testing.T) {
	t.Parallel()
	in := strings.NewReader(`
headers: [strings, numbers]
rows:
  - [answer, 42]
  - [pi, 3.1415]
`)
	rows, headers, err := parseYAML(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"strings", "numbers"}, headers)
	assert.Equal(t, [][]tabler.Cell{
		{tabler.Text("answer"), tabler.Int(42)},
		{tabler.Text("pi"), tabler.Float(3.1415)},
	}, rows)
}

func TestParseYAMLInvalid(t *testing.T) {
	t.Parallel()
	_, _, err := parseYAML(strings.NewReader("rows: {not: a list"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml")
}

func TestYAMLCellTypes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tabler.Int(1), yamlCell(1))
	assert.Equal(t, tabler.Int(2), yamlCell(int64(2)))
	assert.Equal(t, tabler.Float(0.5), yamlCell(0.5))
	assert.Equal(t, tabler.Text("x"), yamlCell("x"))
	assert.Equal(t, tabler.Text("true"), yamlCell(true))
}

func TestRunRendersTable(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("item qty\nspam 42\neggs 451\n"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--header", "--style", "fancy"})
	require.NoError(t, cmd.Execute())
	want := strings.Join([]string{
		"╒════════╤═══════╕",
		"│ item   │   qty │",
		"╞════════╪═══════╡",
		"│ spam   │    42 │",
		"├────────┼───────┤",
		"│ eggs   │   451 │",
		"╘════════╧═══════╛",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestRunUnknownStyle(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("a b\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--style", "dotted"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, tabler.ErrUnknownStyle)
}

func TestRunUnknownColor(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("a b\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--color", "chartreuse"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chartreuse")
}

func TestRunRaggedInput(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("a b\nc\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, tabler.ErrShapeMismatch)
}
