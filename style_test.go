package tabler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabler"
)

func TestParseStyle(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tabler.Style
		wantErr require.ErrorAssertionFunc
	}{
		"plain":       {input: "plain", want: tabler.StylePlain, wantErr: require.NoError},
		"simple":      {input: "simple", want: tabler.StyleSimple, wantErr: require.NoError},
		"github":      {input: "github", want: tabler.StyleGithub, wantErr: require.NoError},
		"grid":        {input: "grid", want: tabler.StyleGrid, wantErr: require.NoError},
		"fancy":       {input: "fancy", want: tabler.StyleFancy, wantErr: require.NoError},
		"presto":      {input: "presto", want: tabler.StylePresto, wantErr: require.NoError},
		"fancygithub": {input: "fancygithub", want: tabler.StyleFancyGithub, wantErr: require.NoError},
		"fancypresto": {input: "fancypresto", want: tabler.StyleFancyPresto, wantErr: require.NoError},
		"rounded":     {input: "rounded", want: tabler.StyleRounded, wantErr: require.NoError},
		"heavy":       {input: "heavy", want: tabler.StyleHeavy, wantErr: require.NoError},
		"double":      {input: "double", want: tabler.StyleDouble, wantErr: require.NoError},
		"unknown":     {input: "markdown", want: "", wantErr: require.Error},
		"empty":       {input: "", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabler.ParseStyle(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStyleUnknownSentinel(t *testing.T) {
	t.Parallel()
	_, err := tabler.ParseStyle("dotted")
	assert.ErrorIs(t, err, tabler.ErrUnknownStyle)
	assert.Contains(t, err.Error(), "dotted")
}

func TestStyles(t *testing.T) {
	t.Parallel()
	got := tabler.Styles()
	assert.Equal(t, []tabler.Style{
		tabler.StylePlain, tabler.StyleSimple, tabler.StyleGithub,
		tabler.StyleGrid, tabler.StyleFancy, tabler.StylePresto,
		tabler.StyleFancyGithub, tabler.StyleFancyPresto,
		tabler.StyleRounded, tabler.StyleHeavy, tabler.StyleDouble,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, tabler.StylePlain, tabler.Styles()[0])
}

func TestStyleString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "fancy", tabler.StyleFancy.String())
	assert.Equal(t, "plain", tabler.StylePlain.String())
}
