package tabler

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle is returned by [ParseStyle] for unrecognized style names.
var ErrUnknownStyle = errors.New("unknown style")

// Style names a border theme. The set of styles is closed; themes differ
// only in glyph choice and in which separator lines they draw.
type Style string

const (
	StylePlain       Style = "plain"       // no borders, two-space gutters
	StyleSimple      Style = "simple"      // dashed rule under the header
	StyleGithub      Style = "github"      // GitHub-flavored Markdown pipes
	StyleGrid        Style = "grid"        // +-+ ASCII frame, row separators
	StyleFancy       Style = "fancy"       // Unicode box drawing, row separators
	StylePresto      Style = "presto"      // pipes without outer frame
	StyleFancyGithub Style = "fancygithub" // Unicode pipes, no outer frame
	StyleFancyPresto Style = "fancypresto" // Unicode presto
	StyleRounded     Style = "rounded"     // ╭─╮ rounded corners
	StyleHeavy       Style = "heavy"       // ┏━┓ heavy box drawing
	StyleDouble      Style = "double"      // ╔═╗ double box drawing
)

var styles = []Style{
	StylePlain, StyleSimple, StyleGithub, StyleGrid, StyleFancy,
	StylePresto, StyleFancyGithub, StyleFancyPresto,
	StyleRounded, StyleHeavy, StyleDouble,
}

// String returns the style name.
func (s Style) String() string { return string(s) }

// Styles returns all supported style names.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle parses a style name as accepted from a CLI flag.
func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Alignment controls how cell content is padded to the column width.
type Alignment int

const (
	// AlignLeft pads content on the right.
	AlignLeft Alignment = iota
	// AlignCenter splits padding evenly, extra space on the right.
	AlignCenter
	// AlignRight pads content on the left.
	AlignRight
	// AlignDecimal right-aligns numbers on their decimal point. Only valid
	// for numeric columns.
	AlignDecimal
)

// lineSpec describes one horizontal rule: begin and end glyphs, the fill
// repeated across each column, and the junction between columns.
type lineSpec struct {
	begin, fill, sep, end string
}

// rowSpec describes how cell segments of a data or header line are joined.
type rowSpec struct {
	begin, sep, end string
}

// A table is laid out as:
//
//	--- lineAbove -------
//	    headerRow
//	--- lineBelowHeader -
//	    dataRow
//	--- lineBetweenRows -
//	    ... more dataRows ...
//	--- lineBelow -------
//
// nil line specs are not drawn.
type tableFormat struct {
	lineAbove       *lineSpec
	lineBelowHeader *lineSpec
	lineBetweenRows *lineSpec
	lineBelow       *lineSpec
	headerRow       rowSpec
	dataRow         rowSpec

	// simple-style rules replace the outer frame only on headerless tables
	hideLineAboveIfHeader bool
	hideLineBelowIfHeader bool
}

var (
	dashedLine = &lineSpec{"", "-", "  ", ""}
	gapRow     = rowSpec{"", "  ", ""}
	pipeRow    = rowSpec{"| ", " | ", " |"}
	boxRow     = rowSpec{"│ ", " │ ", " │"}
	boxMidLine = &lineSpec{"├─", "─", "─┼─", "─┤"}
)

var styleFormats = map[Style]tableFormat{
	StylePlain: {
		headerRow: gapRow,
		dataRow:   gapRow,
	},
	StyleSimple: {
		lineAbove:             dashedLine,
		lineBelowHeader:       dashedLine,
		lineBelow:             dashedLine,
		headerRow:             gapRow,
		dataRow:               gapRow,
		hideLineAboveIfHeader: true,
		hideLineBelowIfHeader: true,
	},
	StyleGithub: {
		lineAbove:             &lineSpec{"|-", "-", "-|-", "-|"},
		lineBelowHeader:       &lineSpec{"|-", "-", "-|-", "-|"},
		headerRow:             pipeRow,
		dataRow:               pipeRow,
		hideLineAboveIfHeader: true,
	},
	StyleGrid: {
		lineAbove:       &lineSpec{"+-", "-", "-+-", "-+"},
		lineBelowHeader: &lineSpec{"+=", "=", "=+=", "=+"},
		lineBetweenRows: &lineSpec{"+-", "-", "-+-", "-+"},
		lineBelow:       &lineSpec{"+-", "-", "-+-", "-+"},
		headerRow:       pipeRow,
		dataRow:         pipeRow,
	},
	StyleFancy: {
		lineAbove:       &lineSpec{"╒═", "═", "═╤═", "═╕"},
		lineBelowHeader: &lineSpec{"╞═", "═", "═╪═", "═╡"},
		lineBetweenRows: boxMidLine,
		lineBelow:       &lineSpec{"╘═", "═", "═╧═", "═╛"},
		headerRow:       boxRow,
		dataRow:         boxRow,
	},
	StylePresto: {
		lineBelowHeader: &lineSpec{"-", "-", "-+-", "-"},
		headerRow:       rowSpec{" ", " | ", " "},
		dataRow:         rowSpec{" ", " | ", " "},
	},
	StyleFancyGithub: {
		lineBelowHeader: boxMidLine,
		headerRow:       boxRow,
		dataRow:         boxRow,
	},
	StyleFancyPresto: {
		lineBelowHeader: &lineSpec{"", "─", "─┼─", ""},
		headerRow:       rowSpec{"", " │ ", ""},
		dataRow:         rowSpec{"", " │ ", ""},
	},
	StyleRounded: {
		lineAbove:       &lineSpec{"╭─", "─", "─┬─", "─╮"},
		lineBelowHeader: boxMidLine,
		lineBelow:       &lineSpec{"╰─", "─", "─┴─", "─╯"},
		headerRow:       boxRow,
		dataRow:         boxRow,
	},
	StyleHeavy: {
		lineAbove:       &lineSpec{"┏━", "━", "━┳━", "━┓"},
		lineBelowHeader: &lineSpec{"┣━", "━", "━╋━", "━┫"},
		lineBelow:       &lineSpec{"┗━", "━", "━┻━", "━┛"},
		headerRow:       rowSpec{"┃ ", " ┃ ", " ┃"},
		dataRow:         rowSpec{"┃ ", " ┃ ", " ┃"},
	},
	StyleDouble: {
		lineAbove:       &lineSpec{"╔═", "═", "═╦═", "═╗"},
		lineBelowHeader: &lineSpec{"╠═", "═", "═╬═", "═╣"},
		lineBelow:       &lineSpec{"╚═", "═", "═╩═", "═╝"},
		headerRow:       rowSpec{"║ ", " ║ ", " ║"},
		dataRow:         rowSpec{"║ ", " ║ ", " ║"},
	},
}
