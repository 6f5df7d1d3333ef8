package tabler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShapeMismatch is returned by [Table.Tabulate] when a row's cell count
// differs from the header's or from the other rows'. Ragged grids are a
// caller bug; they are never padded or truncated silently.
var ErrShapeMismatch = errors.New("row shape mismatch")

// minHeaderPad is the minimum number of display columns a header reserves
// beyond its own width, so header labels never sit flush against the rules.
const minHeaderPad = 2

// Table holds a grid of cells, optional headers, and rendering options.
// The zero value is not useful; construct with [New].
type Table struct {
	style    Style
	strAlign Alignment
	numAlign Alignment
	rows     [][]Cell
	headers  []string
	borderFn func(string) string
}

// New returns a table rendering rows with the given style. headers may be
// nil, in which case no header block is rendered. Alignment defaults are
// [AlignLeft] for string columns and [AlignDecimal] for numeric columns.
func New(style Style, rows [][]Cell, headers []string) *Table {
	return &Table{
		style:    style,
		strAlign: AlignLeft,
		numAlign: AlignDecimal,
		rows:     rows,
		headers:  headers,
	}
}

// SetAlign overrides the alignment for string columns and numeric columns.
// strAlign must not be [AlignDecimal]: decimal alignment is only meaningful
// for numbers, and passing it here panics.
func (t *Table) SetAlign(strAlign, numAlign Alignment) {
	if strAlign == AlignDecimal {
		panic("tabler: AlignDecimal is only valid for numeric columns")
	}
	t.strAlign = strAlign
	t.numAlign = numAlign
}

// SetBorderStyle installs a function applied to every border fragment before
// it is written, typically to ANSI-color the frame. Cell content is never
// passed through fn, so measurement and alignment are unaffected.
func (t *Table) SetBorderStyle(fn func(string) string) {
	t.borderFn = fn
}

// colSpec captures what layout needs to know about one column: whether every
// cell in it is a number, and the largest fractional digit count among them.
type colSpec struct {
	numeric bool
	digits  int
}

// Tabulate renders the table. It returns [ErrShapeMismatch] before producing
// any output if the grid is ragged; rendering itself cannot fail.
func (t *Table) Tabulate() (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}

	cols := t.colCount()
	specs := t.colSpecs(cols)
	widths := t.colWidths(cols, specs)

	return t.render(widths, specs), nil
}

// validate enforces the shape precondition: every row has the same cell
// count, matching the headers when present.
func (t *Table) validate() error {
	want := -1
	if t.headers != nil {
		want = len(t.headers)
	} else if len(t.rows) > 0 {
		want = len(t.rows[0])
	}
	for i, row := range t.rows {
		if len(row) != want {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrShapeMismatch, i, len(row), want)
		}
	}
	return nil
}

func (t *Table) colCount() int {
	if t.headers != nil {
		return len(t.headers)
	}
	if len(t.rows) > 0 {
		return len(t.rows[0])
	}
	return 0
}

func (t *Table) colSpecs(cols int) []colSpec {
	specs := make([]colSpec, cols)
	for col := range specs {
		numeric := true
		digits := 0
		for _, row := range t.rows {
			c := row[col]
			if !c.isNumber() {
				numeric = false
				continue
			}
			if d := c.fracDigits(); d > digits {
				digits = d
			}
		}
		specs[col] = colSpec{numeric: numeric, digits: digits}
	}
	return specs
}

// decimalCol reports whether the column renders its numbers with uniform
// precision for decimal-point alignment.
func (t *Table) decimalCol(spec colSpec) bool {
	return spec.numeric && t.numAlign == AlignDecimal && spec.digits > 0
}

// colWidths computes each column's width: the maximum display width of any
// cell line in the column, with headers contributing their widest line plus
// minHeaderPad.
func (t *Table) colWidths(cols int, specs []colSpec) []int {
	widths := make([]int, cols)
	for col := range widths {
		max := 0
		if t.headers != nil {
			for _, line := range strings.Split(t.headers[col], "\n") {
				if w := DisplayWidth(line) + minHeaderPad; w > max {
					max = w
				}
			}
		}
		for _, row := range t.rows {
			c := row[col]
			if c.isNumber() {
				s := c.numString()
				if t.decimalCol(specs[col]) {
					s = c.precString(specs[col].digits)
				}
				if w := DisplayWidth(s); w > max {
					max = w
				}
				continue
			}
			for _, line := range c.lines() {
				if w := DisplayWidth(line); w > max {
					max = w
				}
			}
		}
		widths[col] = max
	}
	return widths
}
