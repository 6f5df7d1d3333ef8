package tabler

import (
	"strconv"
	"strings"
)

type cellKind int

const (
	kindText cellKind = iota
	kindInt
	kindFloat
)

// Cell is one value in a table grid: an integer, a float, or text.
// Cells are immutable; construct them with [Int], [Float], or [Text].
type Cell struct {
	kind cellKind
	i    int64
	f    float64
	s    string
}

// Int returns an integer cell.
func Int(v int64) Cell { return Cell{kind: kindInt, i: v} }

// Float returns a floating-point cell.
func Float(v float64) Cell { return Cell{kind: kindFloat, f: v} }

// Text returns a text cell. The string may contain embedded newlines, which
// split the cell across display lines, and ANSI escape sequences, which are
// rendered verbatim but excluded from width measurement.
func Text(s string) Cell { return Cell{kind: kindText, s: s} }

// isNumber reports whether the cell is an Int or Float.
func (c Cell) isNumber() bool { return c.kind != kindText }

// lines returns the cell's display lines. Numbers are always a single line.
func (c Cell) lines() []string {
	if c.kind == kindText {
		return strings.Split(c.s, "\n")
	}
	return []string{c.numString()}
}

// numString returns the literal representation of a numeric cell: decimal
// digits for Int, the shortest round-tripping fixed-point form for Float
// (never exponent notation, and an integral float has no decimal point).
func (c Cell) numString() string {
	switch c.kind {
	case kindInt:
		return strconv.FormatInt(c.i, 10)
	case kindFloat:
		return strconv.FormatFloat(c.f, 'f', -1, 64)
	default:
		return c.s
	}
}

// precString returns a numeric cell rendered with exactly digits fractional
// digits, used when a decimal-aligned column needs uniform precision.
func (c Cell) precString(digits int) string {
	switch c.kind {
	case kindInt:
		s := strconv.FormatInt(c.i, 10)
		if digits > 0 {
			s += "." + strings.Repeat("0", digits)
		}
		return s
	case kindFloat:
		return strconv.FormatFloat(c.f, 'f', digits, 64)
	default:
		return c.s
	}
}

// fracDigits returns the number of digits after the decimal point in the
// cell's literal representation: zero for Int and Text.
func (c Cell) fracDigits() int {
	if c.kind != kindFloat {
		return 0
	}
	s := c.numString()
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return len(s) - dot - 1
}
