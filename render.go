package tabler

import (
	"strings"
)

// render assembles the final text block. Every emitted line is trimmed of
// trailing spaces, so borderless styles never carry invisible padding.
func (t *Table) render(widths []int, specs []colSpec) string {
	format := styleFormats[t.style]
	hasHeaders := t.headers != nil
	var lines []string

	if format.lineAbove != nil && !(hasHeaders && format.hideLineAboveIfHeader) {
		lines = append(lines, t.borderLine(format.lineAbove, widths))
	}
	if hasHeaders {
		cells := make([]Cell, len(t.headers))
		for i, h := range t.headers {
			cells[i] = Text(h)
		}
		lines = append(lines, t.rowLines(format.headerRow, cells, widths, specs)...)
		if format.lineBelowHeader != nil {
			lines = append(lines, t.borderLine(format.lineBelowHeader, widths))
		}
	}
	for i, row := range t.rows {
		if i > 0 && format.lineBetweenRows != nil {
			lines = append(lines, t.borderLine(format.lineBetweenRows, widths))
		}
		lines = append(lines, t.rowLines(format.dataRow, row, widths, specs)...)
	}
	if format.lineBelow != nil && !(hasHeaders && format.hideLineBelowIfHeader) {
		lines = append(lines, t.borderLine(format.lineBelow, widths))
	}
	return strings.Join(lines, "\n")
}

// borderLine draws one horizontal rule: a fill run per column joined by the
// junction glyph, framed by the begin/end glyphs. With zero columns only the
// frame glyphs remain.
func (t *Table) borderLine(spec *lineSpec, widths []int) string {
	segs := make([]string, len(widths))
	for i, w := range widths {
		segs[i] = strings.Repeat(spec.fill, w)
	}
	line := strings.TrimRight(spec.begin+strings.Join(segs, spec.sep)+spec.end, " ")
	if t.borderFn != nil {
		line = t.borderFn(line)
	}
	return line
}

// rowLines renders one logical row (data or header) as its physical output
// lines. The row occupies as many lines as its tallest cell; cells with
// fewer lines are padded with blanks below their content.
func (t *Table) rowLines(spec rowSpec, cells []Cell, widths []int, specs []colSpec) []string {
	split := make([][]string, len(cells))
	count := 1
	for i, c := range cells {
		split[i] = t.cellLines(c, specs[i])
		if len(split[i]) > count {
			count = len(split[i])
		}
	}

	begin, sep, end := spec.begin, spec.sep, spec.end
	if t.borderFn != nil {
		begin, sep, end = t.borderFn(begin), t.borderFn(sep), t.borderFn(end)
	}

	out := make([]string, 0, count)
	for ln := 0; ln < count; ln++ {
		segs := make([]string, len(cells))
		for col := range cells {
			if ln >= len(split[col]) {
				segs[col] = strings.Repeat(" ", widths[col])
				continue
			}
			segs[col] = t.pad(split[col][ln], widths[col], specs[col])
		}
		out = append(out, strings.TrimRight(begin+strings.Join(segs, sep)+end, " "))
	}
	return out
}

// cellLines returns the display lines a cell contributes. Numbers in a
// decimal-aligned column are rendered with the column's uniform precision.
func (t *Table) cellLines(c Cell, spec colSpec) []string {
	if c.isNumber() && t.decimalCol(spec) {
		return []string{c.precString(spec.digits)}
	}
	return c.lines()
}

// pad aligns one cell line to the column width. The alignment is chosen per
// column: numeric columns use the numeric alignment, everything else the
// string alignment. Padding never truncates; content wider than the column
// (guarded against, layout prevents it) is emitted as is.
func (t *Table) pad(line string, width int, spec colSpec) string {
	align := t.strAlign
	if spec.numeric {
		align = t.numAlign
	}
	gap := width - DisplayWidth(line)
	if gap < 0 {
		return line
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + line
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + line + strings.Repeat(" ", gap-left)
	case AlignDecimal:
		return blankZeroFraction(strings.Repeat(" ", gap) + line)
	default:
		return line + strings.Repeat(" ", gap)
	}
}

// blankZeroFraction replaces an all-zero fraction (decimal point included)
// with spaces, so decimal-aligned integers read as integers while keeping
// their padded width.
func blankZeroFraction(s string) string {
	dot := strings.LastIndexByte(s, '.')
	if dot < 0 {
		return s
	}
	for i := dot + 1; i < len(s); i++ {
		if s[i] != '0' {
			return s
		}
	}
	return s[:dot] + strings.Repeat(" ", len(s)-dot)
}
