// Package tabler renders grids of typed cell values as aligned text tables
// with styled borders.
//
// A table is built from rows of [Cell] values (constructed with [Int],
// [Float], and [Text]), optional column headers, and a [Style] naming the
// border theme. [Table.Tabulate] returns the rendered block as a single
// string with no trailing newline:
//
//	table := tabler.New(tabler.StyleFancy, [][]tabler.Cell{
//		{tabler.Text("answer"), tabler.Int(42)},
//		{tabler.Text("pi"), tabler.Float(3.1415)},
//	}, []string{"strings", "numbers"})
//	out, err := table.Tabulate()
//
// which produces:
//
//	╒═══════════╤═══════════╕
//	│ strings   │   numbers │
//	╞═══════════╪═══════════╡
//	│ answer    │   42      │
//	├───────────┼───────────┤
//	│ pi        │    3.1415 │
//	╘═══════════╧═══════════╛
//
// # Cells
//
// Text cells may span multiple display lines with embedded newlines, and may
// carry ANSI escape sequences: the sequences are written through to the
// output verbatim but contribute nothing to width measurement, so colored
// content never breaks alignment. [DisplayWidth] exposes the measurement
// used throughout, counting East-Asian wide and fullwidth runes as two
// columns.
//
// # Alignment
//
// String columns default to [AlignLeft] and numeric columns to
// [AlignDecimal], which right-aligns numbers on their decimal point: every
// number in the column is rendered with the column's maximum fractional
// digit count, and an all-zero fraction is blanked so integers stay
// integer-looking while the points line up. [Table.SetAlign] overrides both
// defaults.
//
// # Styles
//
// Styles form a closed set selected by name; see [Styles] for the list and
// [ParseStyle] for converting a CLI flag string. Border glyphs can be
// post-processed (for example ANSI-colored) with [Table.SetBorderStyle].
//
// # Errors
//
// The only rendering error is [ErrShapeMismatch], returned when a row's cell
// count disagrees with the headers or with the other rows. [ParseStyle]
// reports unknown names with [ErrUnknownStyle]. Both are sentinel errors for
// use with [errors.Is].
package tabler
