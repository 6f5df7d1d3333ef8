package tabler

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal columns s occupies. ANSI escape
// sequences (CSI sequences such as color codes, and OSC sequences) contribute
// zero width; East-Asian wide and fullwidth runes contribute two columns. A
// sequence that is opened but never terminated extends to the end of the
// string, so the remainder also counts as zero width.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}

const (
	esc = '\x1b'
	bel = '\a'
)

// stripANSI removes ANSI escape sequences from s, leaving printable content
// (including newlines) untouched.
func stripANSI(s string) string {
	if !strings.ContainsRune(s, esc) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != esc {
			b.WriteByte(s[i])
			i++
			continue
		}
		i++ // consume ESC
		if i >= len(s) {
			break
		}
		switch s[i] {
		case '[':
			// CSI: parameter and intermediate bytes, then a final byte
			// in 0x40-0x7e.
			i++
			for i < len(s) {
				c := s[i]
				i++
				if c >= 0x40 && c <= 0x7e {
					break
				}
			}
		case ']':
			// OSC: terminated by BEL or ESC \.
			i++
			for i < len(s) {
				if s[i] == bel {
					i++
					break
				}
				if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
					i += 2
					break
				}
				i++
			}
		default:
			// Two-byte escape (e.g. ESC c).
			i++
		}
	}
	return b.String()
}
