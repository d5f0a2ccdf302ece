package text

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// EncodeLatin1 converts s to ISO 8859-1, the encoding of the standard
// PostScript and XFig fonts. Runes outside Latin-1 become '?'.
func EncodeLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}

// PostScriptString returns s as a PostScript string literal, including the
// enclosing parentheses. Bytes outside printable ASCII are written as
// octal escapes.
func PostScriptString(s string) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, c := range EncodeLatin1(s) {
		switch {
		case c == '(' || c == ')' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c >= 0x7f:
			writeOctal(&b, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// FIGString returns s encoded for an XFig text object: Latin-1, with
// backslashes doubled and non-ASCII bytes as octal escapes. The caller
// appends the \001 terminator.
func FIGString(s string) string {
	var b strings.Builder
	for _, c := range EncodeLatin1(s) {
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c < 0x20 || c >= 0x7f:
			writeOctal(&b, c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func writeOctal(b *strings.Builder, c byte) {
	b.WriteByte('\\')
	o := strconv.FormatUint(uint64(c), 8)
	b.WriteString(strings.Repeat("0", 3-len(o)))
	b.WriteString(o)
}
