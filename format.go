package board

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v the way coordinates are written in every output
// format: at most four decimals, no trailing zeros, and "0" for negative
// zero.
func FormatNumber(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// pointString renders "x sep y".
func pointString(x, y float64, sep string) string {
	return FormatNumber(x) + sep + FormatNumber(y)
}

// writeStrings writes each string to w. Write errors are sticky in the
// buffered writers the document layer hands to emitters, so they are
// reported once, at flush time.
func writeStrings(w io.Writer, parts ...string) {
	for _, s := range parts {
		_, _ = io.WriteString(w, s)
	}
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeXML escapes text for use in SVG content and attribute values.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

var tikzEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"{", `\{`,
	"}", `\}`,
	"$", `\$`,
	"&", `\&`,
	"#", `\#`,
	"%", `\%`,
	"_", `\_`,
	"^", `\^{}`,
	"~", `\~{}`,
)

// escapeTikZ escapes TeX special characters in node text.
func escapeTikZ(s string) string {
	return tikzEscaper.Replace(s)
}
