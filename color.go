package board

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for unrecognized input.
var ErrInvalidColor = errors.New("board: invalid color")

// Color is an 8-bit per channel RGBA color with straight (non-premultiplied)
// alpha. The zero value is Null: the absence of a color, used for unfilled
// shapes and invisible pens.
type Color struct {
	R, G, B, A uint8
	valid      bool
}

// Null is the absence of color. A shape whose fill color is Null is not filled.
var Null = Color{}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
	Gray    = RGB(128, 128, 128)
	Silver  = RGB(190, 190, 190)
	Purple  = RGB(160, 32, 240)
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255, valid: true}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a, valid: true}
}

// FromColor converts a standard color.Color to Color.
// A nil color converts to Null.
func FromColor(c color.Color) Color {
	if c == nil {
		return Null
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// ColorByName returns the SVG 1.1 color keyword named name
// (case-insensitive), e.g. "steelblue".
func ColorByName(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Null, false
	}
	return RGBA(c.R, c.G, c.B, c.A), true
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
// Malformed input yields opaque black.
func Hex(hex string) Color {
	c, err := parseHexColor(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseColor parses a color keyword, a hex string, or "none" (Null).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "none", "null", "":
		return Null, nil
	}
	if c, ok := ColorByName(s); ok {
		return c, nil
	}
	c, err := parseHexColor(s)
	if err != nil {
		return Null, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

func parseHexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return Null, ErrInvalidColor
	}
	return RGBA(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// HSL creates a color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(channel((r+m)*255), channel((g+m)*255), channel((b+m)*255))
}

// IsNull reports whether c is the absence of color.
func (c Color) IsNull() bool {
	return !c.valid
}

// RGBA implements color.Color. Null reports fully transparent black.
func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.valid {
		return 0, 0, 0, 0
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// WithAlpha returns c with its alpha replaced. Null stays Null.
func (c Color) WithAlpha(a uint8) Color {
	if !c.valid {
		return c
	}
	c.A = a
	return c
}

// Brightness returns c with its RGB channels multiplied by f and clamped.
func (c Color) Brightness(f float64) Color {
	if !c.valid {
		return c
	}
	return RGBA(
		channel(float64(c.R)*f),
		channel(float64(c.G)*f),
		channel(float64(c.B)*f),
		c.A,
	)
}

// Lerp performs linear interpolation between two colors.
// Interpolating with Null yields the other color.
func (c Color) Lerp(other Color, t float64) Color {
	switch {
	case !c.valid:
		return other
	case !other.valid:
		return c
	}
	lerp := func(a, b uint8) uint8 {
		return channel(float64(a) + (float64(b)-float64(a))*t)
	}
	return RGBA(lerp(c.R, other.R), lerp(c.G, other.G), lerp(c.B, other.B), lerp(c.A, other.A))
}

// MeanColor returns the channel-wise arithmetic mean of colors, each channel
// rounded to the nearest integer. Null entries are ignored.
func MeanColor(colors ...Color) Color {
	var r, g, b, a, n float64
	for _, c := range colors {
		if !c.valid {
			continue
		}
		r += float64(c.R)
		g += float64(c.G)
		b += float64(c.B)
		a += float64(c.A)
		n++
	}
	if n == 0 {
		return Null
	}
	return RGBA(channel(r/n), channel(g/n), channel(b/n), channel(a/n))
}

// HexString returns "#rrggbb". Null returns "none".
func (c Color) HexString() string {
	if !c.valid {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns a human-readable description of the color.
func (c Color) String() string {
	if !c.valid {
		return "Color(null)"
	}
	return fmt.Sprintf("Color(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}

// PostScriptRGB returns the three operands of a PostScript setrgbcolor.
func (c Color) PostScriptRGB() string {
	return FormatNumber(float64(c.R)/255) + " " +
		FormatNumber(float64(c.G)/255) + " " +
		FormatNumber(float64(c.B)/255)
}

// svgString returns an SVG paint value.
func (c Color) svgString() string {
	if !c.valid {
		return "none"
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// svgOpacity returns the alpha channel as an SVG opacity in [0, 1].
func (c Color) svgOpacity() string {
	if !c.valid {
		return "0"
	}
	return FormatNumber(float64(c.A) / 255)
}

// tikzString returns an inline xcolor specification.
func (c Color) tikzString() string {
	if !c.valid {
		return "none"
	}
	return fmt.Sprintf("{rgb,255:red,%d;green,%d;blue,%d}", c.R, c.G, c.B)
}

// channel rounds x to the nearest integer and restricts it to [0, 255].
func channel(x float64) uint8 {
	x = math.Round(x)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
