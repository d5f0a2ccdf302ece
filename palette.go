package board

import (
	"fmt"
	"io"
)

// figStandardColors are the 32 predefined XFig colors, indexed by their
// color number.
var figStandardColors = [32]Color{
	RGB(0, 0, 0),       // black
	RGB(0, 0, 255),     // blue
	RGB(0, 255, 0),     // green
	RGB(0, 255, 255),   // cyan
	RGB(255, 0, 0),     // red
	RGB(255, 0, 255),   // magenta
	RGB(255, 255, 0),   // yellow
	RGB(255, 255, 255), // white
	RGB(0, 0, 144),     // blue4
	RGB(0, 0, 176),     // blue3
	RGB(0, 0, 208),     // blue2
	RGB(135, 206, 255), // ltblue
	RGB(0, 144, 0),     // green4
	RGB(0, 176, 0),     // green3
	RGB(0, 208, 0),     // green2
	RGB(0, 144, 144),   // cyan4
	RGB(0, 176, 176),   // cyan3
	RGB(0, 208, 208),   // cyan2
	RGB(144, 0, 0),     // red4
	RGB(176, 0, 0),     // red3
	RGB(208, 0, 0),     // red2
	RGB(144, 0, 144),   // magenta4
	RGB(176, 0, 176),   // magenta3
	RGB(208, 0, 208),   // magenta2
	RGB(128, 48, 0),    // brown4
	RGB(160, 64, 0),    // brown3
	RGB(192, 96, 0),    // brown2
	RGB(255, 128, 128), // pink4
	RGB(255, 160, 160), // pink3
	RGB(255, 192, 192), // pink2
	RGB(255, 224, 224), // pink
	RGB(255, 215, 0),   // gold
}

// firstUserColor is the first XFig color number available for user colors.
const firstUserColor = 32

// Palette maps colors to XFig color numbers for one document. Standard
// colors keep their predefined numbers; any other color gets the next
// free number on first sight. Alpha is ignored.
type Palette struct {
	index map[Color]int
	user  []Color
}

// NewPalette returns a palette holding the XFig standard colors.
func NewPalette() *Palette {
	p := &Palette{index: make(map[Color]int, len(figStandardColors))}
	for i, c := range figStandardColors {
		p.index[c] = i
	}
	return p
}

// Index returns the color number of c, registering it if needed.
// Null maps to -1, the XFig default color.
func (p *Palette) Index(c Color) int {
	if c.IsNull() {
		return -1
	}
	c = c.WithAlpha(255)
	if i, ok := p.index[c]; ok {
		return i
	}
	i := firstUserColor + len(p.user)
	p.index[c] = i
	p.user = append(p.user, c)
	return i
}

// Len returns the number of user colors registered so far.
func (p *Palette) Len() int {
	return len(p.user)
}

// UserColors returns the registered user colors in number order.
func (p *Palette) UserColors() []Color {
	return append([]Color(nil), p.user...)
}

// WriteTo writes one color pseudo-object "0 idx #rrggbb" per user color.
func (p *Palette) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, c := range p.user {
		n, err := fmt.Fprintf(w, "0 %d %s\n", firstUserColor+i, c.HexString())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
