package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/board"
	"github.com/gogpu/board/text"
)

// ErrInvalidStyle wraps every error about the content of a style file.
var ErrInvalidStyle = errors.New("document: invalid style")

// Style is a set of shape defaults and page settings read from a TOML
// file:
//
//	[page]
//	size = "A4"        # or "BoundingBox", "Letter", ...
//	margin = 10.0      # millimeters
//	unit = "mm"        # pt, mm, cm, in
//	background = "white"
//
//	[shape]
//	line_width = 0.5
//	pen = "black"
//	fill = "none"
//	line_style = "dash"
//	line_cap = "round"
//	line_join = "miter"
//
//	[text]
//	font = "Helvetica-Bold"
//	size = 12.0
type Style struct {
	Defaults   board.Defaults
	Page       PageSize
	Margin     float64
	Unit       Unit
	Background board.Color
	Font       text.Font
	FontSize   float64
}

// DefaultStyleSettings returns the style used when a file sets nothing.
func DefaultStyleSettings() *Style {
	return &Style{
		Defaults: board.DefaultStyle(),
		Page:     BoundingBox,
		Font:     text.Helvetica,
		FontSize: 10,
	}
}

type styleFile struct {
	Page struct {
		Size       *string  `toml:"size"`
		Margin     *float64 `toml:"margin"`
		Unit       *string  `toml:"unit"`
		Background *string  `toml:"background"`
	} `toml:"page"`
	Shape struct {
		LineWidth *float64 `toml:"line_width"`
		Pen       *string  `toml:"pen"`
		Fill      *string  `toml:"fill"`
		LineStyle *string  `toml:"line_style"`
		LineCap   *string  `toml:"line_cap"`
		LineJoin  *string  `toml:"line_join"`
	} `toml:"shape"`
	Text struct {
		Font *string  `toml:"font"`
		Size *float64 `toml:"size"`
	} `toml:"text"`
}

// LoadStyle reads a style file.
func LoadStyle(filename string) (*Style, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("document: load style: %w", err)
	}
	s, err := ParseStyle(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// ParseStyle decodes a TOML style. Unset keys keep the values of
// DefaultStyleSettings. Unknown keys and invalid values are errors; an
// unknown font name falls back to the default font with a warning.
func ParseStyle(r io.Reader) (*Style, error) {
	var f styleFile
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStyle, missing.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", ErrInvalidStyle, row, col, derr.Error())
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
	}

	s := DefaultStyleSettings()
	if err := f.applyPage(s); err != nil {
		return nil, err
	}
	if err := f.applyShape(s); err != nil {
		return nil, err
	}
	if err := f.applyText(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (f *styleFile) applyPage(s *Style) error {
	p := f.Page
	if p.Size != nil {
		size, err := ParsePageSize(*p.Size)
		if err != nil {
			return fmt.Errorf("%w: page.size: %w", ErrInvalidStyle, err)
		}
		s.Page = size
	}
	if p.Margin != nil {
		if *p.Margin < 0 {
			return fmt.Errorf("%w: page.margin must not be negative", ErrInvalidStyle)
		}
		s.Margin = *p.Margin
	}
	if p.Unit != nil {
		u, err := ParseUnit(*p.Unit)
		if err != nil {
			return fmt.Errorf("%w: page.unit: %w", ErrInvalidStyle, err)
		}
		s.Unit = u
	}
	if p.Background != nil {
		c, err := board.ParseColor(*p.Background)
		if err != nil {
			return fmt.Errorf("%w: page.background: %w", ErrInvalidStyle, err)
		}
		s.Background = c
	}
	return nil
}

func (f *styleFile) applyShape(s *Style) error {
	sh := f.Shape
	d := &s.Defaults
	if sh.LineWidth != nil {
		if *sh.LineWidth < 0 {
			return fmt.Errorf("%w: shape.line_width must not be negative", ErrInvalidStyle)
		}
		d.LineWidth = *sh.LineWidth
	}
	for _, c := range []struct {
		key string
		src *string
		dst *board.Color
	}{
		{"shape.pen", sh.Pen, &d.PenColor},
		{"shape.fill", sh.Fill, &d.FillColor},
	} {
		if c.src == nil {
			continue
		}
		col, err := board.ParseColor(*c.src)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidStyle, c.key, err)
		}
		*c.dst = col
	}
	if sh.LineStyle != nil {
		v, ok := board.ParseLineStyle(*sh.LineStyle)
		if !ok {
			return fmt.Errorf("%w: shape.line_style: unknown style %q", ErrInvalidStyle, *sh.LineStyle)
		}
		d.LineStyle = v
	}
	if sh.LineCap != nil {
		v, ok := board.ParseLineCap(*sh.LineCap)
		if !ok {
			return fmt.Errorf("%w: shape.line_cap: unknown cap %q", ErrInvalidStyle, *sh.LineCap)
		}
		d.LineCap = v
	}
	if sh.LineJoin != nil {
		v, ok := board.ParseLineJoin(*sh.LineJoin)
		if !ok {
			return fmt.Errorf("%w: shape.line_join: unknown join %q", ErrInvalidStyle, *sh.LineJoin)
		}
		d.LineJoin = v
	}
	return nil
}

func (f *styleFile) applyText(s *Style) error {
	t := f.Text
	if t.Font != nil {
		font, err := text.ParseFont(*t.Font)
		if err != nil {
			board.Logger().Warn("document: unknown font in style, using default",
				"font", *t.Font, "default", s.Font.String())
		} else {
			s.Font = font
		}
	}
	if t.Size != nil {
		if *t.Size <= 0 {
			return fmt.Errorf("%w: text.size must be positive", ErrInvalidStyle)
		}
		s.FontSize = *t.Size
	}
	return nil
}
