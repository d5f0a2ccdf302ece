package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/board"
	"github.com/gogpu/board/text"
)

// Creator is written into the header of every document.
const Creator = "github.com/gogpu/board " + board.Version

// ErrNoExtension is returned by Save for a file name without extension.
var ErrNoExtension = errors.New("document: file name has no extension")

// Board is a drawing plus the page it is written on. Shapes are added to
// the embedded ShapeList; the board then writes them in any registered
// format.
//
//	b := document.New(document.WithPageSize(document.A4, 10))
//	b.Add(board.NewCircle(0, 0, 20, board.WithFillColor(board.Red)))
//	if err := b.Save("circle.svg"); err != nil {
//	    log.Fatal(err)
//	}
//
// A Board is not safe for concurrent use.
type Board struct {
	*board.ShapeList

	title      string
	page       PageSize
	margin     float64
	unit       Unit
	background board.Color
	measurer   text.Measurer
	style      board.Defaults
	hasStyle   bool
}

// Option configures a Board.
type Option func(*Board)

// WithPageSize sets the page and its margin in millimeters.
func WithPageSize(p PageSize, margin float64) Option {
	return func(b *Board) {
		b.page = p
		b.margin = max(margin, 0)
	}
}

// WithMargin sets the page margin in millimeters.
func WithMargin(margin float64) Option {
	return func(b *Board) {
		b.margin = max(margin, 0)
	}
}

// WithUnit sets the unit of model coordinates for boards written without
// a page size.
func WithUnit(u Unit) Option {
	return func(b *Board) {
		b.unit = u
	}
}

// WithBackground fills the page with c.
func WithBackground(c board.Color) Option {
	return func(b *Board) {
		b.background = c
	}
}

// WithMeasurer sets the font metrics used by Board.Text.
func WithMeasurer(m text.Measurer) Option {
	return func(b *Board) {
		b.measurer = m
	}
}

// WithTitle sets the document title written into EPS and SVG headers.
func WithTitle(title string) Option {
	return func(b *Board) {
		b.title = title
	}
}

// WithStyle applies a loaded style: its shape defaults are used by the
// shape helpers of the board and its page settings replace the current
// ones.
func WithStyle(s *Style) Option {
	return func(b *Board) {
		if s == nil {
			return
		}
		b.style = s.Defaults
		b.hasStyle = true
		b.page = s.Page
		b.margin = s.Margin
		b.unit = s.Unit
		b.background = s.Background
	}
}

// New creates an empty board. Without options the page is the bounding
// box of the drawing and the unit is the point.
func New(opts ...Option) *Board {
	b := &Board{ShapeList: board.NewShapeList()}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Title returns the document title.
func (b *Board) Title() string { return b.title }

// PageSize returns the page size.
func (b *Board) PageSize() PageSize { return b.page }

// Margin returns the page margin in millimeters.
func (b *Board) Margin() float64 { return b.margin }

// Unit returns the unit of model coordinates.
func (b *Board) Unit() Unit { return b.unit }

// Background returns the background color, Null if there is none.
func (b *Board) Background() board.Color { return b.background }

// SetPageSize sets the page and its margin in millimeters.
func (b *Board) SetPageSize(p PageSize, margin float64) {
	WithPageSize(p, margin)(b)
}

// SetUnit sets the unit of model coordinates.
func (b *Board) SetUnit(u Unit) { b.unit = u }

// SetBackground sets the background color. Null removes it.
func (b *Board) SetBackground(c board.Color) { b.background = c }

// Clear removes every shape and the background.
func (b *Board) Clear() {
	b.ShapeList.Clear()
	b.background = board.Null
}

// shapeOptions prepends the board style to opts.
func (b *Board) shapeOptions(opts []board.Option) []board.Option {
	if !b.hasStyle {
		return opts
	}
	return append([]board.Option{board.WithDefaults(b.style)}, opts...)
}

// Text adds a text measured with the board measurer and returns the stored
// copy.
func (b *Board) Text(x, y float64, s string, font text.Font, size float64, opts ...board.Option) *board.Text {
	opts = b.shapeOptions(opts)
	if b.measurer != nil {
		opts = append([]board.Option{board.WithMeasurer(b.measurer)}, opts...)
	}
	b.Add(board.NewText(x, y, s, font, size, opts...))
	return b.Top().(*board.Text)
}

// Rectangle adds a rectangle in the board style and returns the stored
// copy.
func (b *Board) Rectangle(left, top, width, height float64, opts ...board.Option) *board.Rectangle {
	b.Add(board.NewRectangle(left, top, width, height, b.shapeOptions(opts)...))
	return b.Top().(*board.Rectangle)
}

// Circle adds a circle in the board style and returns the stored copy.
func (b *Board) Circle(cx, cy, radius float64, opts ...board.Option) *board.Circle {
	b.Add(board.NewCircle(cx, cy, radius, b.shapeOptions(opts)...))
	return b.Top().(*board.Circle)
}

// Line adds a line in the board style and returns the stored copy.
func (b *Board) Line(x1, y1, x2, y2 float64, opts ...board.Option) *board.Line {
	b.Add(board.NewLine(x1, y1, x2, y2, b.shapeOptions(opts)...))
	return b.Top().(*board.Line)
}

// Save writes the board to filename in the format given by its extension.
func (b *Board) Save(filename string) error {
	ext := filepath.Ext(filename)
	if ext == "" {
		return fmt.Errorf("%w: %s", ErrNoExtension, filename)
	}
	format, err := FormatForExtension(ext)
	if err != nil {
		return err
	}
	return b.SaveFormat(filename, format)
}

// SaveFormat writes the board to filename in the named format.
func (b *Board) SaveFormat(filename, format string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("document: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("document: %w", cerr)
		}
	}()
	return b.Write(f, format)
}

// Write writes the board to w in the named format. Output is buffered; the
// first write error is returned.
func (b *Board) Write(w io.Writer, format string) error {
	wr, err := NewWriter(format)
	if err != nil {
		return err
	}

	start := time.Now()
	bw := bufio.NewWriter(w)
	if err := wr.WriteBoard(bw, b); err != nil {
		return fmt.Errorf("document: write %s: %w", format, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("document: write %s: %w", format, err)
	}

	count := board.CountShapes(b.ShapeList)
	board.Logger().Debug("document: written",
		"format", format,
		"shapes", count.Leaves,
		"composites", count.Composites-1,
		"elapsed", time.Since(start))
	return nil
}

// frame is the output geometry shared by the writers: the drawing bounding
// box and the output size in points.
type frame struct {
	bbox          board.Rect
	width, height float64
}

// transformer is implemented by the format transforms.
type transformer interface {
	SetUnit(pointsPerUnit float64)
	SetBoundingBox(bbox board.Rect, pageWidth, pageHeight, margin float64)
	ScaleFactor() float64
}

// fit sets up t for the board and returns the output frame. Sizes are
// measured in points, whatever the output unit of t.
func (b *Board) fit(t transformer) frame {
	bbox := b.BoundingBox(board.UseLineWidth)
	t.SetUnit(b.unit.Points())
	t.SetBoundingBox(bbox, b.page.Width, b.page.Height, b.margin)

	if !b.page.IsBoundingBox() {
		return frame{bbox: bbox, width: b.page.Width * pointsPerMM, height: b.page.Height * pointsPerMM}
	}
	s := b.unit.Points()
	return frame{bbox: bbox, width: bbox.Width * s, height: bbox.Height * s}
}
