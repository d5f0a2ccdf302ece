package document

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/board"
	"github.com/gogpu/board/text"
)

// sampleBoard returns a board holding one 20x10 rectangle with a 1pt
// stroke, so its bounding box is 21x11 points.
func sampleBoard(opts ...Option) *Board {
	b := New(opts...)
	b.Add(board.NewRectangle(0, 10, 20, 10, board.WithFillColor(board.Blue)))
	return b
}

func render(t *testing.T, b *Board, format string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := b.Write(&buf, format); err != nil {
		t.Fatalf("Write(%s) error: %v", format, err)
	}
	return buf.String()
}

func TestWriteEnvelope(t *testing.T) {
	b := sampleBoard()
	tests := []struct {
		format string
		prefix string
		suffix string
	}{
		{"eps", "%!PS-Adobe-2.0 EPSF-2.0\n", "showpage\n%%Trailer\n%%EOF\n"},
		{"fig", "#FIG 3.2 Produced by " + Creator + "\n", "\n"},
		{"svg", `<?xml version="1.0" encoding="UTF-8"?>` + "\n", "</svg>\n"},
		{"tikz", "% Created with " + Creator + "\n", "\\end{tikzpicture}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out := render(t, b, tt.format)
			if !strings.HasPrefix(out, tt.prefix) {
				t.Errorf("output does not start with %q:\n%s", tt.prefix, out)
			}
			if !strings.HasSuffix(out, tt.suffix) {
				t.Errorf("output does not end with %q:\n%s", tt.suffix, out)
			}
		})
	}
}

func TestWriteBoundingBoxPage(t *testing.T) {
	b := sampleBoard()

	eps := render(t, b, "eps")
	for _, want := range []string{
		"%%BoundingBox: 0 0 21 11\n",
		"%%HiResBoundingBox: 0 0 21 11\n",
		"/srgb {setrgbcolor} bind def\n",
		"%%EndProlog\n",
	} {
		if !strings.Contains(eps, want) {
			t.Errorf("eps lacks %q", want)
		}
	}

	svg := render(t, b, "svg")
	if want := `<svg width="7.4083mm" height="3.8806mm" viewBox="0 0 21 11"`; !strings.Contains(svg, want) {
		t.Errorf("svg lacks %q:\n%s", want, svg)
	}

	tikz := render(t, b, "tikz")
	if want := `\begin{tikzpicture}[anchor=south west,text depth=0,x={(1pt,0cm)},y={(0cm,-1pt)}]`; !strings.Contains(tikz, want) {
		t.Errorf("tikz lacks %q", want)
	}
}

func TestWriteUnit(t *testing.T) {
	b := New(WithUnit(UnitMillimeter))
	b.Add(board.NewRectangle(0, 10, 20, 10, board.WithLineWidth(0), board.WithFillColor(board.Red)))

	svg := render(t, b, "svg")
	if want := `<svg width="20mm" height="10mm"`; !strings.Contains(svg, want) {
		t.Errorf("svg lacks %q:\n%s", want, svg)
	}
	eps := render(t, b, "eps")
	if want := "%%BoundingBox: 0 0 57 29\n"; !strings.Contains(eps, want) {
		t.Errorf("eps lacks %q", want)
	}
}

func TestWritePageSize(t *testing.T) {
	b := sampleBoard(WithPageSize(A4, 10))

	svg := render(t, b, "svg")
	if want := `<svg width="210mm" height="297mm" viewBox="0 0 595.2756 841.8898"`; !strings.Contains(svg, want) {
		t.Errorf("svg lacks %q", want)
	}
	eps := render(t, b, "eps")
	if want := "%%BoundingBox: 0 0 596 842\n"; !strings.Contains(eps, want) {
		t.Errorf("eps lacks %q", want)
	}
	fig := render(t, b, "fig")
	if want := "Portrait\nCenter\nMetric\nA4\n100.00\nSingle\n-2\n1200 2\n"; !strings.Contains(fig, want) {
		t.Errorf("fig lacks header %q", want)
	}
}

func TestWriteBackground(t *testing.T) {
	b := sampleBoard(WithBackground(board.RGB(1, 2, 3)))

	tests := []struct {
		format string
		want   string
	}{
		{"eps", "n 0 0 m 21 0 l 21 11 l 0 11 l cp 0.0039 0.0078 0.0118 srgb fill\n"},
		{"svg", `<rect x="0" y="0" width="21" height="11" stroke="none" fill="rgb(1,2,3)" />`},
		{"tikz", `\fill[fill={rgb,255:red,1;green,2;blue,3}] (0,0) rectangle (21,11);`},
		{"fig", "0 32 #010203\n2 2 0 0 32 32 999 -1 20 0.000 0 0 -1 0 0 5\n\t 0 0 350 0 350 183 0 183 0 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if out := render(t, b, tt.format); !strings.Contains(out, tt.want) {
				t.Errorf("output lacks %q:\n%s", tt.want, out)
			}
		})
	}

	b.Clear()
	if !b.Background().IsNull() || b.Len() != 0 {
		t.Errorf("Clear() left background %v and %d shapes", b.Background(), b.Len())
	}
}

func TestWriteFIGPaletteBeforeBody(t *testing.T) {
	b := New()
	b.Add(board.NewCircle(0, 0, 5, board.WithFillColor(board.RGB(10, 20, 30))))
	fig := render(t, b, "fig")

	colorAt := strings.Index(fig, "0 32 #0a141e\n")
	bodyAt := strings.Index(fig, "\n1 3 ")
	if colorAt < 0 || bodyAt < 0 || colorAt > bodyAt {
		t.Errorf("color pseudo-object must precede the ellipse:\n%s", fig)
	}
}

func TestWriteSVGTitleEscaped(t *testing.T) {
	b := sampleBoard(WithTitle("a < b & c"))
	if svg := render(t, b, "svg"); !strings.Contains(svg, "<title>a &lt; b &amp; c</title>") {
		t.Errorf("svg title not escaped:\n%s", svg)
	}
	if eps := render(t, b, "eps"); !strings.Contains(eps, "%%Title: a < b & c\n") {
		t.Error("eps lacks title")
	}
}

var errBoom = errors.New("boom")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBoom }

func TestWriteErrors(t *testing.T) {
	b := sampleBoard()
	if err := b.Write(failingWriter{}, "svg"); !errors.Is(err, errBoom) {
		t.Errorf("Write to failing writer = %v, want errBoom", err)
	}

	var ufe *UnknownFormatError
	if err := b.Write(&bytes.Buffer{}, "pdf"); !errors.As(err, &ufe) {
		t.Errorf("Write(pdf) = %v, want *UnknownFormatError", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	b := sampleBoard()

	tests := []struct {
		file   string
		prefix string
	}{
		{"out.eps", "%!PS-Adobe"},
		{"out.fig", "#FIG 3.2"},
		{"out.SVG", "<?xml"},
		{"out.tex", "% Created with"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			name := filepath.Join(dir, tt.file)
			if err := b.Save(name); err != nil {
				t.Fatalf("Save(%s) error: %v", tt.file, err)
			}
			data, err := os.ReadFile(name)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(string(data), tt.prefix) {
				t.Errorf("%s starts with %q", tt.file, data[:min(len(data), 20)])
			}
		})
	}
}

func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()
	b := sampleBoard()

	if err := b.Save(filepath.Join(dir, "noext")); !errors.Is(err, ErrNoExtension) {
		t.Errorf("Save(noext) = %v, want ErrNoExtension", err)
	}
	var ufe *UnknownFormatError
	if err := b.Save(filepath.Join(dir, "x.png")); !errors.As(err, &ufe) {
		t.Errorf("Save(x.png) = %v, want *UnknownFormatError", err)
	}
	if err := b.Save(filepath.Join(dir, "missing", "x.svg")); err == nil {
		t.Error("Save into a missing directory succeeded")
	}
}

func TestBoardText(t *testing.T) {
	b := New(WithMeasurer(text.EstimateMeasurer{AdvanceRatio: 1, HeightRatio: 1}))
	tx := b.Text(0, 0, "abc", text.Helvetica, 10)

	want := board.Rect{Left: 0, Top: 10, Width: 30, Height: 10}
	if diff := cmp.Diff(want, tx.BoundingBox(board.IgnoreLineWidth), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("text bounding box mismatch (-want +got):\n%s", diff)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestBoardStyle(t *testing.T) {
	s := DefaultStyleSettings()
	s.Defaults.PenColor = board.Blue
	s.Defaults.LineWidth = 2
	s.Page = Letter
	s.Margin = 5

	b := New(WithStyle(s))
	r := b.Rectangle(0, 0, 1, 1)
	c := b.Circle(0, 0, 1, board.WithPenColor(board.Red))
	l := b.Line(0, 0, 1, 1)

	if r.PenColor() != board.Blue || r.LineWidth() != 2 {
		t.Errorf("rectangle pen %v width %v, want Blue 2", r.PenColor(), r.LineWidth())
	}
	if c.PenColor() != board.Red {
		t.Errorf("explicit option lost: circle pen %v", c.PenColor())
	}
	if l.LineWidth() != 2 {
		t.Errorf("line width %v, want 2", l.LineWidth())
	}
	if b.PageSize() != Letter || b.Margin() != 5 {
		t.Errorf("page %v margin %v, want Letter 5", b.PageSize(), b.Margin())
	}
}

func TestWriteLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	board.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { board.SetLogger(nil) })

	render(t, sampleBoard(), "svg")
	if !strings.Contains(buf.String(), "document: written") || !strings.Contains(buf.String(), "shapes=1") {
		t.Errorf("debug log missing: %s", buf.String())
	}
}
