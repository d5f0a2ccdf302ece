package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/board"
	"github.com/gogpu/board/document"
)

// scene fills a board with a demonstration drawing.
type scene struct {
	description string
	build       func(b *document.Board, s *document.Style)
}

var scenes = map[string]scene{
	"shapes":    {"one of every shape kind, laid out in a row", buildShapes},
	"starburst": {"a shrinking spiral of rotated squares", buildStarburst},
	"tiling":    {"a grid of tiles with a caption", buildTiling},
	"gouraud":   {"a disc of smooth shaded triangles", buildGouraud},
	"clipping":  {"a circle pattern clipped by a rectangle and a star", buildClipping},
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupScene(name string) (scene, error) {
	sc, ok := scenes[name]
	if !ok {
		return scene{}, fmt.Errorf("unknown scene %q (available: %v)", name, sceneNames())
	}
	return sc, nil
}

func buildShapes(b *document.Board, s *document.Style) {
	b.Add(board.NewRectangle(0, 20, 30, 20, board.WithFillColor(board.RGB(255, 200, 200))))
	b.Append(board.NewCircle(0, 0, 10, board.WithFillColor(board.RGB(200, 255, 200))),
		board.DirectionRight, board.AlignCenter, 5, board.UseLineWidth)
	b.Append(board.NewEllipse(0, 0, 15, 8, board.WithFillColor(board.RGB(200, 200, 255)), board.WithLineStyle(board.DashStyle)),
		board.DirectionRight, board.AlignBottom, 5, board.UseLineWidth)
	b.Append(board.NewTriangle(board.Pt(0, 0), board.Pt(20, 0), board.Pt(10, 17), board.WithFillColor(board.Yellow)),
		board.DirectionRight, board.AlignTop, 5, board.UseLineWidth)

	star := make([]board.Point, 0, 10)
	for i := range 10 {
		r := 12.0
		if i%2 == 1 {
			r = 5
		}
		a := math.Pi/2 + float64(i)*math.Pi/5
		star = append(star, board.Pt(r*math.Cos(a), r*math.Sin(a)))
	}
	b.Append(board.NewPolyline(star, true, board.WithFillColor(board.RGB(255, 215, 0)), board.WithLineJoin(board.RoundJoin)),
		board.DirectionRight, board.AlignCenter, 5, board.UseLineWidth)

	b.Append(board.NewArrow(0, 0, 40, 0, board.WithPenColor(board.Red), board.WithLineWidth(1.5)),
		board.DirectionBottom, board.AlignLeft, 8, board.UseLineWidth)
	b.Append(board.NewDot(0, 0, board.WithLineWidth(3)),
		board.DirectionRight, board.AlignCenter, 8, board.UseLineWidth)
	caption := board.NewText(0, 0, "board shapes", s.Font, s.FontSize)
	b.Append(caption, board.DirectionBottom, board.AlignRight, 6, board.UseLineWidth)
}

func buildStarburst(b *document.Board, _ *document.Style) {
	square := board.NewRectangle(-50, 50, 100, 100, board.WithLineWidth(0.5))
	spiral := board.NewRepeatedTransform(square, 36, 0, 0, 0.93, 0.93, math.Pi/36)

	shapes := spiral.Sorted()
	for i, sh := range shapes {
		t := float64(i) / float64(len(shapes)-1)
		sh.SetPenColor(board.HSL(360*t, 0.8, 0.4))
	}
	b.Add(spiral)
}

func buildTiling(b *document.Board, s *document.Style) {
	tile := board.NewGroup()
	tile.Add(board.NewRectangle(0, 10, 10, 10, board.WithFillColor(board.RGB(230, 230, 250))))
	tile.Add(board.NewLine(0, 0, 10, 10, board.WithPenColor(board.Blue)))
	tile.Add(board.NewCircle(5, 5, 2, board.WithFillColor(board.Red), board.WithPenColor(board.Null)))

	grid := b.AddTiling(tile, board.Pt(0, 0), 8, 5, 2, board.IgnoreLineWidth)
	count := board.CountShapes(grid)

	caption := board.NewText(0, 0, fmt.Sprintf("%d tiles, %d shapes", grid.Len(), count.Leaves),
		s.Font, s.FontSize)
	b.Append(caption, board.DirectionBottom, board.AlignLeft, 4, board.UseLineWidth)
}

func buildGouraud(b *document.Board, _ *document.Style) {
	const n = 12
	center := board.Pt(0, 0)
	for i := range n {
		a0 := 2 * math.Pi * float64(i) / n
		a1 := 2 * math.Pi * float64(i+1) / n
		p0 := board.Pt(50*math.Cos(a0), 50*math.Sin(a0))
		p1 := board.Pt(50*math.Cos(a1), 50*math.Sin(a1))
		b.Add(board.NewGouraudTriangle(
			center, board.White,
			p0, board.HSL(360*float64(i)/n, 1, 0.5),
			p1, board.HSL(360*float64(i+1)/n, 1, 0.5),
			3))
	}
	b.Add(board.NewCircle(0, 0, 50, board.WithLineWidth(1), board.WithDepth(0)))
}

func buildClipping(b *document.Board, _ *document.Style) {
	pattern := board.NewShapeList()
	for row := range 6 {
		for col := range 6 {
			pattern.Add(board.NewCircle(float64(col)*12, float64(row)*12, 7,
				board.WithFillColor(board.HSL(float64(row*col)*10, 0.7, 0.6))))
		}
	}

	box := board.NewGroup()
	box.Add(pattern)
	box.SetClippingRectangle(5, 55, 40, 40)
	b.Add(box)

	star := board.NewPath(true)
	for i := range 10 {
		r := 30.0
		if i%2 == 1 {
			r = 12
		}
		a := math.Pi/2 + float64(i)*math.Pi/5
		star.Append(board.Pt(30+r*math.Cos(a), 30+r*math.Sin(a)))
	}
	starred := board.NewGroup()
	starred.Add(pattern)
	starred.SetClippingPath(star)
	b.Append(starred, board.DirectionRight, board.AlignCenter, 10, board.IgnoreLineWidth)
	b.Append(board.NewPolylineFromPath(star, board.WithLineWidth(0.5)),
		board.DirectionRight, board.AlignCenter, 10, board.IgnoreLineWidth)
}
