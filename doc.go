// Package board builds 2D vector drawings and writes them as EPS, XFig,
// SVG or TikZ.
//
// # Overview
//
// A drawing is a tree of shapes. Leaves are Dot, Line, Arrow, Polyline,
// Rectangle, Triangle, GouraudTriangle, Ellipse, Circle and Text; the
// composites ShapeList and Group hold other shapes. Every shape can be
// rotated, translated and scaled in place, and knows how to write itself in
// each output format through a format-specific transform.
//
// The document driver that owns the page and writes files lives in
// package github.com/gogpu/board/document.
//
// # Quick Start
//
//	import "github.com/gogpu/board"
//
//	l := board.NewShapeList()
//	l.Add(board.NewRectangle(0, 10, 20, 10, board.WithFillColor(board.Yellow)))
//	l.Add(board.NewCircle(10, 5, 4, board.WithPenColor(board.Red)))
//	board.RotateDegAboutCenter(l, 30)
//
// # Coordinate System
//
// Model coordinates are in PostScript points with the y axis pointing up.
// A Rect is given by its top-left corner, so its bottom is Top - Height.
// Angles are in radians and increase counter-clockwise. Each transform
// maps model coordinates to the convention of its format (SVG, TikZ and
// FIG flip the y axis).
//
// # Depth
//
// Shapes are painted in order of decreasing depth: a higher depth is
// further back. ShapeList.Add places every new shape in front of the
// previous ones unless it already has a depth; see ShapeList for the exact
// rules.
//
// # Ownership
//
// Lists store clones. A shape added to a list can be changed or added
// again without affecting the stored copy. Shapes and lists are not safe
// for concurrent mutation; the Defaults snapshot and the logger are.
package board

// Version is the current version of the library.
const Version = "0.1.0"
