// Package document writes board drawings to files.
//
// A Board couples a root board.ShapeList with a page: its size, margin,
// model unit and background. Writers for Encapsulated PostScript (eps),
// XFig 3.2 (fig), SVG 1.1 (svg) and TikZ (tikz) are registered by
// default; other formats can be added with Register, following the
// database/sql driver pattern.
//
// # Pages
//
// With a page size the drawing is scaled to fit inside the page margins
// and centered. Without one (BoundingBox, the default) the page is the
// bounding box of the drawing and model coordinates are taken in the
// board unit, points unless WithUnit says otherwise.
//
// # Styles
//
// LoadStyle reads a TOML file holding shape defaults and page settings;
// WithStyle applies it to a board.
package document
