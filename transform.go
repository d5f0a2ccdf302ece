package board

import (
	"fmt"
	"math"
)

// Points per millimeter for the formats whose user unit is the
// PostScript point (EPS, SVG, TikZ).
const ppmm = 72.0 / 25.4

// FIG user unit: 1200 dpi.
const (
	figDPI  = 1200.0
	figPPMM = figDPI / 25.4
)

// transform holds the affine mapping from model coordinates to the
// coordinates of an output format. Model y points up.
type transform struct {
	scale  float64
	deltaX float64
	deltaY float64
	height float64
	unit   float64
}

func identityTransform() transform {
	return transform{scale: 1, unit: 1}
}

// SetUnit sets the number of points per model unit. It only matters
// when no page is set: the drawing is then emitted at its natural size.
// Call it before SetBoundingBox.
func (t *transform) SetUnit(pointsPerUnit float64) {
	if pointsPerUnit > 0 {
		t.unit = pointsPerUnit
	}
}

// MapX maps a model x coordinate.
func (t *transform) MapX(x float64) float64 {
	return x*t.scale + t.deltaX
}

// Scale maps a model length.
func (t *transform) Scale(v float64) float64 {
	return v * t.scale
}

// ScaleFactor returns the model-to-output scale.
func (t *transform) ScaleFactor() float64 {
	return t.scale
}

// PageHeight returns the output height used to flip the y axis.
func (t *transform) PageHeight() float64 {
	return t.height
}

// fit sets the mapping so that bbox is centered on a page of the given size
// (in millimeters) with a margin, unitsPerMM output units per millimeter.
// A non-positive page size maps bbox at scale noPageScale with its
// bottom-left corner at the origin.
func (t *transform) fit(bbox Rect, pageWidth, pageHeight, margin, unitsPerMM, noPageScale float64) {
	if pageWidth <= 0 || pageHeight <= 0 {
		noPageScale *= t.unit
		t.scale = noPageScale
		t.deltaX = -bbox.Left * noPageScale
		t.deltaY = -bbox.Bottom() * noPageScale
		t.height = bbox.Height * noPageScale
		return
	}

	w := pageWidth - 2*margin
	h := pageHeight - 2*margin
	switch {
	case bbox.Width <= 0 && bbox.Height <= 0:
		t.scale = 1
	case bbox.Width <= 0 || bbox.Height/bbox.Width > h/w:
		t.scale = h * unitsPerMM / bbox.Height
	default:
		t.scale = w * unitsPerMM / bbox.Width
	}
	c := bbox.Center()
	t.deltaX = 0.5*pageWidth*unitsPerMM - t.scale*c.X
	t.deltaY = 0.5*pageHeight*unitsPerMM - t.scale*c.Y
	t.height = pageHeight * unitsPerMM
}

// TransformEPS maps model coordinates to PostScript points. The PostScript
// y axis points up, so no flip is applied.
type TransformEPS struct {
	transform
}

// NewTransformEPS returns the identity EPS transform.
func NewTransformEPS() *TransformEPS {
	return &TransformEPS{transform: identityTransform()}
}

// SetBoundingBox fits bbox on a page of pageWidth x pageHeight millimeters.
func (t *TransformEPS) SetBoundingBox(bbox Rect, pageWidth, pageHeight, margin float64) {
	t.fit(bbox, pageWidth, pageHeight, margin, ppmm, 1)
}

// MapY maps a model y coordinate.
func (t *TransformEPS) MapY(y float64) float64 {
	return y*t.scale + t.deltaY
}

// MapWidth maps a line width, which is always expressed in points.
func (t *TransformEPS) MapWidth(w float64) float64 {
	return w
}

// TransformSVG maps model coordinates to SVG user units (points), flipping
// the y axis. It also numbers clip paths within one document.
type TransformSVG struct {
	transform
	clipCount int
}

// NewTransformSVG returns an SVG transform with scale 1 and no flip offset.
func NewTransformSVG() *TransformSVG {
	return &TransformSVG{transform: identityTransform()}
}

// SetBoundingBox fits bbox on a page of pageWidth x pageHeight millimeters.
func (t *TransformSVG) SetBoundingBox(bbox Rect, pageWidth, pageHeight, margin float64) {
	t.fit(bbox, pageWidth, pageHeight, margin, ppmm, 1)
}

// MapY maps a model y coordinate.
func (t *TransformSVG) MapY(y float64) float64 {
	return t.height - (y*t.scale + t.deltaY)
}

// MapWidth maps a line width.
func (t *TransformSVG) MapWidth(w float64) float64 {
	return w
}

// NextClipID returns a clip-path identifier unique within the document.
func (t *TransformSVG) NextClipID() string {
	t.clipCount++
	return fmt.Sprintf("clip%d", t.clipCount)
}

// TransformTikZ maps model coordinates to TikZ points. The picture is
// declared with an inverted y unit, so the y axis is flipped as for SVG.
type TransformTikZ struct {
	transform
}

// NewTransformTikZ returns a TikZ transform with scale 1 and no flip offset.
func NewTransformTikZ() *TransformTikZ {
	return &TransformTikZ{transform: identityTransform()}
}

// SetBoundingBox fits bbox on a page of pageWidth x pageHeight millimeters.
func (t *TransformTikZ) SetBoundingBox(bbox Rect, pageWidth, pageHeight, margin float64) {
	t.fit(bbox, pageWidth, pageHeight, margin, ppmm, 1)
}

// MapY maps a model y coordinate.
func (t *TransformTikZ) MapY(y float64) float64 {
	return t.height - (y*t.scale + t.deltaY)
}

// MapWidth maps a line width.
func (t *TransformTikZ) MapWidth(w float64) float64 {
	return w
}

// TransformFIG maps model coordinates to XFig integer units (1200 dpi),
// flipping the y axis, and maps depths into the 0..999 range.
type TransformFIG struct {
	transform
	minDepth int
	maxDepth int
}

// NewTransformFIG returns a FIG transform at 1200/72 units per model point.
func NewTransformFIG() *TransformFIG {
	return &TransformFIG{
		transform: transform{scale: figDPI / 72, unit: 1},
		minDepth:  0,
		maxDepth:  998,
	}
}

// SetBoundingBox fits bbox on a page of pageWidth x pageHeight millimeters.
func (t *TransformFIG) SetBoundingBox(bbox Rect, pageWidth, pageHeight, margin float64) {
	t.fit(bbox, pageWidth, pageHeight, margin, figPPMM, figDPI/72)
}

// SetDepthRange declares the depth range of the emitted shapes.
func (t *TransformFIG) SetDepthRange(minDepth, maxDepth int) {
	t.minDepth = minDepth
	t.maxDepth = maxDepth
}

// MapX maps a model x coordinate to an integer FIG coordinate.
func (t *TransformFIG) MapX(x float64) int {
	return int(math.Round(t.transform.MapX(x)))
}

// MapY maps a model y coordinate to an integer FIG coordinate.
func (t *TransformFIG) MapY(y float64) int {
	return int(math.Round(t.height - (y*t.scale + t.deltaY)))
}

// MapWidth maps a line width in points to FIG thickness (1/80 inch).
// Any visible width maps to at least 1.
func (t *TransformFIG) MapWidth(w float64) int {
	if w <= 0 {
		return 0
	}
	return max(int(math.Round(w*80/72)), 1)
}

// MapDepth maps a shape depth into the FIG depth range 0..999, preserving
// order. Depth ranges wider than the FIG range are compressed.
func (t *TransformFIG) MapDepth(depth int) int {
	if depth > t.maxDepth {
		return 999
	}
	if depth < t.minDepth {
		return 0
	}
	span := float64(t.maxDepth) - float64(t.minDepth)
	if span > 998 {
		return 1 + int(math.Round((float64(depth)-float64(t.minDepth))/span*998))
	}
	return 1 + depth - t.minDepth
}
