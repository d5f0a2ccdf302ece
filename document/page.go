package document

import (
	"errors"
	"fmt"
	"strings"
)

// pointsPerMM is the number of PostScript points in one millimeter.
const pointsPerMM = 72.0 / 25.4

// PageSize is a paper size in millimeters. The zero value, BoundingBox,
// means the page is the bounding box of the drawing.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// Standard page sizes.
var (
	BoundingBox = PageSize{}
	A0          = PageSize{"A0", 841, 1189}
	A1          = PageSize{"A1", 594, 841}
	A2          = PageSize{"A2", 420, 594}
	A3          = PageSize{"A3", 297, 420}
	A4          = PageSize{"A4", 210, 297}
	A5          = PageSize{"A5", 148, 210}
	A6          = PageSize{"A6", 105, 148}
	Letter      = PageSize{"Letter", 215.9, 279.4}
	Legal       = PageSize{"Legal", 215.9, 355.6}
	Executive   = PageSize{"Executive", 184.2, 266.7}
)

var namedPageSizes = []PageSize{A0, A1, A2, A3, A4, A5, A6, Letter, Legal, Executive}

// ErrUnknownPageSize is returned by ParsePageSize for an unknown name.
var ErrUnknownPageSize = errors.New("document: unknown page size")

// ParsePageSize returns the page size with the given name, compared
// case-insensitively. "" and "BoundingBox" select BoundingBox.
func ParsePageSize(name string) (PageSize, error) {
	if name == "" || strings.EqualFold(name, "BoundingBox") {
		return BoundingBox, nil
	}
	for _, p := range namedPageSizes {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return BoundingBox, fmt.Errorf("%w: %q", ErrUnknownPageSize, name)
}

// IsBoundingBox reports whether p leaves the page size to the drawing.
func (p PageSize) IsBoundingBox() bool {
	return p.Width <= 0 || p.Height <= 0
}

// Landscape returns p with its width and height swapped.
func (p PageSize) Landscape() PageSize {
	if p.Width < p.Height {
		p.Width, p.Height = p.Height, p.Width
	}
	return p
}

func (p PageSize) String() string {
	if p.IsBoundingBox() {
		return "BoundingBox"
	}
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("%gx%gmm", p.Width, p.Height)
}

// Unit is the length unit of model coordinates when a board is written
// without a page size.
type Unit int

// Units
const (
	UnitPoint Unit = iota
	UnitMillimeter
	UnitCentimeter
	UnitInch
)

// ErrUnknownUnit is returned by ParseUnit for an unknown name.
var ErrUnknownUnit = errors.New("document: unknown unit")

// Points returns the number of PostScript points in one unit.
func (u Unit) Points() float64 {
	switch u {
	case UnitMillimeter:
		return pointsPerMM
	case UnitCentimeter:
		return 10 * pointsPerMM
	case UnitInch:
		return 72
	default:
		return 1
	}
}

func (u Unit) String() string {
	switch u {
	case UnitMillimeter:
		return "mm"
	case UnitCentimeter:
		return "cm"
	case UnitInch:
		return "in"
	default:
		return "pt"
	}
}

// ParseUnit parses "pt", "mm", "cm" or "in".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pt":
		return UnitPoint, nil
	case "mm":
		return UnitMillimeter, nil
	case "cm":
		return UnitCentimeter, nil
	case "in", "inch":
		return UnitInch, nil
	}
	return UnitPoint, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}
