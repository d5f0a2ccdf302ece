package text

// FontMetrics holds the vertical metrics of a font scaled to a size in
// points. Every field is a positive distance.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the distance between the baselines of two lines.
func (m FontMetrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
