package constellation

import "image/color"

// Gradient is a two-stop radial gradient: Inner at the center of a disc,
// Outer at its rim.
type Gradient struct {
	Inner color.Color
	Outer color.Color
}

// Canvas is the drawing surface a Field renders to. It is passed into every
// draw call rather than captured at construction, so tests can substitute a
// recording implementation.
type Canvas interface {
	// Fill paints the whole surface with a solid color.
	Fill(clr color.Color)
	// FillCircle draws a filled disc of radius r centered at (x, y) with a
	// radial gradient.
	FillCircle(x, y, r float64, grad Gradient)
	// StrokeLine draws a thin straight segment from (x0, y0) to (x1, y1).
	StrokeLine(x0, y0, x1, y1 float64, clr color.Color)
}
