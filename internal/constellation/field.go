package constellation

import (
	"fmt"
	"image/color"
	"math/rand"
)

// Defaults used when a Config field is left unset by DefaultConfig callers.
const (
	DefaultStarCount    = 10
	DefaultLinkDistance = 100
	DefaultStarRadius   = 5
)

// Background is the field's clear color, also the outer stop of every star's
// gradient so discs blend into the sky.
var Background = color.NRGBA{R: 51, G: 51, B: 51, A: 255}

// linkColor is the stroke color of constellation lines; alpha is set per line
// from the distance between its endpoints.
var linkColor = color.NRGBA{R: 225, G: 225, B: 225}

// Config holds the construction-time parameters of a Field. There is no
// runtime configuration surface beyond this.
type Config struct {
	Width, Height float64 // surface size in pixels
	StarCount     int
	LinkDistance  float64 // max distance at which two stars are linked
	StarRadius    float64
}

// DefaultConfig returns a Config with the stock star count, link distance and
// radius for the given surface size.
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:        width,
		Height:       height,
		StarCount:    DefaultStarCount,
		LinkDistance: DefaultLinkDistance,
		StarRadius:   DefaultStarRadius,
	}
}

// Field owns a set of stars sized to a drawing surface and renders one frame
// at a time: clear, advance and draw each star, then link near pairs.
type Field struct {
	width, height float64
	linkDistance  float64
	stars         []*Star
}

// NewField validates cfg and populates the star set from rng. A field that
// fails validation never runs a frame.
func NewField(cfg Config, rng *rand.Rand) (*Field, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("constellation: surface %gx%g is not drawable", cfg.Width, cfg.Height)
	}
	if cfg.LinkDistance <= 0 {
		return nil, fmt.Errorf("constellation: invalid link distance %g", cfg.LinkDistance)
	}
	if cfg.StarRadius <= 0 {
		return nil, fmt.Errorf("constellation: invalid star radius %g", cfg.StarRadius)
	}
	if cfg.StarCount < 0 {
		return nil, fmt.Errorf("constellation: invalid star count %d", cfg.StarCount)
	}

	f := &Field{
		width:        cfg.Width,
		height:       cfg.Height,
		linkDistance: cfg.LinkDistance,
		stars:        make([]*Star, cfg.StarCount),
	}
	for i := range f.stars {
		f.stars[i] = NewStar(rng, cfg.Width, cfg.Height, cfg.StarRadius)
	}
	return f, nil
}

// Step runs one animation frame against cv: clear the surface, then for each
// star advance and immediately draw it, then stroke the links. The caller
// schedules the next frame; Step itself never blocks or reschedules.
func (f *Field) Step(cv Canvas) {
	cv.Fill(Background)
	for _, s := range f.stars {
		s.Advance()
		s.Draw(cv)
	}
	f.drawLinks(cv)
}

// drawLinks strokes a segment between every unordered pair of stars closer
// than the link distance, fading out as the pair separates. Pairwise scan is
// O(n²) per frame; fine for the tens of stars this effect runs with.
func (f *Field) drawLinks(cv Canvas) {
	for i := 0; i < len(f.stars); i++ {
		for j := i + 1; j < len(f.stars); j++ {
			a, b := f.stars[i], f.stars[j]
			d := Distance(a, b)
			if d >= f.linkDistance {
				continue
			}
			clr := linkColor
			clr.A = uint8(255 * linkAlpha(d, f.linkDistance))
			cv.StrokeLine(a.x, a.y, b.x, b.y, clr)
		}
	}
}

// linkAlpha maps a pair distance to line opacity: 1 when the stars coincide,
// falling linearly to 0 at the link distance.
func linkAlpha(d, linkDistance float64) float64 {
	return (linkDistance - d) / linkDistance
}
