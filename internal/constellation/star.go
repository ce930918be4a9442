package constellation

import (
	"image/color"
	"math"
	"math/rand"
)

// Star is a single drifting point of the constellation. It lives inside a
// fixed rectangular bound and reflects off the edges as it moves.
type Star struct {
	x, y   float64
	r      float64
	dx, dy float64

	maxX, maxY float64
}

// NewStar places a star uniformly at random inside [0, width) x [0, height)
// with the given radius. Both velocity components are sampled from [0, 1), so
// every star initially drifts toward the bottom-right until its first bounce;
// that matches the original effect and is kept on purpose.
func NewStar(rng *rand.Rand, width, height, radius float64) *Star {
	return &Star{
		x:    rng.Float64() * width,
		y:    rng.Float64() * height,
		r:    radius,
		dx:   rng.Float64(),
		dy:   rng.Float64(),
		maxX: width,
		maxY: height,
	}
}

// Advance moves the star by one frame. Reflection is decided from the
// pre-move position with a half-radius margin, then both axes move by the
// possibly flipped velocities. A star may overshoot the bound by up to one
// frame's velocity before the flipped velocity pulls it back; positions are
// never clamped.
func (s *Star) Advance() {
	if s.x+s.r/2 >= s.maxX || s.x-s.r/2 <= 0 {
		s.dx = -s.dx
	}
	if s.y+s.r/2 >= s.maxY || s.y-s.r/2 <= 0 {
		s.dy = -s.dy
	}
	s.x += s.dx
	s.y += s.dy
}

// Draw renders the star as a filled disc fading from a white core to the
// field background at the rim. No stroke.
func (s *Star) Draw(cv Canvas) {
	cv.FillCircle(s.x, s.y, s.r, Gradient{Inner: color.White, Outer: Background})
}

// Distance returns the Euclidean distance between two star centers.
func Distance(a, b *Star) float64 {
	return math.Sqrt((a.x-b.x)*(a.x-b.x) + (a.y-b.y)*(a.y-b.y))
}
