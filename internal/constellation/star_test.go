package constellation

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewStarWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const w, h = 320.0, 240.0

	for i := 0; i < 200; i++ {
		s := NewStar(rng, w, h, 5)
		if s.x < 0 || s.x >= w {
			t.Fatalf("star %d spawned at x=%g, want [0, %g)", i, s.x, w)
		}
		if s.y < 0 || s.y >= h {
			t.Fatalf("star %d spawned at y=%g, want [0, %g)", i, s.y, h)
		}
		if s.dx < 0 || s.dx >= 1 || s.dy < 0 || s.dy >= 1 {
			t.Fatalf("star %d spawned with velocity (%g, %g), want [0, 1) per axis", i, s.dx, s.dy)
		}
		if s.r != 5 || s.maxX != w || s.maxY != h {
			t.Fatalf("star %d: r=%g maxX=%g maxY=%g", i, s.r, s.maxX, s.maxY)
		}
	}
}

func TestAdvanceReflection(t *testing.T) {
	tests := []struct {
		name           string
		star           Star
		wantDX, wantDY float64
	}{
		{
			"free flight keeps velocity",
			Star{x: 50, y: 50, r: 10, dx: 0.5, dy: 0.3, maxX: 100, maxY: 100},
			0.5, 0.3,
		},
		{
			"right edge flips dx only",
			Star{x: 96, y: 50, r: 10, dx: 0.5, dy: 0.3, maxX: 100, maxY: 100},
			-0.5, 0.3,
		},
		{
			"left edge flips dx only",
			Star{x: 4, y: 50, r: 10, dx: -0.5, dy: 0.3, maxX: 100, maxY: 100},
			0.5, 0.3,
		},
		{
			"bottom edge flips dy only",
			Star{x: 50, y: 97, r: 10, dx: 0.5, dy: 0.3, maxX: 100, maxY: 100},
			0.5, -0.3,
		},
		{
			"top edge flips dy only",
			Star{x: 50, y: 3, r: 10, dx: 0.5, dy: -0.3, maxX: 100, maxY: 100},
			0.5, 0.3,
		},
		{
			"corner flips both",
			Star{x: 96, y: 97, r: 10, dx: 0.5, dy: 0.3, maxX: 100, maxY: 100},
			-0.5, -0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.star
			wantX := tt.star.x + tt.wantDX
			wantY := tt.star.y + tt.wantDY
			s.Advance()
			if s.dx != tt.wantDX || s.dy != tt.wantDY {
				t.Errorf("velocity after Advance = (%g, %g), want (%g, %g)", s.dx, s.dy, tt.wantDX, tt.wantDY)
			}
			if s.x != wantX || s.y != wantY {
				t.Errorf("position after Advance = (%g, %g), want (%g, %g)", s.x, s.y, wantX, wantY)
			}
		})
	}
}

// A star sitting on the left bound moves one frame past it before the
// flipped velocity pulls it back in; positions are not clamped.
func TestAdvanceOvershoot(t *testing.T) {
	s := Star{x: 0, y: 50, r: 10, dx: 0.5, dy: 0, maxX: 100, maxY: 100}
	s.Advance()
	if s.dx != -0.5 {
		t.Fatalf("dx after Advance = %g, want -0.5", s.dx)
	}
	if s.x != -0.5 {
		t.Fatalf("x after Advance = %g, want -0.5", s.x)
	}
}

func TestAdvanceDriftStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const w, h = 200.0, 150.0

	for i := 0; i < 20; i++ {
		s := NewStar(rng, w, h, 5)
		vx, vy := math.Abs(s.dx), math.Abs(s.dy)
		for frame := 0; frame < 10000; frame++ {
			s.Advance()
			if s.x < -vx || s.x > w+vx {
				t.Fatalf("star %d frame %d: x=%g outside [-%g, %g]", i, frame, s.x, vx, w+vx)
			}
			if s.y < -vy || s.y > h+vy {
				t.Fatalf("star %d frame %d: y=%g outside [-%g, %g]", i, frame, s.y, vy, h+vy)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	a := &Star{x: 0, y: 0}
	b := &Star{x: 3, y: 4}

	if d := Distance(a, b); d != 5 {
		t.Errorf("Distance(a, b) = %g, want 5", d)
	}
	if Distance(a, b) != Distance(b, a) {
		t.Error("Distance is not symmetric")
	}
	if d := Distance(a, a); d != 0 {
		t.Errorf("Distance(a, a) = %g, want 0", d)
	}
}
