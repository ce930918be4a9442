// Package render binds the constellation canvas to an Ebitengine image.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/constellations/internal/constellation"
)

type spriteKey struct {
	r            float64
	inner, outer color.NRGBA
}

// Canvas draws constellation primitives onto an *ebiten.Image. Gradient discs
// are pre-rasterized once per (radius, gradient) and blitted every frame;
// with a shared star radius that is a single cached sprite.
type Canvas struct {
	dst     *ebiten.Image
	sprites map[spriteKey]*ebiten.Image
}

func NewCanvas() *Canvas {
	return &Canvas{sprites: map[spriteKey]*ebiten.Image{}}
}

// SetTarget points the canvas at the image the current frame renders to.
// Ebitengine hands Draw a fresh screen every frame, so the game calls this at
// the top of each one.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *Canvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *Canvas) FillCircle(x, y, r float64, grad constellation.Gradient) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-r, y-r)
	c.dst.DrawImage(c.sprite(r, grad), op)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
}

func (c *Canvas) sprite(r float64, grad constellation.Gradient) *ebiten.Image {
	key := spriteKey{
		r:     r,
		inner: color.NRGBAModel.Convert(grad.Inner).(color.NRGBA),
		outer: color.NRGBAModel.Convert(grad.Outer).(color.NRGBA),
	}
	if img, ok := c.sprites[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(gradientDisc(r, grad.Inner, grad.Outer))
	c.sprites[key] = img
	return img
}
