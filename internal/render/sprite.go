package render

import (
	"image"
	"image/color"
	"math"
)

// gradientDisc rasterizes a filled disc of radius r with a radial gradient
// from inner at the center to outer at the rim. Pixels outside the disc are
// transparent, with a one-pixel soft edge so the rim doesn't alias. Pure
// image math so it can be exercised without a graphics context.
func gradientDisc(r float64, inner, outer color.Color) *image.RGBA {
	size := int(math.Ceil(r * 2))
	if size < 1 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	ir, ig, ib, ia := rgbaF(inner)
	or, og, ob, oa := rgbaF(outer)

	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			// Distance from the pixel center to the disc center.
			dx := float64(px) + 0.5 - r
			dy := float64(py) + 0.5 - r
			d := math.Hypot(dx, dy)

			cover := clamp01(r - d)
			if cover == 0 {
				continue
			}

			t := clamp01(d / r)
			a := lerp(ia, oa, t) * cover
			img.SetRGBA(px, py, color.RGBA{
				R: uint8(lerp(ir, or, t) * a * 255),
				G: uint8(lerp(ig, og, t) * a * 255),
				B: uint8(lerp(ib, ob, t) * a * 255),
				A: uint8(a * 255),
			})
		}
	}
	return img
}

// rgbaF returns non-premultiplied channels in [0, 1].
func rgbaF(c color.Color) (r, g, b, a float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float64(nc.R) / 255, float64(nc.G) / 255, float64(nc.B) / 255, float64(nc.A) / 255
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
