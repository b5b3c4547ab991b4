// Package mapview paints a top-down RGBA image of a heightfield, one pixel
// per cell, for the 2D hazard map.
package mapview

import (
	"image"

	"terrain-viewer/internal/meshing"
	"terrain-viewer/internal/terrain"
)

// Painter owns the image a map is painted into; it is reused between paints.
type Painter struct {
	img *image.RGBA
}

// Paint shades every cell with the terrain's green height ramp. When slopes is
// non-nil each cell is blended with its hazard tier colour, the same way the
// 3D overlay blends over the base mesh. Border cells have no tier and keep
// the plain ramp. Pixel (x, y) is cell (i=x, j=y).
func (p *Painter) Paint(h *terrain.Heightfield, slopes *terrain.SlopeGrid, t terrain.Thresholds, hillHeight float64) *image.RGBA {
	if p.img == nil || p.img.Rect.Dx() != h.Width || p.img.Rect.Dy() != h.Depth {
		p.img = image.NewRGBA(image.Rect(0, 0, h.Width, h.Depth))
	}
	for i := 0; i < h.Width; i++ {
		for j := 0; j < h.Depth; j++ {
			r, g, b := 0.0, clamp01(meshing.GreenRamp(h.At(i, j), hillHeight)), 0.0
			if slopes != nil && terrain.Interior(h.Width, h.Depth, i, j) {
				c := t.Classify(slopes.At(i, j)).Color()
				a := float64(c.W())
				r = r*(1-a) + float64(c.X())*a
				g = g*(1-a) + float64(c.Y())*a
				b = b*(1-a) + float64(c.Z())*a
			}
			off := p.img.PixOffset(i, j)
			p.img.Pix[off+0] = toByte(r)
			p.img.Pix[off+1] = toByte(g)
			p.img.Pix[off+2] = toByte(b)
			p.img.Pix[off+3] = 0xff
		}
	}
	return p.img
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

func toByte(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
