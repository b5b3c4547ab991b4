package meshing

import (
	"terrain-viewer/internal/terrain"
)

// GreenRamp returns the green intensity 0.5 + 0.5*height/hillHeight. With a
// zero hill height the terrain is shaded mid-green.
func GreenRamp(height, hillHeight float64) float64 {
	if hillHeight == 0 {
		return 0.5
	}
	return 0.5 + 0.5*height/hillHeight
}

// BuildTerrainStrips fills dst with one triangle strip per row pair (i, i+1).
// Each strip alternates (i, h[i][j], j) and (i+1, h[i+1][j], j) for every j,
// both shaded green by the height of (i, j) relative to hillHeight.
func BuildTerrainStrips(dst *Batch, h *terrain.Heightfield, hillHeight float64) {
	dst.Reset()
	dst.grow((h.Width - 1) * h.Depth * 2)

	for i := 0; i < h.Width-1; i++ {
		first := int32(dst.VertexCount())
		for j := 0; j < h.Depth; j++ {
			g := float32(GreenRamp(h.At(i, j), hillHeight))
			dst.push(float32(i), float32(h.At(i, j)), float32(j), 0, g, 0, 1)
			dst.push(float32(i+1), float32(h.At(i+1, j)), float32(j), 0, g, 0, 1)
		}
		dst.Ranges = append(dst.Ranges, Range{First: first, Count: int32(h.Depth * 2)})
	}
}

// BuildHazardTriangles fills dst with two triangles per interior cell, covering
// the quad from (i, j) to (i+1, j+1) lifted by lift above the surface and
// coloured by the cell's hazard tier. A single range spans the whole batch.
func BuildHazardTriangles(dst *Batch, h *terrain.Heightfield, s *terrain.SlopeGrid, t terrain.Thresholds, lift float32) {
	dst.Reset()
	interior := (h.Width - 2) * (h.Depth - 2)
	if interior <= 0 {
		return
	}
	dst.grow(interior * 6)

	corner := func(i, j int) (float32, float32, float32) {
		return float32(i), float32(h.At(i, j)) + lift, float32(j)
	}
	for i := 1; i < h.Width-1; i++ {
		for j := 1; j < h.Depth-1; j++ {
			c := t.Classify(s.At(i, j)).Color()
			r, g, b, a := c.X(), c.Y(), c.Z(), c.W()

			x0, y0, z0 := corner(i, j)
			x1, y1, z1 := corner(i+1, j)
			x2, y2, z2 := corner(i+1, j+1)
			x3, y3, z3 := corner(i, j+1)

			dst.push(x0, y0, z0, r, g, b, a)
			dst.push(x1, y1, z1, r, g, b, a)
			dst.push(x2, y2, z2, r, g, b, a)

			dst.push(x0, y0, z0, r, g, b, a)
			dst.push(x2, y2, z2, r, g, b, a)
			dst.push(x3, y3, z3, r, g, b, a)
		}
	}
	dst.Ranges = append(dst.Ranges, Range{First: 0, Count: int32(dst.VertexCount())})
}
