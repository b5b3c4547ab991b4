package terrain

import "math"

// BorderSlope is the value reported for cells on the grid edge, which have
// no symmetric neighbour pair.
const BorderSlope = 0.0

// SlopeGrid holds one slope magnitude per heightfield cell. Border cells are
// always BorderSlope.
type SlopeGrid struct {
	Width  int
	Depth  int
	Slopes []float64 // same layout as Heightfield.Heights
}

// NewSlopeGrid allocates a grid matching h.
func NewSlopeGrid(h *Heightfield) *SlopeGrid {
	return &SlopeGrid{Width: h.Width, Depth: h.Depth, Slopes: make([]float64, len(h.Heights))}
}

// At returns the slope of cell (i, j).
func (s *SlopeGrid) At(i, j int) float64 {
	return s.Slopes[i*s.Depth+j]
}

// Interior reports whether (i, j) has neighbours on all four sides.
func Interior(width, depth, i, j int) bool {
	return i > 0 && i < width-1 && j > 0 && j < depth-1
}

// SlopeAt returns the central-difference gradient magnitude at (i, j):
// dX = (h[i+1][j] - h[i-1][j]) / 2, dZ = (h[i][j+1] - h[i][j-1]) / 2.
// Hazard thresholds are tuned to exactly this formula.
func SlopeAt(h *Heightfield, i, j int) float64 {
	if !Interior(h.Width, h.Depth, i, j) {
		return BorderSlope
	}
	dX := (h.At(i+1, j) - h.At(i-1, j)) / 2
	dZ := (h.At(i, j+1) - h.At(i, j-1)) / 2
	return math.Sqrt(dX*dX + dZ*dZ)
}

// Analyze computes a fresh slope grid for h.
func Analyze(h *Heightfield) *SlopeGrid {
	s := NewSlopeGrid(h)
	AnalyzeInto(h, s)
	return s
}

// AnalyzeInto overwrites every cell of s from h, reallocating s if the
// dimensions differ. No state is carried between calls.
func AnalyzeInto(h *Heightfield, s *SlopeGrid) {
	if s.Width != h.Width || s.Depth != h.Depth || len(s.Slopes) != len(h.Heights) {
		s.Width, s.Depth = h.Width, h.Depth
		s.Slopes = make([]float64, len(h.Heights))
	}
	for i := 0; i < h.Width; i++ {
		for j := 0; j < h.Depth; j++ {
			s.Slopes[i*s.Depth+j] = SlopeAt(h, i, j)
		}
	}
}
