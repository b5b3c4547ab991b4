package terrain

import (
	"errors"
	"fmt"

	"terrain-viewer/internal/noise"
)

// ErrInvalidDimensions is returned for grids smaller than 2x2.
var ErrInvalidDimensions = errors.New("heightfield dimensions must be at least 2x2")

// coarseFrequency scales noise coordinates for the broad hill term
const coarseFrequency = 0.5

// Heightfield is a Width x Depth grid of surface heights on a unit grid.
// Cell (i, j) sits at world X=i, Z=j.
type Heightfield struct {
	Width   int
	Depth   int
	Heights []float64 // row-major by i: index i*Depth + j
}

// NewHeightfield allocates a zeroed grid.
func NewHeightfield(width, depth int) (*Heightfield, error) {
	if width < 2 || depth < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, depth)
	}
	return &Heightfield{Width: width, Depth: depth, Heights: make([]float64, width*depth)}, nil
}

// At returns the height of cell (i, j).
func (h *Heightfield) At(i, j int) float64 {
	return h.Heights[i*h.Depth+j]
}

// Set stores the height of cell (i, j).
func (h *Heightfield) Set(i, j int, v float64) {
	h.Heights[i*h.Depth+j] = v
}

// Params controls heightfield synthesis.
type Params struct {
	Width      int
	Depth      int
	CellStep   float64
	Scale      float64
	HillHeight float64
}

// Generator samples a noise field on a fixed grid.
type Generator struct {
	field  noise.Field
	params Params
}

// NewGenerator validates params up front so the frame loop never sees a bad grid.
func NewGenerator(field noise.Field, p Params) (*Generator, error) {
	if p.Width < 2 || p.Depth < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, p.Width, p.Depth)
	}
	if field == nil {
		return nil, errors.New("generator needs a noise field")
	}
	return &Generator{field: field, params: p}, nil
}

// HeightAt computes the surface height of cell (i, j): a fine term scaled by
// Scale plus a half-frequency hill term scaled by HillHeight.
func (g *Generator) HeightAt(i, j int) float64 {
	x := float64(i) * g.params.CellStep
	y := float64(j) * g.params.CellStep
	v := g.field.Eval(x, y, 0) * g.params.Scale
	v += g.params.HillHeight * g.field.Eval(x*coarseFrequency, y*coarseFrequency, 0)
	return v
}

// Generate builds a fresh heightfield.
func (g *Generator) Generate() *Heightfield {
	// dimensions were checked by NewGenerator
	h, _ := NewHeightfield(g.params.Width, g.params.Depth)
	g.Fill(h)
	return h
}

// Fill overwrites every cell of h. h must match the generator's dimensions.
func (g *Generator) Fill(h *Heightfield) {
	if h.Width != g.params.Width || h.Depth != g.params.Depth {
		panic(fmt.Sprintf("terrain: Fill into %dx%d grid, generator is %dx%d", h.Width, h.Depth, g.params.Width, g.params.Depth))
	}
	for i := 0; i < h.Width; i++ {
		for j := 0; j < h.Depth; j++ {
			h.Heights[i*h.Depth+j] = g.HeightAt(i, j)
		}
	}
}
