package noise

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Backend names accepted by New
const (
	KindPerlin  = "perlin"
	KindSimplex = "simplex"
)

// ErrBadOctaves is returned when a field is requested with fewer than one octave.
var ErrBadOctaves = errors.New("octave count must be at least 1")

// Field is a coherent noise source. Eval is deterministic for fixed inputs
// and configuration and returns values in roughly [-1, 1].
type Field interface {
	Eval(x, y, z float64) float64
}

// New builds a field of the named backend.
func New(kind string, seed int64, octaves int) (Field, error) {
	if octaves < 1 {
		return nil, fmt.Errorf("noise %s: %w (got %d)", kind, ErrBadOctaves, octaves)
	}
	switch kind {
	case KindPerlin:
		return NewPerlin(seed, octaves), nil
	case KindSimplex:
		return NewSimplex(seed, octaves), nil
	default:
		return nil, fmt.Errorf("unknown noise backend %q", kind)
	}
}

// Perlin is classic gradient noise summed over octaves, each octave at twice
// the frequency and half the amplitude of the previous one.
type Perlin struct {
	p *perlin.Perlin
}

func NewPerlin(seed int64, octaves int) *Perlin {
	// alpha is the amplitude divisor, beta the frequency multiplier
	return &Perlin{p: perlin.NewPerlin(2, 2, int32(octaves), seed)}
}

func (p *Perlin) Eval(x, y, z float64) float64 {
	return p.p.Noise3D(x, y, z)
}

// Simplex is OpenSimplex noise summed over octaves and normalized by the
// total amplitude so the result stays in [-1, 1].
type Simplex struct {
	n           opensimplex.Noise
	octaves     int
	persistence float64
	lacunarity  float64
}

func NewSimplex(seed int64, octaves int) *Simplex {
	return &Simplex{
		n:           opensimplex.New(seed),
		octaves:     octaves,
		persistence: 0.5,
		lacunarity:  2.0,
	}
}

func (s *Simplex) Eval(x, y, z float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < s.octaves; i++ {
		sum += s.n.Eval3(x*frequency, y*frequency, z*frequency) * amplitude
		norm += amplitude
		amplitude *= s.persistence
		frequency *= s.lacunarity
	}
	return sum / norm
}

// Constant returns the same value everywhere. Useful for flat test terrain.
type Constant float64

func (c Constant) Eval(_, _, _ float64) float64 { return float64(c) }
