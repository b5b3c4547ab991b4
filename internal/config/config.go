package config

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"terrain-viewer/internal/noise"
)

// ErrInvalidSettings is returned by Validate for any out-of-range value.
var ErrInvalidSettings = errors.New("invalid settings")

// Noise backends understood by the noise package
const (
	NoisePerlin  = noise.KindPerlin
	NoiseSimplex = noise.KindSimplex
)

// WindowSettings describes the fixed-size viewer window
type WindowSettings struct {
	Width  int
	Height int
	Title  string
}

// TerrainSettings holds heightfield generation parameters
type TerrainSettings struct {
	Width      int     // cells along X
	Depth      int     // cells along Z
	CellStep   float64 // noise-space distance between neighbouring cells
	Scale      float64 // amplitude of the fine noise term
	HillHeight float64 // amplitude of the coarse noise term
	Octaves    int
	Seed       int64
	Noise      string
}

// CameraSettings holds the free camera start pose and tuning
type CameraSettings struct {
	StartX, StartY, StartZ float32
	Speed                  float32 // units per frame tick
	Sensitivity            float64 // radians per pixel of cursor travel
	PitchLimit             float64
	FOV                    float32 // degrees
	NearPlane              float32
	FarPlane               float32
}

// HazardSettings holds the slope thresholds for the overlay tiers
type HazardSettings struct {
	Caution     float64
	Danger      float64
	OverlayLift float32
}

// Settings is the full viewer configuration
type Settings struct {
	Window   WindowSettings
	Terrain  TerrainSettings
	Camera   CameraSettings
	Hazard   HazardSettings
	FPSLimit int // 0 = uncapped
}

// Default returns the stock viewer configuration.
func Default() Settings {
	s := Settings{
		Window: WindowSettings{Width: 800, Height: 600, Title: "Terrain Visualization"},
		Terrain: TerrainSettings{
			Width:      100,
			Depth:      100,
			CellStep:   0.1,
			Scale:      0.1,
			HillHeight: 5.0,
			Octaves:    6,
			Seed:       0,
			Noise:      NoisePerlin,
		},
		Camera: CameraSettings{
			Speed:       1.0,
			Sensitivity: 0.005,
			PitchLimit:  1.5,
			FOV:         45.0,
			NearPlane:   0.1,
			FarPlane:    100.0,
		},
		Hazard: HazardSettings{Caution: 0.5, Danger: 0.8, OverlayLift: 0.05},
	}
	s.PlaceCamera()
	return s
}

// PlaceCamera puts the camera start pose over the middle of the grid,
// one unit above sea level for the default scale.
func (s *Settings) PlaceCamera() {
	s.Camera.StartX = float32(s.Terrain.Width / 2)
	s.Camera.StartY = float32(s.Terrain.Scale * 10)
	s.Camera.StartZ = float32(s.Terrain.Depth / 2)
}

// BindFlags registers the start-up knobs on fs. Call PlaceCamera after parsing
// if the grid size may have changed.
func (s *Settings) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&s.Terrain.Width, "width", s.Terrain.Width, "terrain cells along X")
	fs.IntVar(&s.Terrain.Depth, "depth", s.Terrain.Depth, "terrain cells along Z")
	fs.Float64Var(&s.Terrain.Scale, "scale", s.Terrain.Scale, "fine noise amplitude")
	fs.Float64Var(&s.Terrain.HillHeight, "hill", s.Terrain.HillHeight, "coarse noise amplitude")
	fs.IntVar(&s.Terrain.Octaves, "octaves", s.Terrain.Octaves, "noise octave count")
	fs.Int64Var(&s.Terrain.Seed, "seed", s.Terrain.Seed, "noise seed")
	fs.StringVar(&s.Terrain.Noise, "noise", s.Terrain.Noise, "noise backend: perlin or simplex")
	fs.IntVar(&s.FPSLimit, "fps", s.FPSLimit, "frame rate cap, 0 for none")
}

// Validate rejects settings the generator or the frame loop cannot run with.
func (s Settings) Validate() error {
	t := s.Terrain
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"cell step", t.CellStep},
		{"scale", t.Scale},
		{"hill height", t.HillHeight},
		{"caution threshold", s.Hazard.Caution},
		{"danger threshold", s.Hazard.Danger},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidSettings, f.name, f.v)
		}
	}
	switch {
	case t.Width < 2 || t.Depth < 2:
		return fmt.Errorf("%w: terrain must be at least 2x2, got %dx%d", ErrInvalidSettings, t.Width, t.Depth)
	case t.Octaves < 1:
		return fmt.Errorf("%w: octaves must be positive, got %d", ErrInvalidSettings, t.Octaves)
	case t.CellStep <= 0:
		return fmt.Errorf("%w: cell step must be positive, got %g", ErrInvalidSettings, t.CellStep)
	case t.Noise != NoisePerlin && t.Noise != NoiseSimplex:
		return fmt.Errorf("%w: unknown noise backend %q", ErrInvalidSettings, t.Noise)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window must have positive size, got %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	}
	if s.Hazard.Caution < 0 || s.Hazard.Danger < s.Hazard.Caution {
		return fmt.Errorf("%w: hazard thresholds must satisfy 0 <= caution <= danger, got %g/%g",
			ErrInvalidSettings, s.Hazard.Caution, s.Hazard.Danger)
	}
	if s.Camera.PitchLimit <= 0 {
		return fmt.Errorf("%w: pitch limit must be positive", ErrInvalidSettings)
	}
	if s.FPSLimit < 0 {
		return fmt.Errorf("%w: fps limit must not be negative", ErrInvalidSettings)
	}
	return nil
}
