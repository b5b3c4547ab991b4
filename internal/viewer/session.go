package viewer

import (
	"fmt"
	"log"

	"terrain-viewer/internal/config"
	"terrain-viewer/internal/input"
	"terrain-viewer/internal/noise"
	"terrain-viewer/internal/player"
	"terrain-viewer/internal/profiling"
	"terrain-viewer/internal/terrain"
)

// Frame is the read-only view of one frame's state handed to the renderer
type Frame struct {
	Heights    *terrain.Heightfield
	Slopes     *terrain.SlopeGrid // only refreshed while Scanning
	Scanning   bool
	Summary    terrain.Summary
	Camera     player.Camera
	Thresholds terrain.Thresholds
	HillHeight float64
	Number     uint64
}

// Session owns all per-process viewer state and is mutated only by Update.
type Session struct {
	settings   config.Settings
	generator  *terrain.Generator
	thresholds terrain.Thresholds

	heights  *terrain.Heightfield
	slopes   *terrain.SlopeGrid
	camera   player.Camera
	scanning bool
	summary  terrain.Summary
	frames   uint64
}

// NewSession validates the settings and builds the configured noise field.
func NewSession(s config.Settings) (*Session, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	field, err := noise.New(s.Terrain.Noise, s.Terrain.Seed, s.Terrain.Octaves)
	if err != nil {
		return nil, fmt.Errorf("build noise field: %w", err)
	}
	log.Printf("terrain: %dx%d, %s noise, %d octaves, seed %d",
		s.Terrain.Width, s.Terrain.Depth, s.Terrain.Noise, s.Terrain.Octaves, s.Terrain.Seed)
	return NewSessionWithField(s, field)
}

// NewSessionWithField builds a session around an explicit noise field.
func NewSessionWithField(s config.Settings, field noise.Field) (*Session, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	gen, err := terrain.NewGenerator(field, terrain.Params{
		Width:      s.Terrain.Width,
		Depth:      s.Terrain.Depth,
		CellStep:   s.Terrain.CellStep,
		Scale:      s.Terrain.Scale,
		HillHeight: s.Terrain.HillHeight,
	})
	if err != nil {
		return nil, err
	}
	heights := gen.Generate()
	return &Session{
		settings:   s,
		generator:  gen,
		thresholds: terrain.Thresholds{Caution: s.Hazard.Caution, Danger: s.Hazard.Danger},
		heights:    heights,
		slopes:     terrain.NewSlopeGrid(heights),
		camera:     player.NewCamera(s.Camera),
	}, nil
}

// Update advances one frame: regenerate the terrain, apply input to the
// camera, and refresh the slope grid while scan is held.
func (s *Session) Update(in input.Snapshot) {
	s.frames++

	func() {
		defer profiling.Track("terrain.Generate")()
		s.generator.Fill(s.heights)
	}()

	s.camera = s.camera.Apply(MovementFrom(in), player.Look{DX: in.CursorDX, DY: in.CursorDY})

	s.scanning = in.ScanActive()
	if s.scanning {
		func() {
			defer profiling.Track("terrain.Analyze")()
			terrain.AnalyzeInto(s.heights, s.slopes)
			s.summary = terrain.Summarize(s.slopes, s.thresholds)
		}()
	}
}

// Frame returns the state to draw for the latest Update.
func (s *Session) Frame() Frame {
	return Frame{
		Heights:    s.heights,
		Slopes:     s.slopes,
		Scanning:   s.scanning,
		Summary:    s.summary,
		Camera:     s.camera,
		Thresholds: s.thresholds,
		HillHeight: s.settings.Terrain.HillHeight,
		Number:     s.frames,
	}
}

// Camera returns the current camera pose.
func (s *Session) Camera() player.Camera { return s.camera }

// MovementFrom maps held actions to camera movement flags.
func MovementFrom(in input.Snapshot) player.Movement {
	var m player.Movement
	if in.IsActive(input.ActionMoveForward) {
		m |= player.MoveForward
	}
	if in.IsActive(input.ActionMoveBackward) {
		m |= player.MoveBackward
	}
	if in.IsActive(input.ActionStrafeLeft) {
		m |= player.MoveLeft
	}
	if in.IsActive(input.ActionStrafeRight) {
		m |= player.MoveRight
	}
	if in.IsActive(input.ActionAscend) {
		m |= player.MoveUp
	}
	if in.IsActive(input.ActionDescend) {
		m |= player.MoveDown
	}
	return m
}
