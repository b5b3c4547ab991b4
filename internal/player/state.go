package player

import (
	"terrain-viewer/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the free-flying viewer pose. Yaw and pitch are in radians; yaw is
// unbounded, pitch stays within [-PitchLimit, PitchLimit].
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float64
	Pitch       float64
	Speed       float32 // units per frame tick, not scaled by frame time
	Sensitivity float64 // radians per pixel of cursor offset
	PitchLimit  float64
}

// NewCamera places a camera at the configured start pose, looking along +X.
func NewCamera(cfg config.CameraSettings) Camera {
	return Camera{
		Position:    mgl32.Vec3{cfg.StartX, cfg.StartY, cfg.StartZ},
		Speed:       cfg.Speed,
		Sensitivity: cfg.Sensitivity,
		PitchLimit:  cfg.PitchLimit,
	}
}

// Movement is a set of held movement keys for one frame
type Movement uint8

const (
	MoveForward Movement = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// Has reports whether every flag in f is set.
func (m Movement) Has(f Movement) bool {
	return m&f == f
}

// Look is the cursor offset from the window centre in pixels, measured
// before the cursor is re-centred. Positive DX is right, positive DY is down.
type Look struct {
	DX, DY float64
}
