package graphics

import (
	"terrain-viewer/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the projection matrix; the view comes from the player pose
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
	Width       int
	Height      int
}

func NewCamera(width, height int, cfg config.CameraSettings) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         cfg.FOV,
		NearPlane:   cfg.NearPlane,
		FarPlane:    cfg.FarPlane,
		Width:       width,
		Height:      height,
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// GetOrthoMatrix maps window pixels (origin top-left) to clip space.
func (c *Camera) GetOrthoMatrix() mgl32.Mat4 {
	return mgl32.Ortho(0, float32(c.Width), float32(c.Height), 0, -1, 1)
}

// SetViewport updates the aspect ratio after a framebuffer change.
func (c *Camera) SetViewport(width, height int) {
	if height == 0 {
		return
	}
	c.Width, c.Height = width, height
	c.AspectRatio = float32(width) / float32(height)
}
