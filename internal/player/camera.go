package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Apply returns the camera after one frame of input. Translation uses the
// yaw from before this frame's look update.
func (c Camera) Apply(m Movement, l Look) Camera {
	c.Position = c.Position.Add(c.displacement(m))
	c.Yaw += c.Sensitivity * l.DX
	c.Pitch -= c.Sensitivity * l.DY
	c.Pitch = clampPitch(c.Pitch, c.PitchLimit)
	return c
}

func (c Camera) displacement(m Movement) mgl32.Vec3 {
	sin, cos := math.Sincos(c.Yaw)
	speed := float64(c.Speed)

	var dx, dy, dz float64
	if m.Has(MoveForward) {
		dx += speed * cos
		dz += speed * sin
	}
	if m.Has(MoveBackward) {
		dx -= speed * cos
		dz -= speed * sin
	}
	if m.Has(MoveLeft) {
		dx += speed * sin
		dz -= speed * cos
	}
	if m.Has(MoveRight) {
		dx -= speed * sin
		dz += speed * cos
	}
	if m.Has(MoveUp) {
		dy += speed
	}
	if m.Has(MoveDown) {
		dy -= speed
	}
	return mgl32.Vec3{float32(dx), float32(dy), float32(dz)}
}

func clampPitch(pitch, limit float64) float64 {
	if pitch > limit {
		return limit
	}
	if pitch < -limit {
		return -limit
	}
	return pitch
}

// GetFrontVector returns the unit view direction.
func (c Camera) GetFrontVector() mgl32.Vec3 {
	cp := math.Cos(c.Pitch)
	return mgl32.Vec3{
		float32(math.Cos(c.Yaw) * cp),
		float32(math.Sin(c.Pitch)),
		float32(math.Sin(c.Yaw) * cp),
	}
}

// GetViewMatrix looks from the camera position along the front vector with +Y up.
func (c Camera) GetViewMatrix() mgl32.Mat4 {
	target := c.Position.Add(c.GetFrontVector())
	return mgl32.LookAtV(c.Position, target, mgl32.Vec3{0, 1, 0})
}
