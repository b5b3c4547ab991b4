package player

import (
	"math"
	"math/rand"
	"testing"

	"terrain-viewer/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

func testCamera() Camera {
	return Camera{Speed: 1, Sensitivity: 0.005, PitchLimit: 1.5}
}

func approxVec(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-5)
}

func TestNewCamera(t *testing.T) {
	c := NewCamera(config.Default().Camera)
	if !approxVec(c.Position, mgl32.Vec3{50, 1, 50}) {
		t.Errorf("start position = %v", c.Position)
	}
	if c.Yaw != 0 || c.Pitch != 0 {
		t.Errorf("expected level camera, got yaw %f pitch %f", c.Yaw, c.Pitch)
	}
}

func TestMovementDirections(t *testing.T) {
	tests := []struct {
		name string
		yaw  float64
		move Movement
		want mgl32.Vec3
	}{
		{"forward at yaw 0", 0, MoveForward, mgl32.Vec3{1, 0, 0}},
		{"backward at yaw 0", 0, MoveBackward, mgl32.Vec3{-1, 0, 0}},
		{"left at yaw 0", 0, MoveLeft, mgl32.Vec3{0, 0, -1}},
		{"right at yaw 0", 0, MoveRight, mgl32.Vec3{0, 0, 1}},
		{"forward at yaw pi/2", math.Pi / 2, MoveForward, mgl32.Vec3{0, 0, 1}},
		{"left at yaw pi/2", math.Pi / 2, MoveLeft, mgl32.Vec3{1, 0, 0}},
		{"up", 0.7, MoveUp, mgl32.Vec3{0, 1, 0}},
		{"down", 0.7, MoveDown, mgl32.Vec3{0, -1, 0}},
		{"forward and back cancel", 1.1, MoveForward | MoveBackward, mgl32.Vec3{}},
		{"up and down cancel", 0, MoveUp | MoveDown, mgl32.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCamera()
			c.Yaw = tt.yaw
			got := c.Apply(tt.move, Look{}).Position
			if !approxVec(got, tt.want) {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestMovementIgnoresPitch: looking up does not change the horizontal step
func TestMovementIgnoresPitch(t *testing.T) {
	c := testCamera()
	c.Pitch = 1.2
	got := c.Apply(MoveForward, Look{}).Position
	if !approxVec(got, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("position = %v", got)
	}
}

func TestSpeedIsPerTick(t *testing.T) {
	c := testCamera()
	c.Speed = 2.5
	for i := 0; i < 4; i++ {
		c = c.Apply(MoveForward, Look{})
	}
	if !approxVec(c.Position, mgl32.Vec3{10, 0, 0}) {
		t.Errorf("position after 4 ticks = %v", c.Position)
	}
}

func TestLook(t *testing.T) {
	c := testCamera().Apply(0, Look{DX: 100, DY: -40})
	if math.Abs(c.Yaw-0.5) > 1e-12 {
		t.Errorf("yaw = %f, want 0.5", c.Yaw)
	}
	if math.Abs(c.Pitch-0.2) > 1e-12 {
		t.Errorf("pitch = %f, want 0.2", c.Pitch)
	}
}

func TestLookUsesPreviousYawForMovement(t *testing.T) {
	c := testCamera().Apply(MoveForward, Look{DX: 314})
	if !approxVec(c.Position, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("movement should use pre-look yaw, got %v", c.Position)
	}
}

func TestPitchClamp(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	c := testCamera()
	for i := 0; i < 2000; i++ {
		c = c.Apply(0, Look{DX: rng.Float64()*400 - 200, DY: rng.Float64()*800 - 400})
		if c.Pitch > 1.5 || c.Pitch < -1.5 {
			t.Fatalf("pitch %f escaped clamp after %d steps", c.Pitch, i)
		}
	}

	up := testCamera().Apply(0, Look{DY: -10000})
	if up.Pitch != 1.5 {
		t.Errorf("pitch = %f, want 1.5", up.Pitch)
	}
	down := testCamera().Apply(0, Look{DY: 10000})
	if down.Pitch != -1.5 {
		t.Errorf("pitch = %f, want -1.5", down.Pitch)
	}
}

func TestYawUnbounded(t *testing.T) {
	c := testCamera()
	for i := 0; i < 10; i++ {
		c = c.Apply(0, Look{DX: 1000})
	}
	if math.Abs(c.Yaw-50) > 1e-9 {
		t.Errorf("yaw = %f, want 50", c.Yaw)
	}
}

func TestFrontVector(t *testing.T) {
	c := testCamera()
	if f := c.GetFrontVector(); !approxVec(f, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("front = %v", f)
	}
	c.Yaw = math.Pi / 2
	c.Pitch = 0.3
	f := c.GetFrontVector()
	if math.Abs(float64(f.Len())-1) > 1e-5 {
		t.Errorf("front not unit length: %v", f.Len())
	}
	if math.Abs(float64(f.Y())-math.Sin(0.3)) > 1e-5 {
		t.Errorf("front Y = %v", f.Y())
	}
}

func TestViewMatrixLooksForward(t *testing.T) {
	c := testCamera()
	c.Position = mgl32.Vec3{5, 2, 5}
	view := c.GetViewMatrix()
	// a point straight ahead lands on the -Z axis in view space
	p := view.Mul4x1(mgl32.Vec4{8, 2, 5, 1})
	if math.Abs(float64(p.X())) > 1e-4 || math.Abs(float64(p.Y())) > 1e-4 || p.Z() >= 0 {
		t.Errorf("ahead point in view space = %v", p)
	}
}
