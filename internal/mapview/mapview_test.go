package mapview

import (
	"testing"

	"terrain-viewer/internal/terrain"
)

func near(got, want uint8) bool {
	return int(got)-int(want) <= 1 && int(want)-int(got) <= 1
}

func TestPaintHeightRamp(t *testing.T) {
	h, _ := terrain.NewHeightfield(3, 2)
	h.Set(0, 0, 5)  // top of the ramp
	h.Set(1, 0, -5) // bottom
	h.Set(2, 1, 20) // clamped

	var p Painter
	img := p.Paint(h, nil, terrain.DefaultThresholds(), 5)
	if img.Rect.Dx() != 3 || img.Rect.Dy() != 2 {
		t.Fatalf("image is %v", img.Rect)
	}
	tests := []struct {
		x, y  int
		green uint8
	}{
		{0, 0, 255},
		{1, 0, 0},
		{1, 1, 128},
		{2, 1, 255},
	}
	for _, tt := range tests {
		c := img.RGBAAt(tt.x, tt.y)
		if c.R != 0 || c.B != 0 || c.A != 255 || c.G != tt.green {
			t.Errorf("pixel (%d,%d) = %v, want green %d", tt.x, tt.y, c, tt.green)
		}
	}
}

func TestPaintHazardBlend(t *testing.T) {
	h, _ := terrain.NewHeightfield(5, 5)
	h.Set(3, 2, 10) // (2,2) danger
	s := terrain.Analyze(h)

	var p Painter
	img := p.Paint(h, s, terrain.DefaultThresholds(), 5)

	// danger over mid green: r = 0.7, g = 0.5*0.3, b = 0
	if c := img.RGBAAt(2, 2); !near(c.R, 179) || !near(c.G, 38) || c.B != 0 {
		t.Errorf("danger cell = %v", c)
	}
	// safe interior cell picks up the blue tint
	if c := img.RGBAAt(1, 1); c.B == 0 || c.R == 0 {
		t.Errorf("safe cell = %v, want blended tint", c)
	}
	// border cells stay on the plain ramp
	if c := img.RGBAAt(0, 2); c.R != 0 || c.B != 0 || c.G != 128 {
		t.Errorf("border cell = %v", c)
	}
}

func TestPainterReusesImage(t *testing.T) {
	h, _ := terrain.NewHeightfield(4, 4)
	var p Painter
	a := p.Paint(h, nil, terrain.DefaultThresholds(), 5)
	b := p.Paint(h, nil, terrain.DefaultThresholds(), 5)
	if a != b {
		t.Error("same-size paint should reuse the image")
	}
	big, _ := terrain.NewHeightfield(6, 4)
	if c := p.Paint(big, nil, terrain.DefaultThresholds(), 5); c == a || c.Rect.Dx() != 6 {
		t.Error("resized grid should get a new image")
	}
}

func TestPaintFlatHills(t *testing.T) {
	h, _ := terrain.NewHeightfield(2, 2)
	h.Set(1, 1, 4)
	var p Painter
	img := p.Paint(h, nil, terrain.DefaultThresholds(), 0)
	for _, c := range []struct{ x, y int }{{0, 0}, {1, 1}} {
		if px := img.RGBAAt(c.x, c.y); px.G != 128 {
			t.Errorf("pixel %v green = %d, want 128 with zero hill height", c, px.G)
		}
	}
}
