package terrain

import (
	"math"
	"math/rand"
	"testing"
)

func randomField(t *testing.T, rng *rand.Rand, w, d int) *Heightfield {
	t.Helper()
	h, err := NewHeightfield(w, d)
	if err != nil {
		t.Fatal(err)
	}
	for idx := range h.Heights {
		h.Heights[idx] = rng.Float64()*10 - 5
	}
	return h
}

// TestSpike: h[i+1][j]=10, other neighbours 0 -> slope 5, danger
func TestSpike(t *testing.T) {
	h, _ := NewHeightfield(5, 5)
	h.Set(2, 2, 123) // centre does not participate
	h.Set(3, 2, 10)
	got := SlopeAt(h, 2, 2)
	if math.Abs(got-5) > 1e-12 {
		t.Fatalf("slope = %f, want 5", got)
	}
	if tier := Classify(got); tier != TierDanger {
		t.Errorf("tier = %v, want danger", tier)
	}
}

func TestCentralDifference(t *testing.T) {
	h, _ := NewHeightfield(3, 3)
	h.Set(0, 1, 1)
	h.Set(2, 1, 2) // dX = 0.5
	h.Set(1, 0, 3)
	h.Set(1, 2, 3.8) // dZ = 0.4
	want := math.Sqrt(0.5*0.5 + 0.4*0.4)
	if got := SlopeAt(h, 1, 1); math.Abs(got-want) > 1e-12 {
		t.Errorf("slope = %f, want %f", got, want)
	}
}

func TestBorderIsSentinel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, dims := range [][2]int{{2, 2}, {2, 7}, {3, 3}, {17, 9}, {40, 40}} {
		h := randomField(t, rng, dims[0], dims[1])
		s := Analyze(h)
		for i := 0; i < h.Width; i++ {
			for j := 0; j < h.Depth; j++ {
				if Interior(h.Width, h.Depth, i, j) {
					continue
				}
				if v := s.At(i, j); v != BorderSlope {
					t.Fatalf("%dx%d border (%d,%d) = %f, want %f", dims[0], dims[1], i, j, v, BorderSlope)
				}
			}
		}
	}
}

// TestSlopeReflection verifies mirroring the neighbour pairs leaves the slope unchanged
func TestSlopeReflection(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	h := randomField(t, rng, 20, 20)
	mirrored, _ := NewHeightfield(20, 20)
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			mirrored.Set(19-i, 19-j, h.At(i, j))
		}
	}
	for i := 1; i < 19; i++ {
		for j := 1; j < 19; j++ {
			a := SlopeAt(h, i, j)
			b := SlopeAt(mirrored, 19-i, 19-j)
			if math.Abs(a-b) > 1e-12 {
				t.Fatalf("slope at (%d,%d) = %f, mirrored = %f", i, j, a, b)
			}
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	h := randomField(t, rng, 30, 25)
	a := Analyze(h)
	b := NewSlopeGrid(h)
	AnalyzeInto(h, b)
	AnalyzeInto(h, b)
	for idx := range a.Slopes {
		if a.Slopes[idx] != b.Slopes[idx] {
			t.Fatalf("slope %d differs: %f vs %f", idx, a.Slopes[idx], b.Slopes[idx])
		}
	}
}

func TestAnalyzeIntoResizes(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	h := randomField(t, rng, 12, 8)
	s := &SlopeGrid{}
	AnalyzeInto(h, s)
	if s.Width != 12 || s.Depth != 8 || len(s.Slopes) != 96 {
		t.Fatalf("grid not resized: %dx%d len %d", s.Width, s.Depth, len(s.Slopes))
	}
	if got, want := s.At(5, 4), SlopeAt(h, 5, 4); got != want {
		t.Errorf("slope = %f, want %f", got, want)
	}
}
