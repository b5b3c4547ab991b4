package noise

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestNewBackends(t *testing.T) {
	for _, kind := range []string{KindPerlin, KindSimplex} {
		f, err := New(kind, 42, 6)
		if err != nil {
			t.Fatalf("New(%q): %v", kind, err)
		}
		if f == nil {
			t.Fatalf("New(%q) returned nil field", kind)
		}
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(KindPerlin, 1, 0); !errors.Is(err, ErrBadOctaves) {
		t.Errorf("expected ErrBadOctaves, got %v", err)
	}
	if _, err := New("worley", 1, 4); err == nil {
		t.Error("expected error for unknown backend")
	}
}

// TestDeterministic verifies two fields with the same configuration agree exactly
func TestDeterministic(t *testing.T) {
	for _, kind := range []string{KindPerlin, KindSimplex} {
		a, _ := New(kind, 1234, 6)
		b, _ := New(kind, 1234, 6)
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			x := rng.Float64()*20 - 10
			y := rng.Float64()*20 - 10
			if va, vb := a.Eval(x, y, 0), b.Eval(x, y, 0); va != vb {
				t.Fatalf("%s not deterministic at (%f,%f): %f != %f", kind, x, y, va, vb)
			}
			if v1, v2 := a.Eval(x, y, 0), a.Eval(x, y, 0); v1 != v2 {
				t.Fatalf("%s changed between calls at (%f,%f)", kind, x, y)
			}
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	for _, kind := range []string{KindPerlin, KindSimplex} {
		a, _ := New(kind, 1, 6)
		b, _ := New(kind, 2, 6)
		same := true
		for i := 0; i < 50; i++ {
			x := 0.37 + float64(i)*0.61
			if a.Eval(x, x*0.5, 0) != b.Eval(x, x*0.5, 0) {
				same = false
				break
			}
		}
		if same {
			t.Errorf("%s: seeds 1 and 2 produced identical samples", kind)
		}
	}
}

func TestRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	p := NewPerlin(42, 6)
	s := NewSimplex(42, 6)
	for i := 0; i < 1000; i++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		if v := p.Eval(x, y, 0); math.IsNaN(v) || math.Abs(v) > 2 {
			t.Errorf("perlin out of range at (%f,%f): %f", x, y, v)
		}
		if v := s.Eval(x, y, 0); math.IsNaN(v) || math.Abs(v) > 1.0001 {
			t.Errorf("simplex out of range at (%f,%f): %f", x, y, v)
		}
	}
}

// TestContinuity verifies nearby samples stay close
func TestContinuity(t *testing.T) {
	for _, f := range []Field{NewPerlin(42, 6), NewSimplex(42, 6)} {
		v1 := f.Eval(1.0, 1.0, 0)
		v2 := f.Eval(1.001, 1.0, 0)
		if diff := math.Abs(v1 - v2); diff >= 0.1 {
			t.Errorf("%T not continuous: %f vs %f (diff %f)", f, v1, v2, diff)
		}
	}
}

func TestConstant(t *testing.T) {
	c := Constant(0.2)
	if v := c.Eval(3, -7, 11); v != 0.2 {
		t.Errorf("expected 0.2, got %f", v)
	}
}
