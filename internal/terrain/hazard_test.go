package terrain

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		slope float64
		want  Tier
	}{
		{0, TierSafe},
		{0.3, TierSafe},
		{0.5, TierSafe},
		{0.5000001, TierCaution},
		{0.8, TierCaution},
		{0.8000001, TierDanger},
		{0.9, TierDanger},
		{5, TierDanger},
	}
	for _, tt := range tests {
		if got := Classify(tt.slope); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.slope, got, tt.want)
		}
	}
}

func TestCustomThresholds(t *testing.T) {
	th := Thresholds{Caution: 0.1, Danger: 0.2}
	if got := th.Classify(0.15); got != TierCaution {
		t.Errorf("got %v, want caution", got)
	}
	if got := th.Classify(0.25); got != TierDanger {
		t.Errorf("got %v, want danger", got)
	}
}

func TestTierColors(t *testing.T) {
	seen := map[[4]float32]Tier{}
	for tier := TierSafe; tier < TierCount; tier++ {
		c := tier.Color()
		if prev, dup := seen[c]; dup {
			t.Errorf("%v shares colour with %v", tier, prev)
		}
		seen[c] = tier
		if c.W() <= 0 || c.W() > 1 {
			t.Errorf("%v alpha %v out of range", tier, c.W())
		}
	}
	if c := TierDanger.Color(); c.X() != 1 || c.Y() != 0 || c.Z() != 0 {
		t.Errorf("danger should be red, got %v", c)
	}
	if c := TierCaution.Color(); c.X() != 1 || c.Y() != 1 || c.Z() != 0 {
		t.Errorf("caution should be yellow, got %v", c)
	}
	if c := Tier(42).Color(); c.W() != 0 {
		t.Errorf("unknown tier should be transparent, got %v", c)
	}
	if TierDanger.String() != "danger" || Tier(-1).String() != "unknown" {
		t.Error("unexpected tier names")
	}
}

func TestSummarize(t *testing.T) {
	h, _ := NewHeightfield(5, 5)
	h.Set(3, 2, 10)  // (2,2) slope 5
	h.Set(1, 1, 1.2) // (2,1) dX=-0.6 -> caution; (1,2) dZ=-0.6 -> caution
	s := Analyze(h)
	sum := Summarize(s, DefaultThresholds())
	if sum.Cells != 9 {
		t.Fatalf("expected 9 interior cells, got %d", sum.Cells)
	}
	if sum.Counts[TierDanger] < 1 {
		t.Errorf("expected a danger cell, got %+v", sum.Counts)
	}
	if sum.Counts[TierSafe]+sum.Counts[TierCaution]+sum.Counts[TierDanger] != sum.Cells {
		t.Errorf("counts do not add up: %+v", sum)
	}
	if sum.MaxSlope != 5 {
		t.Errorf("max slope = %f, want 5", sum.MaxSlope)
	}
}
