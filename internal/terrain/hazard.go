package terrain

import "github.com/go-gl/mathgl/mgl32"

// Tier is a discrete steepness class, ordered from least to most hazardous.
type Tier int

const (
	TierSafe Tier = iota
	TierCaution
	TierDanger
	TierCount // sentinel for array sizing
)

func (t Tier) String() string {
	switch t {
	case TierSafe:
		return "safe"
	case TierCaution:
		return "caution"
	case TierDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// Default slope thresholds
const (
	DefaultCaution = 0.5
	DefaultDanger  = 0.8
)

// Thresholds are strict lower bounds: a slope must exceed Danger to be
// TierDanger and exceed Caution to be TierCaution.
type Thresholds struct {
	Caution float64
	Danger  float64
}

// DefaultThresholds returns the stock 0.5 / 0.8 thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Caution: DefaultCaution, Danger: DefaultDanger}
}

// Classify maps a slope to its tier.
func (t Thresholds) Classify(slope float64) Tier {
	if slope > t.Danger {
		return TierDanger
	}
	if slope > t.Caution {
		return TierCaution
	}
	return TierSafe
}

// Classify maps a slope to its tier using the default thresholds.
func Classify(slope float64) Tier {
	return DefaultThresholds().Classify(slope)
}

var tierColors = [TierCount]mgl32.Vec4{
	TierSafe:    {0.2, 0.4, 0.8, 0.3},
	TierCaution: {1.0, 1.0, 0.0, 0.5},
	TierDanger:  {1.0, 0.0, 0.0, 0.7},
}

// Color returns the overlay RGBA for the tier.
func (t Tier) Color() mgl32.Vec4 {
	if t < 0 || t >= TierCount {
		return mgl32.Vec4{}
	}
	return tierColors[t]
}

// Summary counts interior cells per tier.
type Summary struct {
	Counts   [TierCount]int
	MaxSlope float64
	Cells    int
}

// Summarize tallies the interior cells of s. Border cells are excluded since
// their slope is a sentinel, not a measurement.
func Summarize(s *SlopeGrid, t Thresholds) Summary {
	var sum Summary
	for i := 1; i < s.Width-1; i++ {
		for j := 1; j < s.Depth-1; j++ {
			v := s.At(i, j)
			sum.Counts[t.Classify(v)]++
			sum.Cells++
			if v > sum.MaxSlope {
				sum.MaxSlope = v
			}
		}
	}
	return sum
}
