package field

import (
	"math"
	"math/rand"

	"github.com/golang/geo/s1"
)

// Jitter controls the random spread applied to transformed points so that
// repeated hits into the same sector do not land on the same pixel.
type Jitter struct {
	AngleRange    float64 // half-range in degrees added to the sector angle
	DistanceRange float64 // relative half-range applied to the base distance
}

// DefaultJitter matches the spread used by the original chart.
var DefaultJitter = Jitter{AngleRange: 0.05, DistanceRange: 0.10}

// The chart background is drawn with an elliptical projection, so the two
// axes stretch by different factors.
const (
	aScale = 1.2
	bScale = 0.8
)

// Transform converts a sector into chart coordinates, applying jitter
// drawn from rng. Exactly two draws are consumed per call, angle offset
// first and distance scale second, so a fixed seed and a stable row order
// reproduce the same chart. Both coordinates are rounded to two decimals.
func Transform(sec Sector, j Jitter, rng *rand.Rand) (x, y float64) {
	angle := sec.Angle + s1.Angle(uniform(rng, -j.AngleRange, j.AngleRange))*s1.Degree
	distance := sec.Distance * uniform(rng, 1-j.DistanceRange, 1+j.DistanceRange)

	x = round2(distance * aScale * math.Sin(angle.Radians()))
	y = round2(distance * bScale * math.Cos(angle.Radians()))
	return x, y
}

// MemoToXY parses a memo code and transforms it in one step. ok is false
// when the memo does not parse; no random draws are consumed in that case.
func MemoToXY(memo string, j Jitter, rng *rand.Rand) (x, y float64, ok bool) {
	sec, ok := ParseMemo(memo)
	if !ok {
		return 0, 0, false
	}
	x, y = Transform(sec, j, rng)
	return x, y, true
}

// uniform draws from [min, max).
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
