package field

import (
	"github.com/golang/geo/s1"
)

// Sector is the resolved form of a memo code: the angular center of the
// direction letter and the base distance of the rank digit.
type Sector struct {
	Angle    s1.Angle
	Distance float64
}

// rankDistance maps the memo's distance rank (1-7) to a base radial
// distance in field units.
var rankDistance = map[int]float64{
	1: 10,
	2: 65,
	3: 110,
	4: 155,
	5: 195,
	6: 240,
	7: 290,
}

// directionAngle maps the memo's direction letter to the angular center of
// its sector. Negative angles point toward the third-base side. Values
// match the recorded scoring sheet, including the irregular step at 'H';
// do not regularize.
var directionAngle = map[byte]s1.Angle{
	'B': -46.5 * s1.Degree,
	'C': -42.2 * s1.Degree,
	'D': -38 * s1.Degree,
	'E': -34.2 * s1.Degree,
	'F': -30 * s1.Degree,
	'G': -26 * s1.Degree,
	'H': -22.15 * s1.Degree,
	'I': -18 * s1.Degree,
	'J': -14 * s1.Degree,
	'K': -10 * s1.Degree,
	'L': -6 * s1.Degree,
	'M': -2.5 * s1.Degree,
	'N': 1.5 * s1.Degree,
	'O': 5.5 * s1.Degree,
	'P': 9.5 * s1.Degree,
	'Q': 13.5 * s1.Degree,
	'R': 17.5 * s1.Degree,
	'S': 21.5 * s1.Degree,
	'T': 25.5 * s1.Degree,
	'U': 29.5 * s1.Degree,
	'V': 33.5 * s1.Degree,
	'W': 37.5 * s1.Degree,
	'X': 41.5 * s1.Degree,
	'Y': 45.5 * s1.Degree,
}

// ParseMemo resolves a memo code (direction letter followed by a rank
// digit) into a Sector. Longer codes are resolved from their first two
// bytes. The direction letter is case-insensitive. ok is false for codes
// shorter than two bytes, unknown direction letters, non-digit ranks and
// ranks outside 1-7.
func ParseMemo(memo string) (Sector, bool) {
	if len(memo) < 2 {
		return Sector{}, false
	}

	dir := memo[0]
	if dir >= 'a' && dir <= 'z' {
		dir -= 'a' - 'A'
	}
	angle, ok := directionAngle[dir]
	if !ok {
		return Sector{}, false
	}

	d := memo[1]
	if d < '0' || d > '9' {
		return Sector{}, false
	}
	distance, ok := rankDistance[int(d-'0')]
	if !ok {
		return Sector{}, false
	}

	return Sector{Angle: angle, Distance: distance}, true
}
