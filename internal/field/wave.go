package field

import "math"

// PingPong returns a triangular wave of t that rises from 0 to length and
// falls back, repeating forever. The result is always in [0, length].
func PingPong(t, length float64) float64 {
	if length <= 0 {
		return 0
	}
	period := 2 * length
	m := math.Mod(t, period)
	if m < 0 {
		m += period
	}
	return length - math.Abs(m-length)
}
