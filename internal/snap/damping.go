package snap

import "math"

// Damp compresses an overscroll distance logarithmically so the visual
// stretch approaches a limit instead of following the pointer.
// Damp(0, f) is 0 and the result grows strictly for distance > 0, factor > 0.
// Negative distances are treated as 0.
func Damp(distance, factor float64) float64 {
	if distance <= 0 || factor <= 0 {
		return 0
	}
	base := factor / math.Ln10
	return factor * (math.Log10(distance+base) - math.Log10(base))
}
