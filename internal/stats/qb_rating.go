package stats

import "math"

const (
	ratingComponentMax = 2.375
	// MaxQBRating is the ceiling reached when every component saturates.
	MaxQBRating = 118.75
)

// QBRating computes the passer efficiency rating from a passing line.
//
// Each of the completion, touchdown and interception components is clamped
// to [0, 2.375]; the sum is scaled to a 0..118.75 range and rounded to one
// decimal. A passer without attempts rates 0.
func QBRating(p PassingStats) float64 {
	if p.Attempts <= 0 {
		return 0
	}
	att := float64(p.Attempts)
	completionPct := float64(p.Completions) / att * 100
	touchdownPct := float64(p.Touchdowns) / att * 100
	interceptionPct := float64(p.Interceptions) / att * 100

	completion := clampComponent((completionPct - 30) * 0.05)
	touchdown := clampComponent(touchdownPct * 0.05)
	interception := clampComponent(ratingComponentMax - interceptionPct*0.25)

	return roundTenth((completion + touchdown + interception) / 6 * 100)
}

func clampComponent(v float64) float64 {
	return math.Max(0, math.Min(ratingComponentMax, v))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// percent returns part/whole*100, or 0 when whole is zero.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return roundTenth(float64(part) / float64(whole) * 100)
}
