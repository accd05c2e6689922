package scoring

import "math"

// contrastSaturation is the contrast ratio at which the contrast term
// saturates to full weight.
const contrastSaturation = 0.7

// CalculateScore reduces a stress run and a weight table into an integer
// score in 0..=100. A zero total weight forces 0.
func CalculateScore(stress StressResults, weights Weights) int {
	totalWeight := weights.ContrastWeight
	for _, w := range weights.Tests {
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}

	testScore := 0
	for name, passed := range stress.Tests {
		if passed {
			testScore += weights.Tests[name]
		}
	}

	normalized := stress.ContrastRatio / contrastSaturation
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	raw := float64(testScore) + normalized*float64(weights.ContrastWeight)
	score := int(math.Round(raw / float64(totalWeight) * 100))
	if score > 100 {
		score = 100
	}
	return score
}

// GradeFromScore maps a score to a letter grade, inclusive at the lower edge
// of each band.
func GradeFromScore(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 60:
		return "B"
	case score >= 40:
		return "C"
	case score >= 20:
		return "D"
	default:
		return "F"
	}
}
