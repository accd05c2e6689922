package scoring

import "testing"

func allPassStress() StressResults {
	tests := make(map[string]bool)
	for _, name := range VariantNames() {
		tests[name] = true
	}
	return StressResults{Tests: tests, ContrastRatio: 1.0}
}

func TestScoreAllPassHighContrastIs100(t *testing.T) {
	score := CalculateScore(allPassStress(), DefaultWeights())
	if score != 100 {
		t.Errorf("Expected 100, got %d", score)
	}
}

func TestScoreNothingPassesIsZero(t *testing.T) {
	score := CalculateScore(StressResults{Tests: map[string]bool{}}, DefaultWeights())
	if score != 0 {
		t.Errorf("Expected 0, got %d", score)
	}
}

func TestScoreZeroTotalWeightIsZero(t *testing.T) {
	weights := Weights{Tests: map[string]int{}, ContrastWeight: 0}
	score := CalculateScore(allPassStress(), weights)
	if score != 0 {
		t.Errorf("Expected 0 with zero total weight, got %d", score)
	}
}

func TestScoreContrastSaturatesAtThreshold(t *testing.T) {
	stress := allPassStress()
	stress.ContrastRatio = contrastSaturation
	score := CalculateScore(stress, DefaultWeights())
	if score != 100 {
		t.Errorf("Contrast at saturation should still give 100, got %d", score)
	}
}

func TestScoreLowContrastPenalizes(t *testing.T) {
	stress := allPassStress()
	stress.ContrastRatio = 0.02
	score := CalculateScore(stress, DefaultWeights())
	if score >= 100 {
		t.Errorf("Low contrast ratio should reduce score, got %d", score)
	}
}

func TestScorePartialPassIsBetweenBounds(t *testing.T) {
	stress := allPassStress()
	for _, key := range []string{"downscale_1x", "downscale_2x", "downscale_3x", "downscale_4x"} {
		stress.Tests[key] = false
	}
	score := CalculateScore(stress, DefaultWeights())
	if score <= 0 || score >= 100 {
		t.Errorf("Partial pass should score between 0 and 100, got %d", score)
	}
}

func TestScoreMonotonicInPassedVariants(t *testing.T) {
	stress := StressResults{Tests: make(map[string]bool), ContrastRatio: 0.5}
	for _, name := range VariantNames() {
		stress.Tests[name] = false
	}

	prev := CalculateScore(stress, DefaultWeights())
	for _, name := range VariantNames() {
		stress.Tests[name] = true
		score := CalculateScore(stress, DefaultWeights())
		if score < prev {
			t.Fatalf("Score decreased from %d to %d after passing %s", prev, score, name)
		}
		prev = score
	}
}

func TestScoreIgnoresUnknownWeightKeys(t *testing.T) {
	weights := DefaultWeights()
	weights.Tests["not_a_real_test"] = 1000

	stress := allPassStress()
	score := CalculateScore(stress, weights)
	// the unknown key inflates total weight but can never be earned
	if score >= 100 {
		t.Errorf("Unknown weight key should dilute the score, got %d", score)
	}
}

func TestScoreStressKeysAbsentFromWeightsContributeZero(t *testing.T) {
	stress := allPassStress()
	stress.Tests["mystery_variant"] = true
	if got, want := CalculateScore(stress, DefaultWeights()), 100; got != want {
		t.Errorf("Expected %d, got %d", want, got)
	}
}

func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		score int
		grade string
	}{
		{100, "A"}, {80, "A"}, {79, "B"}, {60, "B"},
		{59, "C"}, {40, "C"}, {39, "D"}, {20, "D"},
		{19, "F"}, {0, "F"},
	}
	for _, c := range cases {
		if got := GradeFromScore(c.score); got != c.grade {
			t.Errorf("GradeFromScore(%d) = %q, want %q", c.score, got, c.grade)
		}
	}
}
