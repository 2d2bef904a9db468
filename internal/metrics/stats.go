package metrics

import "math"

// BrierScore computes the squared difference between a stated confidence
// and the binary correctness of the prediction. It is a proper scoring
// rule: overconfident-wrong and underconfident-correct predictions are
// both penalized. Range is [0, 1] for confidence in [0, 1]; lower is
// better.
func BrierScore(confidence float64, correct bool) float64 {
	outcome := 0.0
	if correct {
		outcome = 1.0
	}
	d := confidence - outcome
	return d * d
}

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds to 4 decimal places, half away from zero.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
