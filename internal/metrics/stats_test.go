package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrierScore(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		correct    bool
		want       float64
	}{
		{"confident and correct", 1.0, true, 0.0},
		{"no confidence but correct", 0.0, true, 1.0},
		{"confident but wrong", 0.8, false, 0.64},
		{"no confidence and wrong", 0.0, false, 0.0},
		{"half confidence correct", 0.5, true, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BrierScore(tt.confidence, tt.correct), 1e-9)
		})
	}
}

func TestBrierScoreRange(t *testing.T) {
	for _, conf := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		for _, correct := range []bool{true, false} {
			score := BrierScore(conf, correct)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-9)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 0.1235, Round4(0.12345))
	assert.Equal(t, 0.12, Round2(0.12345))
	assert.Equal(t, 1.0, Round4(0.99995))
	assert.Equal(t, 0.0, Round2(0))
}
