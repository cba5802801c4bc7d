package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoppingBounds(t *testing.T) {
	bounds := StoppingBounds(0.05, 0.05)
	assert.InDelta(t, -2.9444389791664403, bounds.Lower, 1e-12)
	assert.InDelta(t, 2.9444389791664403, bounds.Upper, 1e-12)
	assert.Equal(t, math.Log(0.05/0.95), bounds.Lower)
	assert.Equal(t, math.Log(0.95/0.05), bounds.Upper)

	// Asymmetric error rates give asymmetric bounds.
	bounds = StoppingBounds(0.01, 0.1)
	assert.InDelta(t, math.Log(0.1/0.99), bounds.Lower, 1e-12)
	assert.InDelta(t, math.Log(0.9/0.01), bounds.Upper, 1e-12)
}

func TestDecide(t *testing.T) {
	bounds := StoppingBounds(0.05, 0.05)

	tests := []struct {
		name string
		llr  float64
		want Verdict
	}{
		{"no evidence", 0, Continue},
		{"inside", 2.05, Continue},
		{"just below upper", math.Nextafter(bounds.Upper, 0), Continue},
		{"just above lower", math.Nextafter(bounds.Lower, 0), Continue},
		{"at upper", bounds.Upper, AcceptH1},
		{"at lower", bounds.Lower, AcceptH0},
		{"above upper", 3.63, AcceptH1},
		{"below lower", -5.7, AcceptH0},
		{"infinite", math.Inf(+1), AcceptH1},
		{"negative infinite", math.Inf(-1), AcceptH0},
		{"nan", math.NaN(), Continue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bounds.Decide(tt.llr))
		})
	}
}

func TestDecideOverlappingBounds(t *testing.T) {
	// Error rates summing above one swap the bounds; H1 is checked first.
	bounds := StoppingBounds(0.9, 0.9)
	assert.Greater(t, bounds.Lower, bounds.Upper)
	assert.Equal(t, AcceptH1, bounds.Decide(0))
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "H0 Accepted", AcceptH0.String())
	assert.Equal(t, "H1 Accepted", AcceptH1.String())
	assert.Equal(t, "Continue Playing", Continue.String())
}
