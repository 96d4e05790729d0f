package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncExp_AgreesWithExpInRange(t *testing.T) {
	for x := -700.0; x <= 700.0; x += 13.7 {
		assert.Equal(t, math.Exp(x), TruncExp(x), "TruncExp(%v)", x)
	}
}

func TestTruncExp_SaturatesFinite(t *testing.T) {
	for _, x := range []float64{710, 1e6, 1e300, math.Inf(1)} {
		got := TruncExp(x)
		assert.False(t, math.IsInf(got, 0), "TruncExp(%v) overflowed", x)
		assert.Equal(t, math.MaxFloat64, got, "TruncExp(%v)", x)
	}
	for _, x := range []float64{-710, -1e6, -1e300, math.Inf(-1)} {
		got := TruncExp(x)
		assert.Greater(t, got, 0.0, "TruncExp(%v) must stay strictly positive", x)
		assert.Less(t, got, 1e-300, "TruncExp(%v)", x)
	}
}

func TestTruncExp_NaN(t *testing.T) {
	assert.True(t, math.IsNaN(TruncExp(math.NaN())))
}

func TestTruncLog_AgreesWithLogInRange(t *testing.T) {
	for _, x := range []float64{1e-300, 1e-9, 0.5, 1, 2, 1e9, 1e300} {
		assert.Equal(t, math.Log(x), TruncLog(x), "TruncLog(%v)", x)
	}
}

func TestTruncLog_SaturatesFinite(t *testing.T) {
	for _, x := range []float64{0, -1, -1e300, math.Inf(-1)} {
		got := TruncLog(x)
		assert.False(t, math.IsNaN(got), "TruncLog(%v) produced NaN", x)
		assert.False(t, math.IsInf(got, 0), "TruncLog(%v) produced Inf", x)
		assert.Less(t, got, -700.0, "TruncLog(%v)", x)
	}

	got := TruncLog(math.Inf(1))
	assert.False(t, math.IsInf(got, 0))
	assert.Greater(t, got, 700.0)
}
