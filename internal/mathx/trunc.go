// Package mathx provides saturating variants of the elementary
// transcendental functions used by activation kernels.
//
// The standard exp and log produce +Inf, 0, or NaN for extreme or
// out-of-domain arguments. Inside activation hot paths those values
// corrupt everything downstream, so the kernels here saturate instead:
// results are always finite, and the exponential is always strictly
// positive.
package mathx

import "math"

// Saturation bounds. maxExpArg is the largest argument whose exponential
// is still finite in float64; beyond it TruncExp pins the result rather
// than overflowing. The log bounds mirror the representable range.
var (
	maxExpArg = math.Log(math.MaxFloat64) // ≈ 709.78
	minExpArg = -maxExpArg

	maxExpResult = math.MaxFloat64
	minExpResult = 1 / math.MaxFloat64 // Strictly positive, never underflows to 0.

	maxLogResult = math.Log(math.MaxFloat64)             // ≈ 709.78
	minLogResult = math.Log(math.SmallestNonzeroFloat64) // ≈ -744.44
)

// TruncExp computes e^x, clamping extreme arguments so the result is
// always finite and strictly positive. NaN input propagates as NaN.
func TruncExp(x float64) float64 {
	switch {
	case x >= maxExpArg:
		return maxExpResult
	case x <= minExpArg:
		return minExpResult
	default:
		return math.Exp(x)
	}
}

// TruncLog computes ln(x), saturating instead of producing non-finite
// results: non-positive arguments map to the log of the smallest
// representable value and +Inf maps to the log of the largest. NaN input
// propagates as NaN.
func TruncLog(x float64) float64 {
	switch {
	case x <= 0:
		return minLogResult
	case math.IsInf(x, 1):
		return maxLogResult
	default:
		return math.Log(x)
	}
}
