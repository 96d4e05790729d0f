// Package logistic implements the logistic (sigmoid) activation function,
// its first derivative, and its inverse (logit), for scalars and for
// element-wise application over dense containers.
//
// All operations are pure and reentrant: concurrent calls with disjoint
// output buffers are safe without synchronization.
package logistic

import (
	"github.com/glia-ml/glia/internal/mathx"
	"github.com/glia-ml/glia/internal/tensor"
)

// Fn computes the logistic function f(x) = 1 / (1 + e^(-x)).
//
// The exponential is saturated, so the result is finite for every finite
// input and degrades toward 0 or 1 at extreme magnitudes instead of
// producing NaN or infinity.
func Fn[T tensor.Float](x T) T {
	return T(1.0 / (1.0 + mathx.TruncExp(-float64(x))))
}

// FnTensor applies Fn element-wise, returning a container with x's shape.
func FnTensor[T tensor.Float](x *tensor.Dense[T]) *tensor.Dense[T] {
	return tensor.Apply(x, Fn[T])
}

// FnInto applies Fn element-wise into out, reshaping out to x's shape.
// out may alias x for in-place evaluation.
func FnInto[T tensor.Float](x, out *tensor.Dense[T]) {
	tensor.ApplyInto(x, out, Fn[T])
}

// Deriv computes the first derivative of the logistic function from its
// forward output y = Fn(x): f'(x) = y * (1 - y).
//
// Callers pass the already-computed activation, not the raw input, which
// spares the backward pass a second exponential. No domain validation is
// performed; values outside (0, 1) yield a well-defined but meaningless
// number.
func Deriv[T tensor.Float](y T) T {
	return y * (1 - y)
}

// DerivTensor applies Deriv element-wise, returning a container with y's shape.
func DerivTensor[T tensor.Float](y *tensor.Dense[T]) *tensor.Dense[T] {
	return tensor.Apply(y, Deriv[T])
}

// DerivInto applies Deriv element-wise into out, reshaping out to y's shape.
// out may alias y.
func DerivInto[T tensor.Float](y, out *tensor.Dense[T]) {
	tensor.ApplyInto(y, out, Deriv[T])
}

// Inv computes the inverse of the logistic function (the logit):
// f^(-1)(y) = ln(y / (1 - y)), defined for y in (0, 1).
//
// No domain validation is performed. The logarithm is saturated, so y at
// or outside the domain boundary yields a finite extreme value rather
// than NaN: y <= 0 and y > 1 saturate far negative, y = 1 far positive.
func Inv[T tensor.Float](y T) T {
	yf := float64(y)
	return T(mathx.TruncLog(yf / (1 - yf)))
}

// InvTensor applies Inv element-wise, returning a container with y's shape.
func InvTensor[T tensor.Float](y *tensor.Dense[T]) *tensor.Dense[T] {
	return tensor.Apply(y, Inv[T])
}

// InvInto applies Inv element-wise into out, reshaping out to y's shape.
// out may alias y.
func InvInto[T tensor.Float](y, out *tensor.Dense[T]) {
	tensor.ApplyInto(y, out, Inv[T])
}
