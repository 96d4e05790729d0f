// Copyright 2026 Glia ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package logistic provides the logistic (sigmoid) activation function,
// its first derivative, and its inverse (logit), for scalars and for
// element-wise application over dense containers.
//
// # Overview
//
// Three operation families, each with a scalar form, a container form, and
// an output-buffer form:
//
//   - Fn, FnTensor, FnInto: f(x) = 1 / (1 + e^(-x))
//   - Deriv, DerivTensor, DerivInto: f'(x) = y * (1 - y), computed from the
//     forward output y = Fn(x)
//   - Inv, InvTensor, InvInto: f^(-1)(y) = ln(y / (1 - y))
//
// # Numerical behavior
//
// The underlying exponential and logarithm are saturated: forward
// evaluation never overflows or produces NaN for finite input, and inverse
// evaluation of boundary or out-of-domain values yields finite extreme
// results instead of NaN. No operation signals errors; callers feeding
// invalid values into Inv detect the saturated results themselves.
//
// # Usage
//
//	x, _ := tensor.FromSlice([]float64{-2, 0, 2}, tensor.Shape{3})
//	act := logistic.FnTensor(x)       // forward pass
//	grad := logistic.DerivTensor(act) // derivative from the stored outputs
//
// Every function is pure and reentrant; concurrent calls with disjoint
// output buffers need no synchronization.
package logistic

import (
	"github.com/glia-ml/glia/internal/logistic"
	"github.com/glia-ml/glia/tensor"
)

// Fn computes the logistic function f(x) = 1 / (1 + e^(-x)).
// The result is finite and inside [0, 1] for every finite input, saturating
// toward 0 or 1 at extreme magnitudes.
func Fn[T tensor.Float](x T) T {
	return logistic.Fn(x)
}

// FnTensor applies Fn element-wise, returning a container with x's shape.
func FnTensor[T tensor.Float](x *tensor.Dense[T]) *tensor.Dense[T] {
	return logistic.FnTensor(x)
}

// FnInto applies Fn element-wise into out, reshaping out to x's shape.
// out may alias x.
func FnInto[T tensor.Float](x, out *tensor.Dense[T]) {
	logistic.FnInto(x, out)
}

// Deriv computes the first derivative of the logistic function from its
// forward output y = Fn(x): f'(x) = y * (1 - y). Pass the already-computed
// activation, not the raw input; no domain validation is performed.
func Deriv[T tensor.Float](y T) T {
	return logistic.Deriv(y)
}

// DerivTensor applies Deriv element-wise, returning a container with y's shape.
func DerivTensor[T tensor.Float](y *tensor.Dense[T]) *tensor.Dense[T] {
	return logistic.DerivTensor(y)
}

// DerivInto applies Deriv element-wise into out, reshaping out to y's shape.
// out may alias y.
func DerivInto[T tensor.Float](y, out *tensor.Dense[T]) {
	logistic.DerivInto(y, out)
}

// Inv computes the inverse of the logistic function (the logit):
// f^(-1)(y) = ln(y / (1 - y)) for y in (0, 1). Out-of-domain inputs
// saturate to finite extremes rather than producing NaN.
func Inv[T tensor.Float](y T) T {
	return logistic.Inv(y)
}

// InvTensor applies Inv element-wise, returning a container with y's shape.
func InvTensor[T tensor.Float](y *tensor.Dense[T]) *tensor.Dense[T] {
	return logistic.InvTensor(y)
}

// InvInto applies Inv element-wise into out, reshaping out to y's shape.
// out may alias y.
func InvInto[T tensor.Float](y, out *tensor.Dense[T]) {
	logistic.InvInto(y, out)
}
