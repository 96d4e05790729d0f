// Copyright 2026 Glia ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense numeric containers
// consumed by the glia activation kernels.
//
// A Dense container is a fixed-shape, row-major collection of float32 or
// float64 elements supporting element-wise transformation:
//
//	x, _ := tensor.FromSlice([]float64{-1, 0, 1}, tensor.Shape{3})
//	y := tensor.Apply(x, func(v float64) float64 { return v * 2 })
package tensor

import (
	"github.com/glia-ml/glia/internal/tensor"
)

// Float is a constraint for supported element types: float32 and float64.
type Float = tensor.Float

// Shape represents the dimensions of a container.
// Example: Shape{2, 3} describes a 2×3 matrix.
type Shape = tensor.Shape

// Dense is a dense, row-major container of floating-point elements.
//
// Example:
//
//	m := tensor.Zeros[float64](tensor.Shape{2, 3})
//	m.Set(1.5, 0, 2)
type Dense[T Float] = tensor.Dense[T]

// NewDense creates a zero-filled container with the given shape.
// Returns an error if any dimension is not positive.
func NewDense[T Float](shape Shape) (*Dense[T], error) {
	return tensor.NewDense[T](shape)
}

// FromSlice creates a container that copies data into the given shape.
//
// Example:
//
//	m, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice[T Float](data []T, shape Shape) (*Dense[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a zero-filled container, panicking on an invalid shape.
func Zeros[T Float](shape Shape) *Dense[T] {
	return tensor.Zeros[T](shape)
}

// Full creates a container filled with a specific value.
func Full[T Float](shape Shape, value T) *Dense[T] {
	return tensor.Full(shape, value)
}

// Apply returns a new container holding fn applied to every element of x.
// The result has exactly x's shape.
func Apply[T Float](x *Dense[T], fn func(T) T) *Dense[T] {
	return tensor.Apply(x, fn)
}

// ApplyInto writes fn applied element-wise over x into out, reshaping out
// to x's shape first. out may alias x for in-place evaluation.
func ApplyInto[T Float](x, out *Dense[T], fn func(T) T) {
	tensor.ApplyInto(x, out, fn)
}
