package tensor

import "github.com/glia-ml/glia/internal/parallel"

// applyConfig governs chunking of element-wise kernels across goroutines.
var applyConfig = parallel.DefaultConfig()

// Apply returns a new container holding fn applied to every element of x.
// The result has exactly x's shape.
func Apply[T Float](x *Dense[T], fn func(T) T) *Dense[T] {
	out := Zeros[T](x.shape)
	ApplyInto(x, out, fn)
	return out
}

// ApplyInto writes fn applied element-wise over x into out, reshaping out
// to x's shape first. out may alias x for in-place evaluation: each output
// element depends only on the input element at the same position.
func ApplyInto[T Float](x, out *Dense[T], fn func(T) T) {
	out.conform(x.shape)
	src, dst := x.data, out.data
	parallel.ForRange(len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = fn(src[i])
		}
	}, applyConfig)
}
