package tensor

import "fmt"

// Float is a constraint for supported element types.
type Float interface {
	~float32 | ~float64
}

// Dense is a dense, row-major container of floating-point elements.
// It is the vector/matrix type consumed by the element-wise activation
// kernels: fixed shape, contiguous storage, no views or broadcasting
// state of its own.
type Dense[T Float] struct {
	shape  Shape
	stride []int
	data   []T
}

// NewDense creates a zero-filled container with the given shape.
func NewDense[T Float](shape Shape) (*Dense[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense[T]{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]T, shape.NumElements()),
	}, nil
}

// FromSlice creates a container that copies data into the given shape.
// The slice length must match the shape's element count exactly.
func FromSlice[T Float](data []T, shape Shape) (*Dense[T], error) {
	d, err := NewDense[T](shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(d.data) {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	copy(d.data, data)
	return d, nil
}

// Zeros creates a zero-filled container, panicking on an invalid shape.
// Use NewDense when the shape comes from untrusted input.
func Zeros[T Float](shape Shape) *Dense[T] {
	d, err := NewDense[T](shape)
	if err != nil {
		panic(err)
	}
	return d
}

// Full creates a container filled with a specific value.
func Full[T Float](shape Shape, value T) *Dense[T] {
	d := Zeros[T](shape)
	for i := range d.data {
		d.data[i] = value
	}
	return d
}

// Shape returns the container's shape.
func (d *Dense[T]) Shape() Shape {
	return d.shape
}

// NumElements returns the total number of elements.
func (d *Dense[T]) NumElements() int {
	return len(d.data)
}

// Data returns the underlying storage in row-major order.
// WARNING: this is a direct view, not a copy; writes are visible to the container.
func (d *Dense[T]) Data() []T {
	return d.data
}

// At returns the element at the given multi-dimensional indices.
// Panics if the number of indices does not match the shape's rank.
func (d *Dense[T]) At(indices ...int) T {
	return d.data[d.flatIndex(indices)]
}

// Set stores value at the given multi-dimensional indices.
func (d *Dense[T]) Set(value T, indices ...int) {
	d.data[d.flatIndex(indices)] = value
}

func (d *Dense[T]) flatIndex(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("got %d indices for shape %v", len(indices), d.shape))
	}
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= d.shape[i] {
			panic(fmt.Sprintf("index %d out of range for dimension %d of shape %v", idx, i, d.shape))
		}
		flat += idx * d.stride[i]
	}
	return flat
}

// Clone returns a deep copy of the container.
func (d *Dense[T]) Clone() *Dense[T] {
	c := Zeros[T](d.shape)
	copy(c.data, d.data)
	return c
}

// conform reshapes the container to match shape, reallocating storage
// only when the element count changes.
func (d *Dense[T]) conform(shape Shape) {
	if d.shape.Equal(shape) {
		return
	}
	n := shape.NumElements()
	if n != len(d.data) {
		d.data = make([]T, n)
	}
	d.shape = shape.Clone()
	d.stride = shape.ComputeStrides()
}
