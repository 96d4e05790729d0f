package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_ZeroFilled(t *testing.T) {
	d, err := NewDense[float64](Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 6, d.NumElements())
	assert.True(t, d.Shape().Equal(Shape{2, 3}))
	for i, v := range d.Data() {
		assert.Zero(t, v, "element %d", i)
	}
}

func TestNewDense_InvalidShape(t *testing.T) {
	_, err := NewDense[float64](Shape{2, 0})
	require.Error(t, err)

	_, err = NewDense[float32](Shape{-1})
	require.Error(t, err)
}

func TestNewDense_ScalarShape(t *testing.T) {
	// An empty shape is a one-element container.
	d, err := NewDense[float64](Shape{})
	require.NoError(t, err)
	assert.Equal(t, 1, d.NumElements())
}

func TestFromSlice(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 1.0, d.At(0, 0))
	assert.Equal(t, 3.0, d.At(0, 2))
	assert.Equal(t, 4.0, d.At(1, 0))
	assert.Equal(t, 6.0, d.At(1, 2))
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)
}

func TestFromSlice_CopiesInput(t *testing.T) {
	src := []float32{1, 2, 3}
	d, err := FromSlice(src, Shape{3})
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, float32(1), d.At(0))
}

func TestSetAt(t *testing.T) {
	d := Zeros[float64](Shape{3, 3})
	d.Set(7.5, 1, 2)

	assert.Equal(t, 7.5, d.At(1, 2))
	assert.Equal(t, 7.5, d.Data()[1*3+2])
}

func TestAt_PanicsOnBadIndex(t *testing.T) {
	d := Zeros[float64](Shape{2, 2})

	assert.Panics(t, func() { d.At(2, 0) })
	assert.Panics(t, func() { d.At(0) })
}

func TestFull(t *testing.T) {
	d := Full[float32](Shape{4}, 2.5)
	for i := 0; i < 4; i++ {
		assert.Equal(t, float32(2.5), d.At(i))
	}
}

func TestClone_Independent(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	c := d.Clone()
	c.Set(99, 0, 0)

	assert.Equal(t, 1.0, d.At(0, 0))
	assert.Equal(t, 99.0, c.At(0, 0))
}

func TestApply_PreservesShape(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	out := Apply(d, func(v float64) float64 { return v * 2 })

	assert.True(t, out.Shape().Equal(d.Shape()))
	for i, v := range d.Data() {
		assert.Equal(t, v*2, out.Data()[i])
	}
	// Input untouched.
	assert.Equal(t, 1.0, d.At(0, 0))
}

func TestApplyInto_ReshapesOut(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	out := Zeros[float64](Shape{7})

	ApplyInto(x, out, func(v float64) float64 { return v + 1 })

	assert.True(t, out.Shape().Equal(Shape{2, 2}))
	assert.Equal(t, []float64{2, 3, 4, 5}, out.Data())
}

func TestApplyInto_InPlace(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	ApplyInto(x, x, func(v float64) float64 { return -v })

	assert.Equal(t, []float64{-1, -2, -3}, x.Data())
}

func TestApply_LargeInput(t *testing.T) {
	// Large enough to take the chunked parallel path.
	n := 1 << 18
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	x, err := FromSlice(data, Shape{n})
	require.NoError(t, err)

	out := Apply(x, func(v float64) float64 { return v + 1 })

	require.Equal(t, n, out.NumElements())
	for i := 0; i < n; i += 4099 {
		assert.Equal(t, float64(i)+1, out.Data()[i], "element %d", i)
	}
}

func TestShape_ComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{5}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}
