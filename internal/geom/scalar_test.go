package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestSaturate(t *testing.T) {
	assert.Equal(t, 0.0, Saturate(-1))
	assert.Equal(t, 0.25, Saturate(0.25))
	assert.Equal(t, 1.0, Saturate(2))
}

func TestMapClamp(t *testing.T) {
	assert.Equal(t, 0.5, MapClamp(50, 0, 100, 0, 1))
	assert.Equal(t, 0.0, MapClamp(-10, 0, 100, 0, 1))
	assert.Equal(t, 1.0, MapClamp(250, 0, 100, 0, 1))
	assert.Equal(t, 5.0, MapClamp(0.5, 0, 1, 0, 10))
}

func TestNormalize(t *testing.T) {
	arr := []float64{2, 4, 6}
	Normalize(arr)
	assert.Equal(t, []float64{0, 0.5, 1}, arr)

	// Constant arrays are left alone rather than divided by zero.
	flat := []float64{3, 3, 3}
	Normalize(flat)
	assert.Equal(t, []float64{3, 3, 3}, flat)

	Normalize(nil) // must not panic
}

func TestMaxPosition(t *testing.T) {
	assert.Equal(t, -1, MaxPosition(nil))
	assert.Equal(t, 2, MaxPosition([]float64{1, 2, 3, 0}))

	// Ties resolve to the lowest index.
	assert.Equal(t, 1, MaxPosition([]float64{0, 7, 7, 7}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))

	// Even counts take the mean of the two middle elements.
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))

	// The input must not be reordered.
	arr := []float64{9, 1, 5}
	Median(arr)
	assert.Equal(t, []float64{9, 1, 5}, arr)
}

func TestIndexedMean(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	assert.Equal(t, 25.0, IndexedMean(values, []int{1, 2}))
	assert.Equal(t, 0.0, IndexedMean(values, nil))
}

func TestRect(t *testing.T) {
	r := RectFromSize(100, 50)

	require.Equal(t, -50.0, r.Min.X)
	require.Equal(t, 25.0, r.Max.Y)
	assert.Equal(t, 100.0, r.W())
	assert.Equal(t, 50.0, r.H())
	assert.Equal(t, 0.0, r.Center().X)

	assert.True(t, r.Contains(r.Min))
	assert.True(t, r.Contains(r.Max))
	assert.False(t, r.Contains(r2.Add(r.Max, r.Max)))

	grown := r.Expand(10)
	assert.Equal(t, 120.0, grown.W())
	assert.Equal(t, 70.0, grown.H())
	assert.Equal(t, r.Center(), grown.Center())

	scaled := r.Scaled(1.2)
	assert.InDelta(t, 120.0, scaled.W(), 1e-9)
	assert.InDelta(t, 60.0, scaled.H(), 1e-9)

	corners := r.Corners()
	for _, c := range corners {
		assert.True(t, r.Contains(c))
	}
}
