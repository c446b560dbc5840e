package geom

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Saturate clamps n to the [0, 1] range.
func Saturate(n float64) float64 {
	return math.Max(0, math.Min(1, n))
}

// MapRange linearly remaps val from [inMin, inMax] to [outMin, outMax]
// without clamping.
func MapRange(val, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (val-inMin)/(inMax-inMin)*(outMax-outMin)
}

// MapClamp linearly remaps val from [inMin, inMax] to [outMin, outMax] and
// clamps the result to the output range.
func MapClamp(val, inMin, inMax, outMin, outMax float64) float64 {
	v := MapRange(val, inMin, inMax, outMin, outMax)
	return math.Max(outMin, math.Min(outMax, v))
}

// Normalize remaps arr in place into [0, 1] using its min and max elements.
// A constant or empty array is left unchanged.
func Normalize(arr []float64) {
	if len(arr) == 0 {
		return
	}
	min := floats.Min(arr)
	max := floats.Max(arr)
	if min == max {
		return
	}
	floats.AddConst(-min, arr)
	floats.Scale(1/(max-min), arr)
}

// MaxPosition returns the index of the largest element, preferring the lowest
// index on ties. Returns -1 for an empty array.
func MaxPosition(arr []float64) int {
	if len(arr) == 0 {
		return -1
	}
	best := 0
	for i, e := range arr {
		if e > arr[best] {
			best = i
		}
	}
	return best
}

// Median returns the median of arr. For an even count the median is the mean
// of the two middle elements. The input is not modified.
func Median(arr []float64) float64 {
	sorted := make([]float64, len(arr))
	copy(sorted, arr)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) * 0.5
	}
	return sorted[mid]
}

// IndexedMean returns the mean of values over the given subset of indices,
// or 0 for an empty subset.
func IndexedMean(values []float64, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range indices {
		sum += values[i]
	}
	return sum / float64(len(indices))
}
