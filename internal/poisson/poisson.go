// Package poisson generates Poisson-disk point distributions: random samples
// with a guaranteed minimum pairwise separation, produced by dart throwing
// over a uniform acceleration grid.
package poisson

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/seep/terrain/internal/geom"
)

// attemptsPerPoint bounds how many candidate offsets are tried around an
// active point before it is retired.
const attemptsPerPoint = 30

// Sample fills extent with randomly sampled points separated by at least
// radius. The sampler terminates when no active point can seed a new sample:
// each acceptance consumes free area and each rejection retires a point, so
// the loop is bounded.
func Sample(rng *rand.Rand, extent geom.Rect, radius float64) []r2.Vec {
	cellSize := radius / math.Sqrt2

	s := &sampler{
		extent:   extent,
		radius:   radius,
		cellSize: cellSize,
		grid: newSampleGrid(
			int(math.Ceil(extent.W()/cellSize)),
			int(math.Ceil(extent.H()/cellSize)),
		),
	}

	s.generate(rng)
	return s.points
}

type sampler struct {
	// extent is the range of values to generate samples in.
	extent geom.Rect
	// radius is the minimum allowed distance between samples.
	radius float64
	// cellSize is the size of each grid cell, radius/sqrt(2), so that a cell
	// can hold at most one accepted sample.
	cellSize float64
	// queued holds the indices of points to sample additional points from.
	queued []int
	// points holds the accepted samples.
	points []r2.Vec
	// grid is a spatial index holding at most one point index per cell.
	grid *sampleGrid
}

func (s *sampler) generate(rng *rand.Rand) {
	init := r2.Vec{
		X: s.extent.Min.X + rng.Float64()*s.extent.W(),
		Y: s.extent.Min.Y + rng.Float64()*s.extent.H(),
	}

	s.points = append(s.points, init)
	s.queued = append(s.queued, 0)

	cx, cy := s.cell(init)
	s.grid.set(cx, cy, 0)

	for len(s.queued) > 0 {
		nearIndex := rng.Intn(len(s.queued))
		nearPoint := s.points[s.queued[nearIndex]]

		sample, ok := s.sampleNear(rng, nearPoint)
		if !ok {
			s.queued = append(s.queued[:nearIndex], s.queued[nearIndex+1:]...)
			continue
		}

		next := len(s.points)
		s.points = append(s.points, sample)
		s.queued = append(s.queued, next)

		sx, sy := s.cell(sample)
		s.grid.set(sx, sy, next)
	}
}

// sampleNear looks for an acceptable new sample around near. Starting from a
// random angle, it circles the point at a distance just over the separation
// radius until a candidate clears the neighborhood check or the attempt
// budget runs out.
//
// https://observablehq.com/@techsparx/an-improvement-on-bridsons-algorithm-for-poisson-disc-samp/2
func (s *sampler) sampleNear(rng *rand.Rand, near r2.Vec) (r2.Vec, bool) {
	start := rng.Float64() * 2 * math.Pi

	for i := 0; i < attemptsPerPoint; i++ {
		t := start + geom.MapRange(float64(i), 0, attemptsPerPoint, 0, 2*math.Pi)
		r := s.radius + 0.0001

		point := r2.Add(near, r2.Scale(r, r2.Vec{X: math.Cos(t), Y: math.Sin(t)}))

		if !s.extent.Contains(point) {
			continue
		}

		if !s.nearPointInGrid(point) {
			return point, true
		}
	}

	return r2.Vec{}, false
}

// nearPointInGrid reports whether p is within the separation radius of an
// existing point, checking the bounded cell neighborhood around p.
func (s *sampler) nearPointInGrid(p r2.Vec) bool {
	cx, cy := s.cell(p)

	const span = 2 // number of neighbor cells to check in each direction

	xMin := max(cx-span, 0)
	yMin := max(cy-span, 0)
	xMax := min(cx+span+1, s.grid.cols)
	yMax := min(cy+span+1, s.grid.rows)

	for y := yMin; y < yMax; y++ {
		for x := xMin; x < xMax; x++ {
			i, ok := s.grid.get(x, y)
			if !ok {
				continue
			}
			d := r2.Sub(s.points[i], p)
			if r2.Norm2(d) < s.radius*s.radius {
				return true
			}
		}
	}

	return false
}

func (s *sampler) cell(p r2.Vec) (int, int) {
	cx := int((p.X - s.extent.Min.X) / s.cellSize)
	cy := int((p.Y - s.extent.Min.Y) / s.cellSize)
	// A point exactly on the max edge maps one past the last cell.
	return min(cx, s.grid.cols-1), min(cy, s.grid.rows-1)
}

// sampleGrid stores the optional index of (at most one) point per grid cell.
type sampleGrid struct {
	cols, rows int
	cells      []int
}

func newSampleGrid(cols, rows int) *sampleGrid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cells := make([]int, cols*rows)
	for i := range cells {
		cells[i] = -1
	}
	return &sampleGrid{cols: cols, rows: rows, cells: cells}
}

func (g *sampleGrid) get(x, y int) (int, bool) {
	i := g.cells[x+y*g.cols]
	return i, i >= 0
}

func (g *sampleGrid) set(x, y, index int) {
	g.cells[x+y*g.cols] = index
}
