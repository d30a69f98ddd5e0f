package poisson

import (
	"math"

	"github.com/pthm-cable/poisson/vec"
)

// cellState tracks how a top-level cell came to hold its sample. Seeded cells
// constrain placement like placed ones but are not re-emitted in the output.
type cellState uint8

const (
	cellEmpty cellState = iota
	cellSeeded
	cellPlaced
)

// grid is a dense D-dimensional array of top-level cells, each holding at
// most one accepted sample. Cells are sized so that a disk of the configured
// radius cannot reach past the two-cell neighbor ring, which is what makes
// the 5^D proximity scan in the disk-free test conservative. The grid is the
// single source of truth for which points already occupy space; only the
// refinement driver mutates it.
type grid[V vec.Point[V]] struct {
	data     []V
	state    []cellState
	side     int
	cell     float64
	periodic bool
}

// newGrid allocates an empty grid for the given disk radius. The cell width
// is 2r/sqrt(D) and the grid spans side = floor(1/cell) cells per axis.
// Radius validation happens in the generator constructor before this runs.
func newGrid[V vec.Point[V]](radius float64, periodic bool) *grid[V] {
	var zero V
	dim := zero.Dim()
	cell := 2 * radius / math.Sqrt(float64(dim))
	side := int(1 / cell)
	cells := intPow(side, dim)
	return &grid[V]{
		data:     make([]V, cells),
		state:    make([]cellState, cells),
		side:     side,
		cell:     cell,
		periodic: periodic,
	}
}

// cells reports the total number of top-level cells.
func (g *grid[V]) cells() int { return len(g.data) }

// sampleAt returns the sample occupying the cell at the given integer
// coordinate. Reports false when the cell is empty or, in non-periodic mode,
// when the coordinate falls outside the grid; in periodic mode coordinates
// wrap and every lookup lands on a cell.
func (g *grid[V]) sampleAt(coord V) (V, bool) {
	i, ok := encode(coord, g.side, g.periodic)
	if !ok || g.state[i] == cellEmpty {
		var zero V
		return zero, false
	}
	return g.data[i], true
}

// occupied reports whether the cell at coord holds a sample.
func (g *grid[V]) occupied(coord V) bool {
	_, ok := g.sampleAt(coord)
	return ok
}

// place stores an accepted sample into the cell at coord.
func (g *grid[V]) place(coord V, sample V) {
	if i, ok := encode(coord, g.side, g.periodic); ok {
		g.data[i] = sample
		g.state[i] = cellPlaced
	}
}

// seed loads a pre-existing sample position into its top-level cell so that
// generation respects it. First occupant of a cell wins; a valid seed set
// (pairwise separation >= 2r) never maps two samples to one cell.
func (g *grid[V]) seed(pos V) {
	coord := sampleToIndex(pos, g.side)
	if i, ok := encode(coord, g.side, g.periodic); ok && g.state[i] == cellEmpty {
		g.data[i] = pos
		g.state[i] = cellSeeded
	}
}

// appendSamples drains the grid's placed cells into dst, wrapping each point
// with the run's radius. Seeded cells are the caller's points and are skipped.
func (g *grid[V]) appendSamples(dst []Sample[V], radius float64) []Sample[V] {
	for i, st := range g.state {
		if st == cellPlaced {
			dst = append(dst, Sample[V]{Pos: g.data[i], Radius: radius})
		}
	}
	return dst
}

// encode maps an integer coordinate vector to a flat index in mixed radix
// base side. In periodic mode each axis wraps with a true floor modulo, so
// negative coordinates index from the far edge; in non-periodic mode any
// out-of-range axis rejects the coordinate. This is the single addressing
// function for both reads and writes.
func encode[V vec.Point[V]](v V, side int, periodic bool) (int, bool) {
	index := 0
	for n := 0; n < v.Dim(); n++ {
		c := int(v.At(n))
		if periodic {
			c = floorMod(c, side)
		} else if v.At(n) < 0 || v.At(n) >= float64(side) {
			return 0, false
		}
		index = (index + c) * side
	}
	return index / side, true
}

// decode is the inverse of non-periodic encode; it reports false for indices
// beyond side^D. Test and debug use only.
func decode[V vec.Point[V]](index, side int) (V, bool) {
	var v V
	dim := v.Dim()
	if index >= intPow(side, dim) {
		return v, false
	}
	last := index
	for n := dim - 1; n >= 0; n-- {
		cur := last / side
		v = v.Set(n, float64(last-cur*side))
		last = cur
	}
	return v, true
}

// parentAt projects a cell coordinate at the given refinement level onto the
// top-level (level 0) cell containing it, by flooring each component over
// 2^level. Coordinates outside the top-level area still project by floor
// division; encode is what decides whether the result addresses a cell.
func parentAt[V vec.Point[V]](coord V, level int) V {
	split := float64(int(1) << uint(level))
	for n := 0; n < coord.Dim(); n++ {
		coord = coord.Set(n, math.Floor(coord.At(n)/split))
	}
	return coord
}

// sampleToIndex maps a position in [0,1)^D to its top-level cell coordinate.
func sampleToIndex[V vec.Point[V]](pos V, side int) V {
	for n := 0; n < pos.Dim(); n++ {
		pos = pos.Set(n, math.Floor(pos.At(n)*float64(side)))
	}
	return pos
}

// indexToSample maps a top-level cell coordinate back to the position of its
// lower corner.
func indexToSample[V vec.Point[V]](coord V, side int) V {
	return coord.Div(float64(side))
}

// floorMod returns a modulo b with the sign of b, so negative coordinates
// wrap onto the far side of the grid.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
