// Package poisson generates Poisson-disk distributions in the unit hypercube
// of arbitrary dimension: point sets where no two points lie closer than
// twice the disk radius, approaching maximal density for that separation,
// with O(N log N) time and space in the number of samples. The sampler
// implements the hierarchical grid-refinement algorithm of Gamito and
// Maddock, "Accurate multidimensional Poisson-disk sampling", ACM TOG 29.1
// (2009).
package poisson

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pthm-cable/poisson/vec"
)

// MaxRadius is the largest accepted absolute disk radius, sqrt(2)/2.
const MaxRadius = math.Sqrt2 / 2

// maxLevel caps refinement depth at the float64 mantissa width. Past this
// depth the per-level cell spacing underflows the precision of coordinates in
// [0,1), so further subdivision cannot change any candidate point.
const maxLevel = 53

// throwFraction is the share of surviving candidates dart-thrown at each
// level before the level subdivides.
const throwFraction = 0.3

// Sample is an accepted point together with the disk radius it was accepted
// at. All samples from one generation run share the same radius.
type Sample[V vec.Point[V]] struct {
	Pos    V
	Radius float64
}

// Generator produces Poisson-disk distributions over [0,1)^D for one point
// type V. It owns no state across runs except the radius, the periodicity
// flag and the random source; each Generate call builds and consumes its own
// grid, so independent generators may run in parallel as long as each owns
// its rand source.
type Generator[V vec.Point[V]] struct {
	rng      *rand.Rand
	radius   float64
	periodic bool
}

// NewGenerator returns a generator for disks of the given absolute radius.
// The radius must lie in (0, sqrt(2)/2] and rng must be non-nil; both are
// rejected up front so no generation state is built from a bad configuration.
// Periodic generators treat the domain as a torus: distance and cell
// adjacency wrap across opposite faces of the hypercube.
func NewGenerator[V vec.Point[V]](rng *rand.Rand, radius float64, periodic bool) (*Generator[V], error) {
	if rng == nil {
		return nil, fmt.Errorf("poisson: nil random source")
	}
	if radius <= 0 || radius > MaxRadius {
		return nil, fmt.Errorf("poisson: radius %v outside (0, %v]", radius, MaxRadius)
	}
	return &Generator[V]{rng: rng, radius: radius, periodic: periodic}, nil
}

// NewRelativeGenerator is like NewGenerator with the radius given relative to
// the largest permitted one: a relative radius in (0, 1] scales sqrt(2)/2.
func NewRelativeGenerator[V vec.Point[V]](rng *rand.Rand, relative float64, periodic bool) (*Generator[V], error) {
	if relative <= 0 || relative > 1 {
		return nil, fmt.Errorf("poisson: relative radius %v outside (0, 1]", relative)
	}
	return NewGenerator[V](rng, relative*MaxRadius, periodic)
}

// Radius returns the generator's absolute disk radius.
func (g *Generator[V]) Radius() float64 { return g.radius }

// Periodic reports whether the domain wraps toroidally.
func (g *Generator[V]) Periodic() bool { return g.periodic }

// SetRadius changes the disk radius for subsequent runs.
func (g *Generator[V]) SetRadius(radius float64) error {
	if radius <= 0 || radius > MaxRadius {
		return fmt.Errorf("poisson: radius %v outside (0, %v]", radius, MaxRadius)
	}
	g.radius = radius
	return nil
}

// Generate appends a Poisson-disk distribution over [0,1)^D to dst and
// returns the extended slice. Samples already present in dst act as a seed
// set: they are loaded into the grid and respected by every acceptance test,
// so if they were a valid distribution for this radius the result is a
// maximal extension of them (this is how tileable generation across domain
// boundaries is built). Seeds are not re-emitted; only newly accepted samples
// are appended.
//
// Each call owns its grid and candidate list for the whole run; the only
// state shared between calls is the random source.
func (g *Generator[V]) Generate(dst []Sample[V]) []Sample[V] {
	var zero V
	dim := zero.Dim()

	gr := newGrid[V](g.radius, g.periodic)
	for _, s := range dst {
		gr.seed(s.Pos)
	}

	// Every top-level cell starts out as a candidate. Capacity covers the
	// transient growth during subdivision before pruning catches up.
	indices := make([]V, 0, gr.cells()*dim)
	choices := make([]float64, gr.side)
	for i := range choices {
		choices[i] = float64(i)
	}
	for v := range combinations[V](choices) {
		indices = append(indices, v)
	}

	level := 0
	for len(indices) > 0 && level < maxLevel {
		if g.throwSamples(gr, &indices, level, throwFraction) {
			indices = g.subdivide(gr, indices, level)
			level++
		}
	}
	return gr.appendSamples(dst, g.radius)
}

// throwSamples runs one dart-throwing pass at the given level: it makes
// ceil(a*len) uniform picks from the surviving candidates, removing each pick
// that is provably dead (top-level parent already occupied) and accepting a
// random point inside each pick that passes the disk-free test. Candidates
// that merely lose a throw stay for later passes. Reports false when the
// candidate list empties mid-pass.
func (g *Generator[V]) throwSamples(gr *grid[V], indices *[]V, level int, a float64) bool {
	throws := int(math.Ceil(a * float64(len(*indices))))
	for t := 0; t < throws; t++ {
		i := g.rng.Intn(len(*indices))
		cur := (*indices)[i]
		parent := parentAt(cur, level)
		if gr.occupied(parent) {
			swapRemove(indices, i)
			if len(*indices) == 0 {
				return false
			}
			continue
		}
		sample := g.randomSample(gr, cur, level)
		if g.isDiskFree(gr, cur, level, sample) {
			gr.place(parent, sample)
			swapRemove(indices, i)
			if len(*indices) == 0 {
				return false
			}
		}
	}
	return true
}

// subdivide replaces every surviving candidate with its 2^D children one
// level down, discarding children that are already covered by an existing
// sample. The replacement is an in-place flat-map: candidates are swap-
// removed back to front and children appended at the end, which scrambles
// order — candidate order carries no meaning, only membership does.
func (g *Generator[V]) subdivide(gr *grid[V], indices []V, level int) []V {
	for i := len(indices) - 1; i >= 0; i-- {
		cur := indices[i]
		indices[i] = indices[len(indices)-1]
		indices = indices[:len(indices)-1]
		for off := range combinations[V](childOffsets) {
			child := cur.Scale(2).Add(off)
			if !g.covered(gr, child, level+1) {
				indices = append(indices, child)
			}
		}
	}
	return indices
}

// randomSample draws one uniform point inside the physical extent of the
// candidate cell at the given level.
func (g *Generator[V]) randomSample(gr *grid[V], coord V, level int) V {
	spacing := gr.cell / float64(int(1)<<uint(level))
	p := coord.Scale(spacing)
	for n := 0; n < p.Dim(); n++ {
		p = p.Set(n, p.At(n)+g.rng.Float64()*spacing)
	}
	return p
}

// swapRemove removes element i by swapping in the last element.
func swapRemove[V any](s *[]V, i int) {
	(*s)[i] = (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
}
