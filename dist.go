package poisson

import (
	"math"

	"github.com/pthm-cable/poisson/vec"
)

// neighborRing spans the 5^D cell neighborhood of a top-level cell. Given the
// 2r/sqrt(D) cell width, no sample outside this ring can lie within 2r of any
// point in the center cell. The ring includes corner cells that can never be
// geometrically relevant (5^D instead of 5^D - 2D); scanning them is wasted
// work but not a correctness issue.
var neighborRing = []float64{-2, -1, 0, 1, 2}

// toroidalImages shifts a difference vector into each adjacent copy of the
// unit domain when computing periodic distance.
var toroidalImages = []float64{-1, 0, 1}

// childOffsets addresses the 2^D children of a cell one level down.
var childOffsets = []float64{0, 1}

// SqDist returns the squared Euclidean distance between p and q. In periodic
// mode the domain is a torus, so the result is the minimum over the 3^D
// translated images of the difference vector.
func SqDist[V vec.Point[V]](p, q V, periodic bool) float64 {
	diff := q.Sub(p)
	if !periodic {
		return diff.Norm2()
	}
	best := math.MaxFloat64
	for img := range combinations[V](toroidalImages) {
		if d := diff.Add(img).Norm2(); d < best {
			best = d
		}
	}
	return best
}

// isDiskFree reports whether candidate keeps distance >= 2r from every sample
// already stored near the candidate cell, scanning the 5^D neighbor ring of
// the cell's top-level parent.
func (g *Generator[V]) isDiskFree(gr *grid[V], coord V, level int, candidate V) bool {
	parent := parentAt(coord, level)
	sqradius := (2 * g.radius) * (2 * g.radius)
	for off := range combinations[V](neighborRing) {
		if s, ok := gr.sampleAt(parent.Add(off)); ok {
			if SqDist(s, candidate, g.periodic) < sqradius {
				return false
			}
		}
	}
	return true
}

// covered reports whether some existing sample in the 5^D neighbor ring
// already covers the whole cell at coord, meaning no point inside the cell
// can ever be placed without violating separation. Covered cells are pruned
// permanently during subdivision.
func (g *Generator[V]) covered(gr *grid[V], coord V, level int) bool {
	parent := parentAt(coord, level)
	for off := range combinations[V](neighborRing) {
		if s, ok := gr.sampleAt(parent.Add(off)); ok {
			if g.cellCovered(s, coord, gr, level) {
				return true
			}
		}
	}
	return false
}

// cellCovered reports whether every corner of the level-resolution cell at
// coord lies strictly within disk range of sample. Cells are convex and the
// disk test is a ball, so covering all 2^D corners covers the whole cell.
func (g *Generator[V]) cellCovered(sample V, coord V, gr *grid[V], level int) bool {
	spacing := gr.cell / float64(int(1)<<uint(level))
	sqradius := (2 * g.radius) * (2 * g.radius)
	for off := range combinations[V](childOffsets) {
		corner := coord.Add(off).Scale(spacing)
		if SqDist(corner, sample, g.periodic) >= sqradius {
			return false
		}
	}
	return true
}
