package poisson

import (
	"iter"

	"github.com/pthm-cable/poisson/vec"
)

// combinations yields every D-dimensional vector whose components are drawn,
// with repetition, from choices. The order is deterministic: the k-th vector
// is k written in base len(choices), one digit per component. This enumerates
// the 5^D neighbor ring ({-2..2}), the 2^D cell children ({0,1}) and the 3^D
// toroidal images ({-1,0,1}) without per-dimension loop nesting.
func combinations[V vec.Point[V]](choices []float64) iter.Seq[V] {
	return func(yield func(V) bool) {
		var zero V
		dim := zero.Dim()
		base := len(choices)
		total := intPow(base, dim)
		for k := 0; k < total; k++ {
			v := zero
			div := k
			for n := 0; n < dim; n++ {
				v = v.Set(n, choices[div%base])
				div /= base
			}
			if !yield(v) {
				return
			}
		}
	}
}

// intPow returns base**exp for small non-negative exponents.
func intPow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
