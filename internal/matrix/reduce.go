// Released under an MIT license. See LICENSE.

package matrix

// Vectors reduce to a 1x1 result. Other matrices reduce each column,
// giving a 1 x cols result.

// Reduce folds the elements of m with f starting from init.
func Reduce[E, F Elem](m *Dense[E], init F, f func(F, E) F) *Dense[F] {
	if m.IsVector() {
		acc := init
		for _, v := range m.data {
			acc = f(acc, v)
		}

		return Reshaped([]F{acc}, 1, 1)
	}

	r := New[F](1, m.cols)

	for j := 0; j < m.cols; j++ {
		acc := init
		for i := 0; i < m.rows; i++ {
			acc = f(acc, m.At(i, j))
		}

		r.SetElem(j, acc)
	}

	return r
}

// Accumulate returns the running fold of m with f. Vectors accumulate
// along their length. Other matrices accumulate down each column.
func Accumulate[E Elem](m *Dense[E], f func(E, E) E) *Dense[E] {
	r := m.Copy()

	if m.IsVector() {
		for k := 1; k < len(r.data); k++ {
			r.data[k] = f(r.data[k-1], r.data[k])
		}

		return r
	}

	for j := 0; j < m.cols; j++ {
		for i := 1; i < m.rows; i++ {
			r.Set(i, j, f(r.At(i-1, j), r.At(i, j)))
		}
	}

	return r
}

// Sum returns the sums of m.
func Sum[E Elem](m *Dense[E]) *Dense[E] {
	return Reduce(m, E(0), func(a, v E) E { return a + v })
}

// Prod returns the products of m.
func Prod[E Elem](m *Dense[E]) *Dense[E] {
	return Reduce(m, E(1), func(a, v E) E { return a * v })
}

// CumSum returns the cumulative sums of m.
func CumSum[E Elem](m *Dense[E]) *Dense[E] {
	return Accumulate(m, func(a, v E) E { return a + v })
}

// CumProd returns the cumulative products of m.
func CumProd[E Elem](m *Dense[E]) *Dense[E] {
	return Accumulate(m, func(a, v E) E { return a * v })
}

// All returns 1 where every element is nonzero and 0 otherwise.
func All[E Elem](m *Dense[E]) *Real {
	return Reduce(m, 1.0, func(a float64, v E) float64 {
		if v == 0 {
			return 0
		}
		return a
	})
}

// Any returns 1 where some element is nonzero and 0 otherwise.
func Any[E Elem](m *Dense[E]) *Real {
	return Reduce(m, 0.0, func(a float64, v E) float64 {
		if v != 0 {
			return 1
		}
		return a
	})
}
