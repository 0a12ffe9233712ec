package reduce

import "github.com/agbru/paracc/internal/parallel"

// Transform is the per-element rule x*3/2, evaluated in the element type
// with division truncating toward zero.
func Transform[E Integer](x E) E {
	return x * 3 / 2
}

// accumulate adds Transform(x) for every x in b to acc. Slices and Iota
// sequences avoid the per-element interface call.
func accumulate[E, A Integer](seq Sequence[E], b parallel.Block, acc A) A {
	switch s := seq.(type) {
	case Slice[E]:
		for _, x := range s[b.Start:b.End] {
			acc += A(Transform(x))
		}
	case Iota[E]:
		x := s.Start + E(b.Start)
		for i := b.Start; i < b.End; i++ {
			acc += A(Transform(x))
			x++
		}
	default:
		for i := b.Start; i < b.End; i++ {
			acc += A(Transform(seq.At(i)))
		}
	}
	return acc
}

// accumulateChecked is accumulate with overflow detection on the transform
// and the conversion into A. Additions wrap as in accumulate; wraps returns
// their net carry out of A's range, so that the exact sum is
// acc + wraps*2^bits(A). ok is false if an element could not be transformed
// or converted.
func accumulateChecked[E, A Integer](seq Sequence[E], b parallel.Block, acc A) (_ A, wraps int, ok bool) {
	for i := b.Start; i < b.End; i++ {
		t, ok := transformChecked(seq.At(i))
		if !ok {
			return acc, wraps, false
		}
		v, ok := convertChecked[E, A](t)
		if !ok {
			return acc, wraps, false
		}
		var carry int
		acc, carry = wrapAdd(acc, v)
		wraps += carry
	}
	return acc, wraps, true
}

// transformChecked computes x*3/2, reporting whether x*3 fits in E.
func transformChecked[E Integer](x E) (E, bool) {
	y := x * 3
	if y/3 != x {
		return 0, false
	}
	return y / 2, true
}

// convertChecked converts v to A, reporting whether the value is preserved.
func convertChecked[E, A Integer](v E) (A, bool) {
	a := A(v)
	if E(a) != v || (v < 0) != (a < 0) {
		return 0, false
	}
	return a, true
}

// wrapAdd returns a+b in A's wraparound arithmetic and the carry out of
// A's range: +1 when the sum wrapped past the maximum, -1 past the minimum.
func wrapAdd[A Integer](a, b A) (A, int) {
	s := a + b
	switch {
	case b > 0 && s < a:
		return s, 1
	case b < 0 && s > a:
		return s, -1
	}
	return s, 0
}
