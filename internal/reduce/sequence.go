package reduce

// Integer is the set of element and accumulator types a reduction accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Sequence is an ordered, finite, indexable collection. Implementations must
// not change while a reduction over them is running.
type Sequence[E Integer] interface {
	Len() int
	At(i int) E
}

// Slice adapts a Go slice to Sequence.
type Slice[E Integer] []E

// Len returns the number of elements.
func (s Slice[E]) Len() int { return len(s) }

// At returns the element at position i.
func (s Slice[E]) At(i int) E { return s[i] }

// Iota is the virtual sequence Start, Start+1, ..., Start+N-1. It holds no
// backing storage.
type Iota[E Integer] struct {
	Start E
	N     int
}

// Len returns N.
func (s Iota[E]) Len() int { return s.N }

// At returns Start+i.
func (s Iota[E]) At(i int) E { return s.Start + E(i) }

// Materialize copies any sequence into a Slice.
func Materialize[E Integer](seq Sequence[E]) Slice[E] {
	out := make(Slice[E], seq.Len())
	for i := range out {
		out[i] = seq.At(i)
	}
	return out
}
