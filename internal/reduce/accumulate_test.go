package reduce

import (
	"math"
	"testing"

	"github.com/agbru/paracc/internal/parallel"
)

func TestTransform(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want int64
	}{
		{0, 0},
		{1, 1},
		{2, 3},
		{9, 13},
		{-1, -1},
		{-3, -4},
		{-5, -7},
	}
	for _, tt := range tests {
		if got := Transform(tt.in); got != tt.want {
			t.Errorf("Transform(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWrapAdd(t *testing.T) {
	t.Parallel()
	if got, c := wrapAdd(int64(math.MaxInt64), 1); c != 1 || got != math.MinInt64 {
		t.Errorf("MaxInt64+1 = (%d, %d), want (MinInt64, +1)", got, c)
	}
	if got, c := wrapAdd(int64(math.MinInt64), -1); c != -1 || got != math.MaxInt64 {
		t.Errorf("MinInt64-1 = (%d, %d), want (MaxInt64, -1)", got, c)
	}
	if got, c := wrapAdd(uint8(250), 6); c != 1 || got != 0 {
		t.Errorf("uint8 250+6 = (%d, %d), want (0, +1)", got, c)
	}
	if got, c := wrapAdd(int32(-7), 3); c != 0 || got != -4 {
		t.Errorf("wrapAdd(-7, 3) = (%d, %d), want (-4, 0)", got, c)
	}
}

func TestAccumulateChecked_NetWraps(t *testing.T) {
	t.Parallel()
	// 63*3 leaves int8 upwards, -63*3 brings it back: the exact total 0 fits.
	seq := Slice[int8]{42, 42, 42, -42, -42, -42}
	got, wraps, ok := accumulateChecked(seq, parallel.Block{End: 6}, int8(0))
	if !ok || wraps != 0 || got != 0 {
		t.Errorf("got (%d, %d, %v), want (0, 0, true)", got, wraps, ok)
	}

	_, wraps, ok = accumulateChecked(seq, parallel.Block{End: 3}, int8(0))
	if !ok || wraps != 1 {
		t.Errorf("first half: wraps = %d, ok = %v; want 1, true", wraps, ok)
	}
}

func TestConvertChecked(t *testing.T) {
	t.Parallel()
	if _, ok := convertChecked[int64, int8](300); ok {
		t.Error("300 does not fit in int8")
	}
	if _, ok := convertChecked[int8, uint8](-1); ok {
		t.Error("-1 does not fit in uint8")
	}
	if _, ok := convertChecked[uint64, int64](math.MaxUint64); ok {
		t.Error("MaxUint64 does not fit in int64")
	}
	if got, ok := convertChecked[int32, int64](-9); !ok || got != -9 {
		t.Errorf("convertChecked(-9) = (%d, %v), want (-9, true)", got, ok)
	}
}

func TestAccumulate_GenericSequenceMatchesFastPaths(t *testing.T) {
	t.Parallel()
	virtual := Iota[int32]{Start: -50, N: 200}
	slice := Materialize[int32](virtual)
	wrapped := struct{ Sequence[int32] }{virtual}

	b := NewPlan(virtual.Len(), 1, 1).Blocks[0]
	a := accumulate(virtual, b, int64(0))
	s := accumulate(slice, b, int64(0))
	g := accumulate(Sequence[int32](wrapped), b, int64(0))
	if a != s || s != g {
		t.Errorf("virtual=%d slice=%d generic=%d, want all equal", a, s, g)
	}
	if want := oracle([]int32(slice), int64(0)); a != want {
		t.Errorf("accumulate = %d, want %d", a, want)
	}
}
