package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGrid_TrackSizes(t *testing.T) {
	store := NewStore()
	grid := newStyled(store, func(s *Style) {
		s.LayoutType = Grid
		s.Width = Pixels(500)
		s.Height = Pixels(100)
		s.GridCols = []Value{Pixels(100), Stretch(1), Stretch(3)}
	})
	var cells []NodeID
	for col := range 3 {
		cells = append(cells, newStyled(store, func(s *Style) { s.ColIndex = col }))
	}
	store.AttachChildren(grid, cells...)

	cache := solve(store, grid, NewRect(0, 0, 500, 100))

	// No rows means one implicit stretch row.
	assertRect(t, "col 0", cache.Rect(cells[0]), NewRect(0, 0, 100, 100))
	assertRect(t, "col 1", cache.Rect(cells[1]), NewRect(100, 0, 100, 100))
	assertRect(t, "col 2", cache.Rect(cells[2]), NewRect(200, 0, 300, 100))
}

func TestGrid_GapsAndSpans(t *testing.T) {
	store := NewStore()
	grid := newStyled(store, func(s *Style) {
		s.LayoutType = Grid
		s.Width = Pixels(110)
		s.Height = Pixels(50)
		s.GridCols = []Value{Stretch(1), Stretch(1)}
		s.GridRows = []Value{Pixels(20), Auto()}
		s.ColBetween = Pixels(10)
		s.RowBetween = Pixels(5)
	})
	second := newStyled(store, func(s *Style) { s.ColIndex = 1 })
	wide := newStyled(store, func(s *Style) {
		s.RowIndex = 1
		s.ColSpan = 2
	})
	store.AttachChildren(grid, second, wide)

	cache := solve(store, grid, NewRect(0, 0, 110, 50))

	assertRect(t, "second", cache.Rect(second), NewRect(60, 0, 50, 20))
	// The auto row takes what is left after 20 + 5.
	assertRect(t, "wide", cache.Rect(wide), NewRect(0, 25, 110, 25))
}

func TestGrid_PlacementClamped(t *testing.T) {
	store := NewStore()
	grid := newStyled(store, func(s *Style) {
		s.LayoutType = Grid
		s.Width = Pixels(30)
		s.Height = Pixels(30)
		s.GridRows = []Value{Pixels(10), Pixels(10), Pixels(10)}
	})
	far := newStyled(store, func(s *Style) {
		s.RowIndex = 5
		s.RowSpan = 3
	})
	negative := newStyled(store, func(s *Style) {
		s.RowIndex = -2
		s.RowSpan = 0
	})
	store.AttachChildren(grid, far, negative)

	cache := solve(store, grid, NewRect(0, 0, 30, 30))

	assertRect(t, "far", cache.Rect(far), NewRect(0, 20, 30, 10))
	assertRect(t, "negative", cache.Rect(negative), NewRect(0, 0, 30, 10))
}

func TestGrid_HugeSpan(t *testing.T) {
	store := NewStore()
	grid := newStyled(store, func(s *Style) {
		s.LayoutType = Grid
		s.Width = Pixels(40)
		s.Height = Pixels(10)
		s.GridCols = []Value{Pixels(10), Pixels(10), Pixels(10), Pixels(10)}
	})
	wide := newStyled(store, func(s *Style) {
		s.ColIndex = 2
		s.ColSpan = math.MaxInt
	})
	store.AttachChildren(grid, wide)

	cache := solve(store, grid, NewRect(0, 0, 40, 10))

	assertRect(t, "wide", cache.Rect(wide), NewRect(20, 0, 20, 10))
}

func TestGrid_ChildInsetsAndEdges(t *testing.T) {
	store := NewStore()
	grid := newStyled(store, func(s *Style) {
		s.LayoutType = Grid
		s.Width = Pixels(120)
		s.Height = Pixels(40)
		s.Border = Pixels(1)
		s.ChildLeft = Pixels(9)
		s.ChildRight = Pixels(9)
		s.GridCols = []Value{Stretch(1), Stretch(1)}
	})
	padded := newStyled(store, func(s *Style) {
		s.Left = Pixels(5)
		s.Width = Pixels(20)
		s.Top = Stretch(1)
		s.Bottom = Stretch(1)
		s.Height = Pixels(10)
	})
	store.AttachChildren(grid, padded)

	cache := solve(store, grid, NewRect(0, 0, 120, 40))

	// Track area starts at 1 + 9 and is 120 - 2 - 18 wide.
	assertRect(t, "padded", cache.Rect(padded), NewRect(15, 15, 20, 10))
}

func TestGrid_Empty(t *testing.T) {
	store := NewStore()
	grid := newStyled(store, func(s *Style) {
		s.LayoutType = Grid
		s.Width = Pixels(10)
		s.Height = Pixels(10)
	})

	cache := solve(store, grid, NewRect(0, 0, 10, 10))

	assertRect(t, "grid", cache.Rect(grid), NewRect(0, 0, 10, 10))
}

func TestResolveTracks(t *testing.T) {
	type tc struct {
		tracks      []Value
		gap         Value
		area        Rect
		wantStarts  []float32
		wantExtents []float32
	}

	tests := map[string]tc{
		"no tracks": {
			area:        NewRect(5, 0, 50, 10),
			wantStarts:  []float32{5},
			wantExtents: []float32{50},
		},
		"auto is stretch one": {
			tracks:      []Value{Auto(), Stretch(1)},
			area:        NewRect(0, 0, 100, 10),
			wantStarts:  []float32{0, 50},
			wantExtents: []float32{50, 50},
		},
		"percent and gap": {
			tracks:      []Value{Percent(25), Stretch(1)},
			gap:         Pixels(4),
			area:        NewRect(0, 0, 100, 10),
			wantStarts:  []float32{0, 29},
			wantExtents: []float32{25, 71},
		},
		"overflowing fixed tracks": {
			tracks:      []Value{Pixels(80), Pixels(80), Stretch(1)},
			area:        NewRect(0, 0, 100, 10),
			wantStarts:  []float32{0, 80, 160},
			wantExtents: []float32{80, 80, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			starts, extents := resolveTracks(tt.tracks, tt.gap, tt.area, horizontal, tt.area.Width)
			if diff := cmp.Diff(tt.wantStarts, starts, approx); diff != "" {
				t.Errorf("starts mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantExtents, extents, approx); diff != "" {
				t.Errorf("extents mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSpanBounds(t *testing.T) {
	type tc struct {
		index, span, n int
		first, last    int
	}

	tests := map[string]tc{
		"inside":         {index: 1, span: 1, n: 3, first: 1, last: 1},
		"spans two":      {index: 0, span: 2, n: 3, first: 0, last: 1},
		"span too long":  {index: 1, span: 5, n: 3, first: 1, last: 2},
		"index too high": {index: 7, span: 1, n: 3, first: 2, last: 2},
		"negative index": {index: -1, span: 2, n: 3, first: 0, last: 1},
		"zero span":      {index: 2, span: 0, n: 3, first: 2, last: 2},
		"single track":   {index: 3, span: 3, n: 1, first: 0, last: 0},

		"huge span":                  {index: 0, span: math.MaxInt, n: 4, first: 0, last: 3},
		"huge span past first track": {index: 2, span: math.MaxInt, n: 4, first: 2, last: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			first, last := spanBounds(tt.index, tt.span, tt.n)
			if first != tt.first || last != tt.last {
				t.Errorf("spanBounds(%d, %d, %d) = %d, %d, want %d, %d",
					tt.index, tt.span, tt.n, first, last, tt.first, tt.last)
			}
		})
	}
}
