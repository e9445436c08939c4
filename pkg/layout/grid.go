package layout

// placeGrid sizes the row and column tracks of id and places each flow
// child in the union of the tracks it spans.
func (s *solver) placeGrid(id NodeID, style *Style, content Rect, flow []NodeID) {
	area := content.Inset(Space{
		Left:   max(0, style.ChildLeft.Resolve(content.Width, 0)),
		Right:  max(0, style.ChildRight.Resolve(content.Width, 0)),
		Top:    max(0, style.ChildTop.Resolve(content.Height, 0)),
		Bottom: max(0, style.ChildBottom.Resolve(content.Height, 0)),
	})

	var starts, extents [2][]float32
	for _, a := range axes {
		starts[a], extents[a] = resolveTracks(style.tracks(a), style.between(a), area, a, s.basis(id, style, area, a))
	}

	for _, child := range flow {
		cs := s.styles.LayoutStyle(child)

		var cell Rect
		for _, a := range axes {
			index, span := cs.placement(a)
			first, last := spanBounds(index, span, len(starts[a]))
			cell.set(a, starts[a][first], starts[a][last]+extents[a][last]-starts[a][first])
		}

		var rect Rect
		var space Space
		for _, a := range axes {
			pos, extent, before, after := s.placeAlone(style, child, cs, cell, a, cell.extent(a))
			rect.set(a, pos, extent)
			space.set(a, before, after)
		}
		s.cache.SetRect(child, rect)
		s.cache.SetSpace(child, space)
	}
}

// resolveTracks returns the start and extent of every track along a.
// Auto tracks stretch with weight 1, and an empty track list is a single
// stretch track.
func resolveTracks(tracks []Value, gap Value, area Rect, a axis, basis float32) (starts, extents []float32) {
	if len(tracks) == 0 {
		tracks = []Value{Stretch(1)}
	}

	g := max(0, gap.Resolve(basis, 0))
	items := make([]flexItem, len(tracks))
	for i, t := range tracks {
		if t.IsAuto() {
			t = Stretch(1)
		}
		items[i] = newFlexItem(constraint{value: t}, basis)
	}
	distribute(items, area.extent(a)-g*float32(len(tracks)-1))

	starts = make([]float32, len(tracks))
	extents = make([]float32, len(tracks))
	cursor := area.start(a)
	for i := range items {
		starts[i] = cursor
		extents[i] = max(0, items[i].value)
		cursor += extents[i] + g
	}
	return starts, extents
}

// spanBounds clamps a placement to a track array of length n and returns
// the first and last track it covers. A span below 1 counts as 1.
func spanBounds(index, span, n int) (first, last int) {
	first = min(max(index, 0), n-1)
	span = max(span, 1)
	last = first + min(span, n-first) - 1
	return first, last
}
