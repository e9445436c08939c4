package layout

// placeRoot positions the root inside the viewport. The root has no parent
// defaults, so its Auto edges are 0.
func (s *solver) placeRoot(root NodeID, viewport Rect) {
	style := s.styles.LayoutStyle(root)
	if style == nil {
		s.cache.SetRect(root, Rect{PosX: viewport.PosX, PosY: viewport.PosY})
		return
	}

	var rect Rect
	var space Space
	for _, a := range axes {
		pos, extent, before, after := s.placeAlone(nil, root, style, viewport, a, viewport.extent(a))
		rect.set(a, pos, extent)
		space.set(a, before, after)
	}
	s.cache.SetRect(root, rect)
	s.cache.SetSpace(root, space)
}

// placeChildren positions every child of id. The rect of id is final.
func (s *solver) placeChildren(id NodeID) {
	rect := s.cache.Rect(id)
	origin := Rect{PosX: rect.PosX, PosY: rect.PosY}

	style := s.styles.LayoutStyle(id)
	if style == nil {
		for child := range s.tree.ChildIter(id) {
			s.cache.SetRect(child, origin)
		}
		return
	}

	content := rect
	if inset := SpaceAll(border(style, rect)); !inset.IsZero() {
		content = rect.Inset(inset)
	}

	var flow []NodeID
	for child := range s.tree.ChildIter(id) {
		cs := s.styles.LayoutStyle(child)
		switch {
		case cs == nil:
			s.cache.SetRect(child, origin)
		case cs.PositionType == SelfDirected:
			s.placeSelf(id, style, rect, child, cs)
		default:
			flow = append(flow, child)
		}
	}
	if len(flow) == 0 {
		return
	}

	if style.LayoutType == Grid {
		s.placeGrid(id, style, content, flow)
		return
	}
	s.placeFlow(id, style, content, flow)
}

// placeFlow stacks the flow children along the main axis. Free space is
// shared by every stretch edge and size of every child; on the cross axis
// each child only shares with itself.
func (s *solver) placeFlow(id NodeID, style *Style, content Rect, flow []NodeID) {
	main, _ := style.LayoutType.mainAxis()
	cross := main.cross()
	mainBasis := s.basis(id, style, content, main)
	crossBasis := s.basis(id, style, content, cross)

	items := make([]flexItem, 0, 3*len(flow))
	for _, child := range flow {
		cs := s.styles.LayoutStyle(child)
		items = append(items,
			newFlexItem(s.edge(style, child, cs, main, false), mainBasis),
			newFlexItem(s.size(child, cs, main), mainBasis),
			newFlexItem(s.edge(style, child, cs, main, true), mainBasis),
		)
	}
	free, weights := distribute(items, content.extent(main))
	s.cache.setFreeSpace(id, main, free, weights)

	cursor := content.start(main)
	for i, child := range flow {
		cs := s.styles.LayoutStyle(child)
		before := items[3*i].value
		extent := max(0, items[3*i+1].value)
		after := items[3*i+2].value

		var rect Rect
		var space Space
		rect.set(main, cursor+before, extent)
		space.set(main, before, after)
		cursor += before + extent + after

		pos, crossExtent, crossBefore, crossAfter := s.placeAlone(style, child, cs, content, cross, crossBasis)
		rect.set(cross, pos, crossExtent)
		space.set(cross, crossBefore, crossAfter)

		s.cache.SetRect(child, rect)
		s.cache.SetSpace(child, space)
	}
}

// placeSelf positions an out-of-flow child against the parent's full rect,
// one axis at a time.
func (s *solver) placeSelf(parent NodeID, parentStyle *Style, parentRect Rect, child NodeID, style *Style) {
	var rect Rect
	var space Space
	for _, a := range axes {
		basis := s.basis(parent, parentStyle, parentRect, a)
		pos, extent, before, after := s.placeAlone(parentStyle, child, style, parentRect, a, basis)
		rect.set(a, pos, extent)
		space.set(a, before, after)
	}
	s.cache.SetRect(child, rect)
	s.cache.SetSpace(child, space)
}

// placeAlone resolves the leading edge, size and trailing edge of id inside
// area along a, sharing the free space only between those three.
func (s *solver) placeAlone(parent *Style, id NodeID, style *Style, area Rect, a axis, basis float32) (pos, extent, before, after float32) {
	items := [3]flexItem{
		newFlexItem(s.edge(parent, id, style, a, false), basis),
		newFlexItem(s.size(id, style, a), basis),
		newFlexItem(s.edge(parent, id, style, a, true), basis),
	}
	distribute(items[:], area.extent(a))
	return area.start(a) + items[0].value, max(0, items[1].value), items[0].value, items[2].value
}

// basis is what percentages of children of id resolve against along a.
func (s *solver) basis(id NodeID, style *Style, area Rect, a axis) float32 {
	if s.hugs(id, style, a) {
		return 0
	}
	return area.extent(a)
}

// border resolves the uniform border width of a box. A percentage is taken
// of the box's smaller side so all four edges stay equal.
func border(style *Style, rect Rect) float32 {
	return max(0, style.Border.Resolve(min(rect.Width, rect.Height), 0))
}
