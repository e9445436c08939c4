package layout

// measure fills the Size buffer of id and the child aggregates it is built
// from. Every descendant of id has been measured already.
//
// Only pixel values are known at this point: percentages and stretch
// contribute 0 and are resolved during placement.
func (s *solver) measure(id NodeID) {
	style := s.styles.LayoutStyle(id)
	if style == nil {
		return
	}

	flow := s.flowChildren(id)
	for i, child := range flow {
		s.cache.SetStackFirstChild(child, i == 0)
		s.cache.SetStackLastChild(child, i == len(flow)-1)
	}

	var hug [2]float32
	var fills [2]bool
	if style.LayoutType == Grid {
		for _, a := range axes {
			extent, stretchy := gridExtent(style, a)
			if a == horizontal {
				s.cache.SetGridColMax(id, extent)
			} else {
				s.cache.SetGridRowMax(id, extent)
			}
			hug[a] = extent + pixelMin(style.childBefore(a)) + pixelMin(style.childAfter(a))
			fills[a] = stretchy
		}
	} else {
		fills = s.aggregate(id, style, flow)
		main, _ := style.LayoutType.mainAxis()
		for _, a := range axes {
			if a == main {
				hug[a] = s.cache.childSum(id, a)
			} else {
				hug[a] = s.cache.childMax(id, a)
			}
		}
	}

	var content Size
	var hasContent bool
	if s.sizer != nil && (style.Width.IsAuto() || style.Height.IsAuto()) {
		limit := Size{
			Width:  ContentConstraint(style.MinWidth, style.Width, style.MaxWidth),
			Height: ContentConstraint(style.MinHeight, style.Height, style.MaxHeight),
		}
		content, hasContent = s.sizer.ContentSize(id, limit)
	}

	borders := 2 * max(0, pixelMin(style.Border))
	hasChildren := len(flow) > 0 || style.LayoutType == Grid

	var size Size
	for _, a := range axes {
		c := style.size(a)
		var v float32
		switch {
		case c.value.IsPixels():
			v = c.value.amount()
		case !c.value.IsAuto():
			v = 0
		case hasContent:
			v = content.along(a)
		case hasChildren && !fills[a]:
			v = hug[a] + borders
		default:
			s.cache.setAutoFill(id, a, true)
			continue
		}
		size.set(a, max(0, clamp(v, pixelMin(c.min), pixelMax(c.max))))
	}
	s.cache.SetSize(id, size)
}

// aggregate sums and maxes the measured outer sizes of the flow children
// of id, and reports per axis whether any of them stretches.
func (s *solver) aggregate(id NodeID, style *Style, flow []NodeID) (fills [2]bool) {
	var sum, most [2]float32
	for _, child := range flow {
		cs := s.styles.LayoutStyle(child)
		measured := s.cache.Size(child)
		for _, a := range axes {
			outer := measured.along(a)
			if cs.size(a).value.weight() > 0 || s.cache.autoFill(child, a) {
				fills[a] = true
			}
			for _, trailing := range []bool{false, true} {
				c := s.edge(style, child, cs, a, trailing)
				switch {
				case c.value.weight() > 0:
					fills[a] = true
				case c.value.IsPixels():
					outer += clamp(c.value.amount(), pixelMin(c.min), pixelMax(c.max))
				}
			}
			sum[a] += outer
			most[a] = max(most[a], outer)
		}
	}

	s.cache.SetChildWidthSum(id, sum[horizontal])
	s.cache.SetChildWidthMax(id, most[horizontal])
	s.cache.SetChildHeightSum(id, sum[vertical])
	s.cache.SetChildHeightMax(id, most[vertical])
	return fills
}

// gridExtent returns the pixel extent of a grid's tracks and gaps along a,
// and whether any track stretches. No tracks means one implicit stretch track.
func gridExtent(style *Style, a axis) (extent float32, stretchy bool) {
	tracks := style.tracks(a)
	if len(tracks) == 0 {
		return 0, true
	}
	for _, t := range tracks {
		switch {
		case t.IsPixels():
			extent += t.amount()
		case t.IsAuto() || t.weight() > 0:
			stretchy = true
		}
	}
	if gap := style.between(a); gap.IsPixels() {
		extent += max(0, gap.amount()) * float32(len(tracks)-1)
	}
	return extent, stretchy
}
