package layout

// Space holds resolved offsets for the four sides of a box, in pixels.
type Space struct {
	Left, Right, Top, Bottom float32
}

// SpaceAll creates a Space with the same value on all sides.
func SpaceAll(v float32) Space {
	return Space{Left: v, Right: v, Top: v, Bottom: v}
}

// Horizontal returns the sum of Left and Right.
func (s Space) Horizontal() float32 {
	return s.Left + s.Right
}

// Vertical returns the sum of Top and Bottom.
func (s Space) Vertical() float32 {
	return s.Top + s.Bottom
}

// IsZero returns true if all offsets are zero.
func (s Space) IsZero() bool {
	return s.Left == 0 && s.Right == 0 && s.Top == 0 && s.Bottom == 0
}

func (s Space) before(a axis) float32 {
	if a == horizontal {
		return s.Left
	}
	return s.Top
}

func (s Space) after(a axis) float32 {
	if a == horizontal {
		return s.Right
	}
	return s.Bottom
}

func (s *Space) set(a axis, before, after float32) {
	if a == horizontal {
		s.Left, s.Right = before, after
		return
	}
	s.Top, s.Bottom = before, after
}

// Size is a width/height pair. The solver uses it as the measurement buffer,
// separate from the placed Rect.
type Size struct {
	Width, Height float32
}

func (s Size) along(a axis) float32 {
	if a == horizontal {
		return s.Width
	}
	return s.Height
}

func (s *Size) set(a axis, v float32) {
	if a == horizontal {
		s.Width = v
		return
	}
	s.Height = v
}
