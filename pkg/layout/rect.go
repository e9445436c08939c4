package layout

// Rect is an absolute rectangle in logical pixels.
// PosX and PosY are the top-left corner; Width and Height are dimensions.
type Rect struct {
	PosX, PosY    float32
	Width, Height float32
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{PosX: x, PosY: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.PosX + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.PosY + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset returns a new Rect inset by the given Space.
// The result never has a negative width or height.
func (r Rect) Inset(s Space) Rect {
	return Rect{
		PosX:   r.PosX + s.Left,
		PosY:   r.PosY + s.Top,
		Width:  max(0, r.Width-s.Horizontal()),
		Height: max(0, r.Height-s.Vertical()),
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{PosX: r.PosX + dx, PosY: r.PosY + dy, Width: r.Width, Height: r.Height}
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.PosX, other.PosX)
	y := min(r.PosY, other.PosY)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return Rect{PosX: x, PosY: y, Width: right - x, Height: bottom - y}
}

func (r Rect) start(a axis) float32 {
	if a == horizontal {
		return r.PosX
	}
	return r.PosY
}

func (r Rect) extent(a axis) float32 {
	if a == horizontal {
		return r.Width
	}
	return r.Height
}

func (r *Rect) set(a axis, pos, extent float32) {
	if a == horizontal {
		r.PosX, r.Width = pos, extent
		return
	}
	r.PosY, r.Height = pos, extent
}
