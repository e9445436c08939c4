package layout

// LayoutType specifies how a node arranges its children.
type LayoutType uint8

const (
	Column LayoutType = iota // Children stacked top-to-bottom
	Row                      // Children stacked left-to-right
	Grid                     // Children placed on row/column tracks
)

// String returns the lowercase name of the layout type.
func (t LayoutType) String() string {
	switch t {
	case Row:
		return "row"
	case Grid:
		return "grid"
	default:
		return "column"
	}
}

// PositionType specifies whether a node takes part in its parent's flow.
type PositionType uint8

const (
	ParentDirected PositionType = iota // Placed by the parent's stack or grid
	SelfDirected                       // Placed against the parent's rect, out of flow
)

// String returns the lowercase name of the position type.
func (p PositionType) String() string {
	if p == SelfDirected {
		return "self"
	}
	return "parent"
}

// Style contains all layout properties for a node.
// The zero Style is all Auto with zero grid spans, which are treated as 1.
type Style struct {
	LayoutType   LayoutType
	PositionType PositionType

	// Edge offsets
	Left   Value
	Right  Value
	Top    Value
	Bottom Value

	MinLeft   Value
	MaxLeft   Value
	MinRight  Value
	MaxRight  Value
	MinTop    Value
	MaxTop    Value
	MinBottom Value
	MaxBottom Value

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MaxWidth  Value
	MinHeight Value
	MaxHeight Value

	// Defaults for the Auto edges of children
	ChildLeft   Value
	ChildRight  Value
	ChildTop    Value
	ChildBottom Value

	// Gaps between stacked children or grid tracks
	RowBetween Value
	ColBetween Value

	// Grid container tracks
	GridRows []Value
	GridCols []Value

	// Grid item placement
	RowIndex int
	ColIndex int
	RowSpan  int
	ColSpan  int

	// Border is applied uniformly on all four sides.
	Border Value
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		LayoutType:   Column,
		PositionType: ParentDirected,
		RowSpan:      1,
		ColSpan:      1,
	}
}

// axis selects the horizontal or vertical half of a style.
type axis uint8

const (
	horizontal axis = iota
	vertical
)

func (a axis) cross() axis {
	return 1 - a
}

// mainAxis returns the stacking axis of a flow layout. Grid has none.
func (t LayoutType) mainAxis() (axis, bool) {
	switch t {
	case Row:
		return horizontal, true
	case Column:
		return vertical, true
	default:
		return horizontal, false
	}
}

// constraint is a value with its min/max clamps.
type constraint struct {
	value, min, max Value
}

func (s *Style) size(a axis) constraint {
	if a == horizontal {
		return constraint{s.Width, s.MinWidth, s.MaxWidth}
	}
	return constraint{s.Height, s.MinHeight, s.MaxHeight}
}

func (s *Style) before(a axis) constraint {
	if a == horizontal {
		return constraint{s.Left, s.MinLeft, s.MaxLeft}
	}
	return constraint{s.Top, s.MinTop, s.MaxTop}
}

func (s *Style) after(a axis) constraint {
	if a == horizontal {
		return constraint{s.Right, s.MinRight, s.MaxRight}
	}
	return constraint{s.Bottom, s.MinBottom, s.MaxBottom}
}

func (s *Style) childBefore(a axis) Value {
	if a == horizontal {
		return s.ChildLeft
	}
	return s.ChildTop
}

func (s *Style) childAfter(a axis) Value {
	if a == horizontal {
		return s.ChildRight
	}
	return s.ChildBottom
}

// between is the gap along a: columns are separated horizontally, rows vertically.
func (s *Style) between(a axis) Value {
	if a == horizontal {
		return s.ColBetween
	}
	return s.RowBetween
}

func (s *Style) tracks(a axis) []Value {
	if a == horizontal {
		return s.GridCols
	}
	return s.GridRows
}

func (s *Style) placement(a axis) (index, span int) {
	if a == horizontal {
		return s.ColIndex, s.ColSpan
	}
	return s.RowIndex, s.RowSpan
}
