// Package scene loads layout scenes from TOML or YAML files into a
// layout.Store with its text content and viewport.
package scene

import (
	"errors"
	"fmt"

	"github.com/grindlemire/morph/pkg/layout"
	"github.com/grindlemire/morph/pkg/text"
)

var (
	ErrUnknownNode     = errors.New("unknown node")
	ErrDuplicateNode   = errors.New("duplicate node id")
	ErrMissingID       = errors.New("node without id")
	ErrMultipleParents = errors.New("node listed under more than one parent")
	ErrCycle           = errors.New("node hierarchy has a cycle")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrInvalidValue    = errors.New("invalid value")
	ErrUnknownLayout   = errors.New("unknown layout type")
	ErrUnknownPosition = errors.New("unknown position type")
	ErrUnknownFormat   = errors.New("unknown scene format")
	ErrUnknownKey      = errors.New("unknown key")
	ErrViewport        = errors.New("invalid viewport")
)

// Default text cell size in logical pixels.
const (
	DefaultCellWidth  = 8
	DefaultLineHeight = 16
)

// File is the decoded form of a scene file.
type File struct {
	Viewport Viewport `toml:"viewport" yaml:"viewport"`
	Text     Text     `toml:"text" yaml:"text"`
	Nodes    []Node   `toml:"node" yaml:"node"`
}

// Viewport is the rectangle the roots are laid out in.
type Viewport struct {
	X      float32 `toml:"x" yaml:"x"`
	Y      float32 `toml:"y" yaml:"y"`
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
	Scale  float64 `toml:"scale" yaml:"scale"` // physical pixels per logical pixel, default 1
}

// Text configures the monospace cell used to measure text nodes.
type Text struct {
	CellWidth  float32 `toml:"cell_width" yaml:"cell_width"`
	LineHeight float32 `toml:"line_height" yaml:"line_height"`
}

// Node is one node entry. Children are listed by id and may be declared
// before or after their parent.
type Node struct {
	ID       string   `toml:"id" yaml:"id"`
	Children []string `toml:"children" yaml:"children"`
	Text     *string  `toml:"text" yaml:"text"`
	Unstyled bool     `toml:"unstyled" yaml:"unstyled"` // no style record at all

	Layout   string `toml:"layout" yaml:"layout"`
	Position string `toml:"position" yaml:"position"`

	Left      Spec `toml:"left" yaml:"left"`
	Right     Spec `toml:"right" yaml:"right"`
	Top       Spec `toml:"top" yaml:"top"`
	Bottom    Spec `toml:"bottom" yaml:"bottom"`
	MinLeft   Spec `toml:"min_left" yaml:"min_left"`
	MaxLeft   Spec `toml:"max_left" yaml:"max_left"`
	MinRight  Spec `toml:"min_right" yaml:"min_right"`
	MaxRight  Spec `toml:"max_right" yaml:"max_right"`
	MinTop    Spec `toml:"min_top" yaml:"min_top"`
	MaxTop    Spec `toml:"max_top" yaml:"max_top"`
	MinBottom Spec `toml:"min_bottom" yaml:"min_bottom"`
	MaxBottom Spec `toml:"max_bottom" yaml:"max_bottom"`

	Width     Spec `toml:"width" yaml:"width"`
	Height    Spec `toml:"height" yaml:"height"`
	MinWidth  Spec `toml:"min_width" yaml:"min_width"`
	MaxWidth  Spec `toml:"max_width" yaml:"max_width"`
	MinHeight Spec `toml:"min_height" yaml:"min_height"`
	MaxHeight Spec `toml:"max_height" yaml:"max_height"`

	ChildLeft   Spec `toml:"child_left" yaml:"child_left"`
	ChildRight  Spec `toml:"child_right" yaml:"child_right"`
	ChildTop    Spec `toml:"child_top" yaml:"child_top"`
	ChildBottom Spec `toml:"child_bottom" yaml:"child_bottom"`

	RowBetween Spec `toml:"row_between" yaml:"row_between"`
	ColBetween Spec `toml:"col_between" yaml:"col_between"`

	GridRows []Spec `toml:"grid_rows" yaml:"grid_rows"`
	GridCols []Spec `toml:"grid_cols" yaml:"grid_cols"`
	Row      int    `toml:"row" yaml:"row"`
	Col      int    `toml:"col" yaml:"col"`
	RowSpan  int    `toml:"row_span" yaml:"row_span"`
	ColSpan  int    `toml:"col_span" yaml:"col_span"`

	Border Spec `toml:"border" yaml:"border"`
}

// Style converts the node's fields to a layout style.
func (n *Node) Style() (layout.Style, error) {
	style := layout.DefaultStyle()

	var err error
	if style.LayoutType, err = ParseLayoutType(n.Layout); err != nil {
		return style, err
	}
	if style.PositionType, err = ParsePositionType(n.Position); err != nil {
		return style, err
	}

	fields := []struct {
		name string
		spec Spec
		dst  *layout.Value
	}{
		{"left", n.Left, &style.Left},
		{"right", n.Right, &style.Right},
		{"top", n.Top, &style.Top},
		{"bottom", n.Bottom, &style.Bottom},
		{"min_left", n.MinLeft, &style.MinLeft},
		{"max_left", n.MaxLeft, &style.MaxLeft},
		{"min_right", n.MinRight, &style.MinRight},
		{"max_right", n.MaxRight, &style.MaxRight},
		{"min_top", n.MinTop, &style.MinTop},
		{"max_top", n.MaxTop, &style.MaxTop},
		{"min_bottom", n.MinBottom, &style.MinBottom},
		{"max_bottom", n.MaxBottom, &style.MaxBottom},
		{"width", n.Width, &style.Width},
		{"height", n.Height, &style.Height},
		{"min_width", n.MinWidth, &style.MinWidth},
		{"max_width", n.MaxWidth, &style.MaxWidth},
		{"min_height", n.MinHeight, &style.MinHeight},
		{"max_height", n.MaxHeight, &style.MaxHeight},
		{"child_left", n.ChildLeft, &style.ChildLeft},
		{"child_right", n.ChildRight, &style.ChildRight},
		{"child_top", n.ChildTop, &style.ChildTop},
		{"child_bottom", n.ChildBottom, &style.ChildBottom},
		{"row_between", n.RowBetween, &style.RowBetween},
		{"col_between", n.ColBetween, &style.ColBetween},
		{"border", n.Border, &style.Border},
	}
	for _, f := range fields {
		if *f.dst, err = ParseValue(string(f.spec)); err != nil {
			return style, fmt.Errorf("%s: %w", f.name, err)
		}
	}

	if style.GridRows, err = parseTracks(n.GridRows); err != nil {
		return style, fmt.Errorf("grid_rows: %w", err)
	}
	if style.GridCols, err = parseTracks(n.GridCols); err != nil {
		return style, fmt.Errorf("grid_cols: %w", err)
	}

	style.RowIndex, style.ColIndex = n.Row, n.Col
	if n.RowSpan != 0 {
		style.RowSpan = n.RowSpan
	}
	if n.ColSpan != 0 {
		style.ColSpan = n.ColSpan
	}
	return style, nil
}

func parseTracks(specs []Spec) ([]layout.Value, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	tracks := make([]layout.Value, len(specs))
	for i, s := range specs {
		v, err := ParseValue(string(s))
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		tracks[i] = v
	}
	return tracks, nil
}

// Scene is a built scene: the node store, the text of content nodes and the
// viewport the roots are laid out in.
type Scene struct {
	Store    *layout.Store
	Text     *text.Measurer
	Viewport layout.Rect

	ids   map[string]layout.NodeID
	names []string // indexed by NodeID
}

// Build creates the nodes of f, links their children in one batch per
// parent, and checks that every node hangs off a root.
func Build(f *File) (*Scene, error) {
	vp := f.Viewport
	if vp.Width < 0 || vp.Height < 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrViewport, vp.Width, vp.Height)
	}

	cellWidth, lineHeight := f.Text.CellWidth, f.Text.LineHeight
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}

	s := &Scene{
		Store:    layout.NewStore(),
		Text:     text.NewMeasurer(cellWidth, lineHeight),
		Viewport: layout.NewRect(vp.X, vp.Y, vp.Width, vp.Height),
		ids:      make(map[string]layout.NodeID, len(f.Nodes)),
		names:    make([]string, 0, len(f.Nodes)),
	}
	s.Text.SetScaleFactor(vp.Scale)

	for i := range f.Nodes {
		n := &f.Nodes[i]
		if n.ID == "" {
			return nil, fmt.Errorf("node %d: %w", i, ErrMissingID)
		}
		if _, ok := s.ids[n.ID]; ok {
			return nil, fmt.Errorf("node %q: %w", n.ID, ErrDuplicateNode)
		}

		var id layout.NodeID
		if n.Unstyled {
			id = s.Store.NewNodeWithoutStyle()
		} else {
			style, err := n.Style()
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", n.ID, err)
			}
			id = s.Store.NewNode(style)
		}
		if n.Text != nil {
			s.Text.SetText(id, *n.Text)
		}
		s.ids[n.ID] = id
		s.names = append(s.names, n.ID)
	}

	parents := make(map[string]string)
	for _, n := range f.Nodes {
		for _, name := range n.Children {
			if _, ok := s.ids[name]; !ok {
				return nil, fmt.Errorf("node %q: child %q: %w", n.ID, name, ErrUnknownNode)
			}
			if prev, ok := parents[name]; ok {
				return nil, fmt.Errorf("node %q: %w (%q and %q)", name, ErrMultipleParents, prev, n.ID)
			}
			parents[name] = n.ID
		}
	}
	if err := checkCycles(parents); err != nil {
		return nil, err
	}

	for _, n := range f.Nodes {
		if len(n.Children) == 0 {
			continue
		}
		children := make([]layout.NodeID, 0, len(n.Children))
		for _, name := range n.Children {
			children = append(children, s.ids[name])
		}
		s.Store.AttachChildren(s.ids[n.ID], children...)
	}
	return s, nil
}

// checkCycles reports a node that is its own ancestor. A parent chain longer
// than the number of parented nodes must have looped.
func checkCycles(parents map[string]string) error {
	for name := range parents {
		at := name
		for range len(parents) + 1 {
			next, ok := parents[at]
			if !ok {
				break
			}
			if next == name {
				return fmt.Errorf("%w: %q is its own ancestor", ErrCycle, name)
			}
			at = next
		}
	}
	return nil
}

// ID returns the node id for a scene name.
func (s *Scene) ID(name string) (layout.NodeID, bool) {
	id, ok := s.ids[name]
	return id, ok
}

// Name returns the scene name of id, or its "#n" form when it has none.
func (s *Scene) Name(id layout.NodeID) string {
	if int(id) < len(s.names) {
		return s.names[id]
	}
	return id.String()
}

// Roots returns the root nodes in declaration order.
func (s *Scene) Roots() []layout.NodeID {
	return s.Store.Roots()
}
