package layout

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// StyleSource looks up the style of a node.
type StyleSource interface {
	// LayoutStyle returns the node's style, or nil when the node has none.
	// A node without a style is laid out as a zero-sized box at its
	// parent's origin.
	LayoutStyle(id NodeID) *Style
}

// ContentSizer measures the intrinsic content of a node, such as text.
// It is consulted for nodes with an Auto width or height.
type ContentSizer interface {
	// ContentSize returns the natural size of the node's content when it
	// may grow up to max (either extent can be +Inf). ok is false for nodes
	// without measurable content.
	ContentSize(id NodeID, max Size) (size Size, ok bool)
}

// Option configures a Calculate call.
type Option func(*solver)

// WithContentSizer sets the provider used to size Auto nodes with content.
func WithContentSizer(sizer ContentSizer) Option {
	return func(s *solver) {
		s.sizer = sizer
	}
}

// WithLogger sets the logger that receives a debug record per pass.
func WithLogger(logger *log.Logger) Option {
	return func(s *solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

var discard = log.New(io.Discard)

// solver holds the inputs of one Calculate call.
type solver struct {
	tree   *Tree
	styles StyleSource
	cache  *Cache
	sizer  ContentSizer
	logger *log.Logger
}

var axes = [2]axis{horizontal, vertical}

// Calculate lays out the tree and stores a Rect for every node in cache.
//
// The root is placed inside viewport (typically {0, 0, width, height}).
// Every node reachable from the root is registered in the cache and its
// intermediates are reset, so no state carries over between passes.
//
// The pass has two walks. Measurement visits nodes children-first and
// records each node's own size and the aggregate size of its children.
// Placement visits nodes parents-first and resolves every child's edges,
// size and position inside the parent's content area.
//
// Calculate does not synchronize: independent roots may be laid out in
// parallel only with distinct caches.
func Calculate(tree *Tree, styles StyleSource, cache *Cache, viewport Rect, opts ...Option) {
	if tree == nil || styles == nil || cache == nil {
		return
	}

	s := &solver{
		tree:   tree,
		styles: styles,
		cache:  cache,
		logger: discard,
	}
	for _, opt := range opts {
		opt(s)
	}

	start := time.Now()

	// The flattened order is walked three times; collect it once.
	nodes := tree.Nodes()
	for _, id := range nodes {
		cache.Register(id)
		cache.Reset(id)
	}

	for i := len(nodes) - 1; i >= 0; i-- {
		s.measure(nodes[i])
	}

	s.placeRoot(tree.Root(), viewport)
	for _, id := range nodes {
		s.placeChildren(id)
	}

	s.logger.Debug("layout pass",
		"root", tree.Root(),
		"nodes", len(nodes),
		"rect", cache.Rect(tree.Root()),
		"elapsed", time.Since(start))
}

// ContentConstraint returns the largest extent content may use along one
// axis: a pixel max wins, then a pixel min, then a pixel size without
// clamps. Anything else is unbounded (+Inf).
func ContentConstraint(minVal, size, maxVal Value) float32 {
	switch {
	case maxVal.IsPixels():
		return maxVal.amount()
	case minVal.IsPixels():
		return minVal.amount()
	case size.IsPixels() && minVal.IsAuto() && maxVal.IsAuto():
		return size.amount()
	default:
		return infinity
	}
}

// flowChildren returns the children of id that take part in its stack or
// grid, in chain order.
func (s *solver) flowChildren(id NodeID) []NodeID {
	var flow []NodeID
	for child := range s.tree.ChildIter(id) {
		style := s.styles.LayoutStyle(child)
		if style == nil || style.PositionType == SelfDirected {
			continue
		}
		flow = append(flow, child)
	}
	return flow
}

// edge returns the leading or trailing edge constraint of child along a,
// with Auto replaced by the parent's default for the child's position.
func (s *solver) edge(parent *Style, child NodeID, style *Style, a axis, trailing bool) constraint {
	c := style.before(a)
	if trailing {
		c = style.after(a)
	}
	if c.value.IsAuto() {
		c.value = s.autoEdge(parent, child, style, a, trailing)
	}
	return c
}

func (s *solver) autoEdge(parent *Style, child NodeID, style *Style, a axis, trailing bool) Value {
	if parent == nil {
		return Pixels(0)
	}
	inset := parent.childBefore(a)
	if trailing {
		inset = parent.childAfter(a)
	}
	if style.PositionType == SelfDirected {
		return orZero(inset)
	}

	main, ok := parent.LayoutType.mainAxis()
	switch {
	case !ok:
		return Pixels(0)
	case a != main:
		return orZero(inset)
	case !trailing && s.cache.StackFirstChild(child):
		return orZero(inset)
	case !trailing:
		return orZero(parent.between(a))
	case s.cache.StackLastChild(child):
		return orZero(inset)
	default:
		return Pixels(0)
	}
}

// size returns the size constraint of id along a. An Auto size becomes
// Stretch(1) when measurement resolved it to fill, and the measured pixels
// otherwise.
func (s *solver) size(id NodeID, style *Style, a axis) constraint {
	c := style.size(a)
	if !c.value.IsAuto() {
		return c
	}
	if s.cache.autoFill(id, a) {
		c.value = Stretch(1)
	} else {
		c.value = Pixels(s.cache.Size(id).along(a))
	}
	return c
}

// hugs reports whether the Auto size of id along a was resolved from its
// content. Percentages inside such a box resolve against 0.
func (s *solver) hugs(id NodeID, style *Style, a axis) bool {
	return style.size(a).value.IsAuto() && !s.cache.autoFill(id, a)
}

func orZero(v Value) Value {
	if v.IsAuto() {
		return Pixels(0)
	}
	return v
}

func pixelMin(v Value) float32 {
	if v.IsPixels() {
		return v.amount()
	}
	return 0
}

func pixelMax(v Value) float32 {
	if v.IsPixels() {
		return v.amount()
	}
	return infinity
}
