package layout

import (
	"iter"
	"slices"
	"strconv"
)

// NodeID identifies a node in an externally owned hierarchy.
// It is an arena index; the layout engine never dereferences it.
type NodeID uint32

// String formats the id as "#n".
func (id NodeID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// Links is the interface over the hierarchy the engine lays out.
// Each lookup reports false when the edge does not exist; absence is a
// normal shape signal, never an error.
type Links interface {
	// Parent returns the node's parent.
	Parent(id NodeID) (NodeID, bool)

	// FirstChild returns the first entry of the node's child chain.
	FirstChild(id NodeID) (NodeID, bool)

	// NextSibling returns the node that follows id in its parent's child chain.
	NextSibling(id NodeID) (NodeID, bool)
}

// Tree binds a root to the Links of the store that owns it.
//
// The tree must be acyclic and every node must be reachable from the root
// through FirstChild and NextSibling edges. A cycle makes Flatten run
// forever; it is not detected.
type Tree struct {
	root  NodeID
	links Links
}

// NewTree creates a Tree rooted at root.
func NewTree(root NodeID, links Links) *Tree {
	return &Tree{root: root, links: links}
}

// Root returns the tree's root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Flatten yields every node of the tree in pre-order without an explicit
// stack: descend to the first child when there is one, otherwise climb
// until an ancestor has a next sibling. The climb stops at the root, so
// siblings of a subtree root are never visited.
//
// Each range over the returned sequence walks the links again.
func (t *Tree) Flatten() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		cur, ok := t.root, true
		for ok {
			if !yield(cur) {
				return
			}
			cur, ok = t.next(cur)
		}
	}
}

func (t *Tree) next(id NodeID) (NodeID, bool) {
	if child, ok := t.links.FirstChild(id); ok {
		return child, true
	}
	for id != t.root {
		if sibling, ok := t.links.NextSibling(id); ok {
			return sibling, true
		}
		parent, ok := t.links.Parent(id)
		if !ok {
			return 0, false
		}
		id = parent
	}
	return 0, false
}

// Nodes returns the flattened pre-order as a slice.
func (t *Tree) Nodes() []NodeID {
	return slices.Collect(t.Flatten())
}

// DownIter iterates the tree in pre-order: every parent before its children.
func (t *Tree) DownIter() iter.Seq[NodeID] {
	return t.Flatten()
}

// UpIter iterates the exact reverse of DownIter, so every descendant comes
// before its ancestors.
func (t *Tree) UpIter() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, id := range slices.Backward(t.Nodes()) {
			if !yield(id) {
				return
			}
		}
	}
}

// ChildIter iterates the immediate children of id in chain order.
func (t *Tree) ChildIter(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		child, ok := t.links.FirstChild(id)
		for ok {
			if !yield(child) {
				return
			}
			child, ok = t.links.NextSibling(child)
		}
	}
}

// Parent returns the parent of id, or false for a parentless node.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	return t.links.Parent(id)
}

// IsFirstChild reports whether id heads its parent's child chain.
// It is false for nodes without a parent.
func (t *Tree) IsFirstChild(id NodeID) bool {
	parent, ok := t.links.Parent(id)
	if !ok {
		return false
	}
	first, ok := t.links.FirstChild(parent)
	return ok && first == id
}

// IsLastChild reports whether id ends its parent's child chain.
// It is false for nodes without a parent and for nodes missing from the
// chain of the parent they claim.
func (t *Tree) IsLastChild(id NodeID) bool {
	parent, ok := t.links.Parent(id)
	if !ok {
		return false
	}
	last, found := NodeID(0), false
	for child := range t.ChildIter(parent) {
		last, found = child, true
	}
	return found && last == id
}
