package layout

import (
	"fmt"
	"slices"
)

const noNode = ^NodeID(0)

// storeNode is one slot of the Store arena.
type storeNode struct {
	style *Style // nil when the node has no style

	parent      NodeID
	firstChild  NodeID
	nextSibling NodeID

	alive bool
	dirty bool // Needs recalculation
}

// Store is an arena of nodes with parent, first-child and next-sibling
// edges and an optional style per node. It implements Links and
// StyleSource, so a Tree over a Store can be passed straight to Calculate.
//
// Ids are never reused; destroyed slots stay dead.
type Store struct {
	nodes []storeNode
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// NewNode creates a parentless node with the given style.
func (s *Store) NewNode(style Style) NodeID {
	id := s.newNode()
	s.nodes[id].style = &style
	return id
}

// NewNodeWithoutStyle creates a parentless node that has no style record.
func (s *Store) NewNodeWithoutStyle() NodeID {
	return s.newNode()
}

func (s *Store) newNode() NodeID {
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, storeNode{
		parent:      noNode,
		firstChild:  noNode,
		nextSibling: noNode,
		alive:       true,
		dirty:       true, // New nodes need layout
	})
	return id
}

func (s *Store) node(id NodeID) *storeNode {
	if !s.Alive(id) {
		panic(fmt.Sprintf("layout: unknown node %v", id))
	}
	return &s.nodes[id]
}

// Alive reports whether id names a node that has not been destroyed.
func (s *Store) Alive(id NodeID) bool {
	return int(id) < len(s.nodes) && s.nodes[id].alive
}

// Len returns the number of live nodes.
func (s *Store) Len() int {
	n := 0
	for i := range s.nodes {
		if s.nodes[i].alive {
			n++
		}
	}
	return n
}

// AttachChildren makes children the complete child chain of parent in one
// batch: parent's first child is children[0] and each child's next sibling
// is the following entry. Previous children of parent are detached, and
// each child is detached from any other parent first.
//
// AttachChildren panics if children repeats an id or holds parent or one of
// its ancestors, since either would close a cycle. The store is unchanged
// when it panics.
func (s *Store) AttachChildren(parent NodeID, children ...NodeID) {
	s.checkAttach(parent, children)
	p := s.node(parent)
	for child := p.firstChild; child != noNode; {
		c := &s.nodes[child]
		next := c.nextSibling
		c.parent, c.nextSibling = noNode, noNode
		child = next
	}
	p.firstChild = noNode

	for _, child := range children {
		if s.node(child).parent != noNode {
			s.Detach(child)
		}
	}

	for i, child := range children {
		c := s.node(child)
		c.parent = parent
		if i+1 < len(children) {
			c.nextSibling = children[i+1]
		}
		if i == 0 {
			p.firstChild = child
		}
	}
	s.MarkDirty(parent)
}

func (s *Store) checkAttach(parent NodeID, children []NodeID) {
	s.node(parent)
	seen := make(map[NodeID]bool, len(children))
	for _, child := range children {
		s.node(child)
		if seen[child] {
			panic(fmt.Sprintf("layout: node %v attached twice to %v", child, parent))
		}
		seen[child] = true
	}
	for a := parent; a != noNode; a = s.nodes[a].parent {
		if seen[a] {
			panic(fmt.Sprintf("layout: attaching %v under %v would form a cycle", a, parent))
		}
	}
}

// Detach removes id from its parent's child chain. The subtree under id is
// kept and id becomes a root.
func (s *Store) Detach(id NodeID) {
	n := s.node(id)
	if n.parent == noNode {
		return
	}

	p := &s.nodes[n.parent]
	if p.firstChild == id {
		p.firstChild = n.nextSibling
	} else {
		for prev := p.firstChild; prev != noNode; prev = s.nodes[prev].nextSibling {
			if s.nodes[prev].nextSibling == id {
				s.nodes[prev].nextSibling = n.nextSibling
				break
			}
		}
	}

	parent := n.parent
	n.parent, n.nextSibling = noNode, noNode
	n.dirty = true
	s.MarkDirty(parent)
}

// Destroy detaches id and kills it with its whole subtree. It returns the
// destroyed ids in pre-order so the caller can drop their cache entries.
func (s *Store) Destroy(id NodeID) []NodeID {
	s.Detach(id)
	destroyed := NewTree(id, s).Nodes()
	for _, d := range destroyed {
		s.nodes[d] = storeNode{parent: noNode, firstChild: noNode, nextSibling: noNode}
	}
	return destroyed
}

// SetStyle updates the style and marks the node dirty.
func (s *Store) SetStyle(id NodeID, style Style) {
	s.node(id).style = &style
	s.MarkDirty(id)
}

// ClearStyle removes the style record of id.
func (s *Store) ClearStyle(id NodeID) {
	s.node(id).style = nil
	s.MarkDirty(id)
}

// MarkDirty marks this node and all ancestors as needing recalculation.
func (s *Store) MarkDirty(id NodeID) {
	for n := id; n != noNode && !s.nodes[n].dirty; n = s.nodes[n].parent {
		s.nodes[n].dirty = true
	}
}

// IsDirty returns whether this node needs recalculation.
func (s *Store) IsDirty(id NodeID) bool {
	return s.node(id).dirty
}

// ClearDirty clears the dirty flag of every node in the tree rooted at root.
func (s *Store) ClearDirty(root NodeID) {
	for id := range NewTree(root, s).Flatten() {
		s.nodes[id].dirty = false
	}
}

// Roots returns every live parentless node in ascending id order.
func (s *Store) Roots() []NodeID {
	var roots []NodeID
	for i := range s.nodes {
		if s.nodes[i].alive && s.nodes[i].parent == noNode {
			roots = append(roots, NodeID(i))
		}
	}
	return roots
}

// DirtyRoots returns the roots whose trees need layout, in ascending id order.
func (s *Store) DirtyRoots() []NodeID {
	return slices.DeleteFunc(s.Roots(), func(id NodeID) bool {
		return !s.nodes[id].dirty
	})
}

// Children returns the child chain of id as a slice.
func (s *Store) Children(id NodeID) []NodeID {
	return slices.Collect(NewTree(id, s).ChildIter(id))
}

// Parent implements Links.
func (s *Store) Parent(id NodeID) (NodeID, bool) {
	return s.edge(id, func(n *storeNode) NodeID { return n.parent })
}

// FirstChild implements Links.
func (s *Store) FirstChild(id NodeID) (NodeID, bool) {
	return s.edge(id, func(n *storeNode) NodeID { return n.firstChild })
}

// NextSibling implements Links.
func (s *Store) NextSibling(id NodeID) (NodeID, bool) {
	return s.edge(id, func(n *storeNode) NodeID { return n.nextSibling })
}

func (s *Store) edge(id NodeID, field func(*storeNode) NodeID) (NodeID, bool) {
	if !s.Alive(id) {
		return 0, false
	}
	next := field(&s.nodes[id])
	return next, next != noNode
}

// LayoutStyle implements StyleSource. Unknown and destroyed nodes have no style.
func (s *Store) LayoutStyle(id NodeID) *Style {
	if !s.Alive(id) {
		return nil
	}
	return s.nodes[id].style
}
