package layout

import "testing"

// buildTree creates a store holding one tree with the specified branching
// factor and depth. The root is the only parentless node.
// Total nodes = (branching^(depth+1) - 1) / (branching - 1)
func buildTree(branching, depth int) *Store {
	store := NewStore()
	root := newStyled(store, func(s *Style) {
		s.Width = Pixels(1000)
		s.Height = Pixels(1000)
		s.LayoutType = Row
	})

	if depth > 0 {
		addChildrenRecursive(store, root, branching, depth-1)
	}

	return store
}

func addChildrenRecursive(store *Store, parent NodeID, branching, remainingDepth int) {
	children := make([]NodeID, 0, branching)
	for range branching {
		child := newStyled(store, func(s *Style) {
			s.Width = Stretch(1)
			s.Height = Stretch(1)
			s.ColBetween = Pixels(1)
			s.RowBetween = Pixels(1)

			// Alternate direction at each level
			if store.LayoutStyle(parent).LayoutType == Row {
				s.LayoutType = Column
			} else {
				s.LayoutType = Row
			}
		})
		children = append(children, child)

		if remainingDepth > 0 {
			addChildrenRecursive(store, child, branching, remainingDepth-1)
		}
	}
	store.AttachChildren(parent, children...)
}

// buildLinearTree creates a root with n fixed-size children.
func buildLinearTree(n int) *Store {
	store := NewStore()
	root := newStyled(store, func(s *Style) {
		s.Width = Pixels(1000)
		s.Height = Pixels(1000)
		s.LayoutType = Row
	})

	children := make([]NodeID, 0, n)
	for range n {
		children = append(children, newStyled(store, func(s *Style) {
			s.Width = Pixels(10)
			s.Height = Pixels(100)
		}))
	}
	store.AttachChildren(root, children...)

	return store
}

func benchmarkCalculate(b *testing.B, store *Store) {
	tree := NewTree(store.Roots()[0], store)
	b.Logf("Node count: %d", len(tree.Nodes()))

	cache := NewCache()
	viewport := NewRect(0, 0, 1000, 1000)

	// Initial calculation to warm up
	Calculate(tree, store, cache, viewport)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		Calculate(tree, store, cache, viewport)
	}
}

// BenchmarkCalculate_10Nodes: branching=3, depth=2 = 13 nodes
func BenchmarkCalculate_10Nodes(b *testing.B) {
	benchmarkCalculate(b, buildTree(3, 2))
}

// BenchmarkCalculate_100Nodes: branching=4, depth=3 = 85 nodes
func BenchmarkCalculate_100Nodes(b *testing.B) {
	benchmarkCalculate(b, buildTree(4, 3))
}

// BenchmarkCalculate_1000Nodes: branching=10, depth=3 = 1111 nodes
func BenchmarkCalculate_1000Nodes(b *testing.B) {
	benchmarkCalculate(b, buildTree(10, 3))
}

func BenchmarkCalculate_Linear1000(b *testing.B) {
	benchmarkCalculate(b, buildLinearTree(1000))
}

func BenchmarkCalculate_Grid(b *testing.B) {
	store := NewStore()
	root := newStyled(store, func(s *Style) {
		s.LayoutType = Grid
		s.Width = Pixels(1000)
		s.Height = Pixels(1000)
		s.ColBetween = Pixels(2)
		s.RowBetween = Pixels(2)
		for range 10 {
			s.GridCols = append(s.GridCols, Stretch(1))
			s.GridRows = append(s.GridRows, Stretch(1))
		}
	})
	var cells []NodeID
	for i := range 100 {
		cells = append(cells, newStyled(store, func(s *Style) {
			s.RowIndex = i / 10
			s.ColIndex = i % 10
		}))
	}
	store.AttachChildren(root, cells...)

	benchmarkCalculate(b, store)
}

func BenchmarkFlatten_1000Nodes(b *testing.B) {
	store := buildTree(10, 3)
	tree := NewTree(store.Roots()[0], store)

	b.ResetTimer()
	for b.Loop() {
		for range tree.Flatten() {
		}
	}
}

func BenchmarkNewNode(b *testing.B) {
	store := NewStore()
	style := DefaultStyle()

	b.ResetTimer()
	for b.Loop() {
		store.NewNode(style)
	}
}
