package layout

import "fmt"

// entry is the per-node scratch and output record.
type entry struct {
	// Computed output
	rect Rect

	// Intermediate values, overwritten every pass
	space Space
	size  Size

	childWidthMax  float32
	childWidthSum  float32
	childHeightMax float32
	childHeightSum float32

	gridRowMax float32
	gridColMax float32

	horizontalFreeSpace  float32
	horizontalStretchSum float32
	verticalFreeSpace    float32
	verticalStretchSum   float32

	stackFirstChild bool
	stackLastChild  bool

	// Auto sizes that resolved to fill instead of content
	autoWidth  bool
	autoHeight bool
}

// Cache stores layout results and per-pass intermediates keyed by node.
//
// A node must be registered before any getter or setter is used on it;
// Calculate registers every node it visits. Accessing an unregistered node
// is a contract violation and panics.
//
// Entries outlive a pass so the host can read rects later. The engine never
// removes entries; call Remove when a node is destroyed.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	entries map[NodeID]*entry
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[NodeID]*entry)}
}

// Register inserts a default entry for id. Registering a known node keeps
// its entry.
func (c *Cache) Register(id NodeID) {
	if _, ok := c.entries[id]; !ok {
		c.entries[id] = &entry{}
	}
}

// Registered reports whether id has an entry.
func (c *Cache) Registered(id NodeID) bool {
	_, ok := c.entries[id]
	return ok
}

// Remove drops the entry for id.
func (c *Cache) Remove(id NodeID) {
	delete(c.entries, id)
}

// Len returns the number of registered nodes.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Reset zeroes every intermediate value of id. The rect is kept.
func (c *Cache) Reset(id NodeID) {
	e := c.get(id)
	*e = entry{rect: e.rect}
}

func (c *Cache) get(id NodeID) *entry {
	e, ok := c.entries[id]
	if !ok {
		panic(fmt.Sprintf("layout: cache access to unregistered node %v", id))
	}
	return e
}

// Rect returns the placed rectangle of id.
func (c *Cache) Rect(id NodeID) Rect          { return c.get(id).rect }
func (c *Cache) SetRect(id NodeID, r Rect)    { c.get(id).rect = r }
func (c *Cache) PosX(id NodeID) float32       { return c.get(id).rect.PosX }
func (c *Cache) PosY(id NodeID) float32       { return c.get(id).rect.PosY }
func (c *Cache) Width(id NodeID) float32      { return c.get(id).rect.Width }
func (c *Cache) Height(id NodeID) float32     { return c.get(id).rect.Height }
func (c *Cache) SetPosX(id NodeID, v float32) { c.get(id).rect.PosX = v }
func (c *Cache) SetPosY(id NodeID, v float32) { c.get(id).rect.PosY = v }
func (c *Cache) SetWidth(id NodeID, v float32) {
	c.get(id).rect.Width = v
}
func (c *Cache) SetHeight(id NodeID, v float32) {
	c.get(id).rect.Height = v
}

// Space returns the resolved edge offsets of id.
func (c *Cache) Space(id NodeID) Space       { return c.get(id).space }
func (c *Cache) SetSpace(id NodeID, s Space) { c.get(id).space = s }
func (c *Cache) Left(id NodeID) float32      { return c.get(id).space.Left }
func (c *Cache) Right(id NodeID) float32     { return c.get(id).space.Right }
func (c *Cache) Top(id NodeID) float32       { return c.get(id).space.Top }
func (c *Cache) Bottom(id NodeID) float32    { return c.get(id).space.Bottom }

// Size returns the measured size of id. It is only meaningful between the
// measurement and placement passes; read Rect for final values.
func (c *Cache) Size(id NodeID) Size       { return c.get(id).size }
func (c *Cache) SetSize(id NodeID, s Size) { c.get(id).size = s }

// Child aggregates collected during measurement.
func (c *Cache) ChildWidthMax(id NodeID) float32  { return c.get(id).childWidthMax }
func (c *Cache) ChildWidthSum(id NodeID) float32  { return c.get(id).childWidthSum }
func (c *Cache) ChildHeightMax(id NodeID) float32 { return c.get(id).childHeightMax }
func (c *Cache) ChildHeightSum(id NodeID) float32 { return c.get(id).childHeightSum }

func (c *Cache) SetChildWidthMax(id NodeID, v float32)  { c.get(id).childWidthMax = v }
func (c *Cache) SetChildWidthSum(id NodeID, v float32)  { c.get(id).childWidthSum = v }
func (c *Cache) SetChildHeightMax(id NodeID, v float32) { c.get(id).childHeightMax = v }
func (c *Cache) SetChildHeightSum(id NodeID, v float32) { c.get(id).childHeightSum = v }

// GridRowMax and GridColMax hold the fixed extent of a grid's tracks and gaps.
func (c *Cache) GridRowMax(id NodeID) float32        { return c.get(id).gridRowMax }
func (c *Cache) GridColMax(id NodeID) float32        { return c.get(id).gridColMax }
func (c *Cache) SetGridRowMax(id NodeID, v float32) { c.get(id).gridRowMax = v }
func (c *Cache) SetGridColMax(id NodeID, v float32) { c.get(id).gridColMax = v }

// Free space and stretch totals along a container's main axis.
func (c *Cache) HorizontalFreeSpace(id NodeID) float32  { return c.get(id).horizontalFreeSpace }
func (c *Cache) HorizontalStretchSum(id NodeID) float32 { return c.get(id).horizontalStretchSum }
func (c *Cache) VerticalFreeSpace(id NodeID) float32    { return c.get(id).verticalFreeSpace }
func (c *Cache) VerticalStretchSum(id NodeID) float32   { return c.get(id).verticalStretchSum }

func (c *Cache) SetHorizontalFreeSpace(id NodeID, v float32) {
	c.get(id).horizontalFreeSpace = v
}
func (c *Cache) SetHorizontalStretchSum(id NodeID, v float32) {
	c.get(id).horizontalStretchSum = v
}
func (c *Cache) SetVerticalFreeSpace(id NodeID, v float32) {
	c.get(id).verticalFreeSpace = v
}
func (c *Cache) SetVerticalStretchSum(id NodeID, v float32) {
	c.get(id).verticalStretchSum = v
}

// StackFirstChild reports whether id is the first in-flow child of its
// parent. Its leading Auto edge takes the parent's child inset instead of
// the between gap.
func (c *Cache) StackFirstChild(id NodeID) bool        { return c.get(id).stackFirstChild }
func (c *Cache) SetStackFirstChild(id NodeID, v bool) { c.get(id).stackFirstChild = v }

// StackLastChild reports whether id is the last in-flow child of its parent.
func (c *Cache) StackLastChild(id NodeID) bool        { return c.get(id).stackLastChild }
func (c *Cache) SetStackLastChild(id NodeID, v bool) { c.get(id).stackLastChild = v }

// AutoWidth reports whether an Auto width resolved to fill during measurement.
func (c *Cache) AutoWidth(id NodeID) bool         { return c.get(id).autoWidth }
func (c *Cache) AutoHeight(id NodeID) bool        { return c.get(id).autoHeight }
func (c *Cache) SetAutoWidth(id NodeID, v bool)  { c.get(id).autoWidth = v }
func (c *Cache) SetAutoHeight(id NodeID, v bool) { c.get(id).autoHeight = v }

// childSum and childMax pick the aggregate along a.
func (c *Cache) childSum(id NodeID, a axis) float32 {
	if a == horizontal {
		return c.ChildWidthSum(id)
	}
	return c.ChildHeightSum(id)
}

func (c *Cache) childMax(id NodeID, a axis) float32 {
	if a == horizontal {
		return c.ChildWidthMax(id)
	}
	return c.ChildHeightMax(id)
}

func (c *Cache) autoFill(id NodeID, a axis) bool {
	if a == horizontal {
		return c.AutoWidth(id)
	}
	return c.AutoHeight(id)
}

func (c *Cache) setAutoFill(id NodeID, a axis, v bool) {
	if a == horizontal {
		c.SetAutoWidth(id, v)
		return
	}
	c.SetAutoHeight(id, v)
}

func (c *Cache) setFreeSpace(id NodeID, a axis, free, stretch float32) {
	if a == horizontal {
		c.SetHorizontalFreeSpace(id, free)
		c.SetHorizontalStretchSum(id, stretch)
		return
	}
	c.SetVerticalFreeSpace(id, free)
	c.SetVerticalStretchSum(id, stretch)
}
