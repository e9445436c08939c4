package layout

import "math"

var infinity = float32(math.Inf(1))

// flexItem is one participant in free space distribution: a leading edge,
// a size, or a trailing edge of some child, or a grid track.
// It is stack-allocated per layout call, not stored in the cache.
type flexItem struct {
	value  float32 // fixed pixels, or the share once distributed
	weight float32 // > 0 for stretch items
	min    float32
	max    float32
	frozen bool
}

// newFlexItem resolves v against basis. Stretch values become weighted
// items; everything else is fixed and clamped right away. Auto must have
// been replaced by the caller.
func newFlexItem(c constraint, basis float32) flexItem {
	item := flexItem{
		min: c.min.Resolve(basis, 0),
		max: c.max.Resolve(basis, infinity),
	}
	if w := c.value.weight(); w > 0 {
		item.weight = w
		return item
	}
	item.value = clamp(c.value.Resolve(basis, 0), item.min, item.max)
	return item
}

func (f flexItem) stretch() bool {
	return f.weight > 0 && !f.frozen
}

// distribute shares space between the items. Fixed items keep their value.
// Stretch items split what is left in proportion to their weight; an item
// whose share breaks its min or max is frozen at that bound and the rest is
// shared again until no item moves. It returns the free space before
// distribution and the total stretch weight.
func distribute(items []flexItem, space float32) (free, weights float32) {
	free, weights = remaining(items, space)
	for {
		left, total := remaining(items, space)
		if total == 0 {
			return free, weights
		}
		left = max(0, left)

		violated := false
		for i := range items {
			if !items[i].stretch() {
				continue
			}
			share := left * items[i].weight / total
			bounded := clamp(share, items[i].min, items[i].max)
			if bounded != share {
				items[i].value = bounded
				items[i].frozen = true
				violated = true
			}
		}
		if violated {
			continue
		}

		for i := range items {
			if items[i].stretch() {
				items[i].value = left * items[i].weight / total
				items[i].frozen = true
			}
		}
		return free, weights
	}
}

// remaining returns space minus every fixed or frozen item, and the weight
// of the items still stretching.
func remaining(items []flexItem, space float32) (left, weights float32) {
	left = space
	for _, item := range items {
		if item.stretch() {
			weights += item.weight
			continue
		}
		left -= item.value
	}
	return left, weights
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
