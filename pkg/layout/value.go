package layout

import (
	"math"
	"strconv"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Determined by content or the parent's defaults
	UnitPixels              // Absolute logical pixels
	UnitPercent             // Percentage of the parent's content area
	UnitStretch             // Weighted share of the free space
)

// Value is a single layout constraint: a size, an edge offset, a gap or a
// grid track.
type Value struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Value that is computed from content or parent defaults.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Pixels returns a Value representing an absolute number of logical pixels.
func Pixels(v float32) Value {
	return Value{Amount: v, Unit: UnitPixels}
}

// Percent returns a Value representing a percentage of the parent's content area.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Stretch returns a Value that takes a share of the free space proportional
// to w relative to its stretch siblings.
func Stretch(w float32) Value {
	return Value{Amount: w, Unit: UnitStretch}
}

// Resolve computes the pixel value given the parent's size.
// For UnitAuto and UnitStretch, returns the fallback value.
func (v Value) Resolve(parent, fallback float32) float32 {
	switch v.Unit {
	case UnitPixels:
		return v.amount()
	case UnitPercent:
		return parent * v.amount() / 100.0
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content or defaults.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsPixels returns true if this value is an absolute pixel amount.
func (v Value) IsPixels() bool {
	return v.Unit == UnitPixels
}

// amount is the Amount of v with NaN and infinities read as 0, so no
// resolved size or offset can leave the finite range.
func (v Value) amount() float32 {
	if f := float64(v.Amount); math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return v.Amount
}

// weight is the stretch factor of v. Negative and non-finite factors count as 0.
func (v Value) weight() float32 {
	if w := v.amount(); v.Unit == UnitStretch && w > 0 {
		return w
	}
	return 0
}

// String formats the value the way scene files spell it.
func (v Value) String() string {
	f := strconv.FormatFloat(float64(v.Amount), 'g', -1, 32)
	switch v.Unit {
	case UnitPixels:
		return f + "px"
	case UnitPercent:
		return f + "%"
	case UnitStretch:
		return f + "s"
	default:
		return "auto"
	}
}
