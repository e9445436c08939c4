package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/morph/pkg/layout"
)

// Spec is a layout value as written in a scene file. Numbers and strings
// are both accepted, so `width = 10` and `width = "10px"` mean the same.
type Spec string

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Spec) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*s = Spec(v)
	case int64:
		*s = Spec(strconv.FormatInt(v, 10))
	case float64:
		*s = Spec(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		return fmt.Errorf("%w: %v", ErrInvalidValue, v)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Spec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d is not a scalar", ErrInvalidValue, n.Line)
	}
	*s = Spec(n.Value)
	return nil
}

// ParseValue parses a value string:
//
//	auto          Auto (also the empty string)
//	10px, 10      Pixels
//	50%           Percent
//	2s, 2stretch  Stretch
func ParseValue(s string) (layout.Value, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "auto" {
		return layout.Auto(), nil
	}

	unit := layout.UnitPixels
	num, suffixed := s, true
	switch {
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		unit, num = layout.UnitPercent, strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "stretch"):
		unit, num = layout.UnitStretch, strings.TrimSuffix(s, "stretch")
	case strings.HasSuffix(s, "s"):
		unit, num = layout.UnitStretch, strings.TrimSuffix(s, "s")
	default:
		suffixed = false
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(num), 32)
	if err != nil {
		// A bare word like "10em" names a unit we do not know.
		if !suffixed && strings.TrimLeft(num, "+-.0123456789eE") != "" {
			return layout.Value{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
		}
		return layout.Value{}, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return layout.Value{}, fmt.Errorf("%w: %q is not finite", ErrInvalidValue, s)
	}
	return layout.Value{Amount: float32(amount), Unit: unit}, nil
}

// ParseLayoutType parses "column" (the default), "row" or "grid".
func ParseLayoutType(s string) (layout.LayoutType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "column", "col":
		return layout.Column, nil
	case "row":
		return layout.Row, nil
	case "grid":
		return layout.Grid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
	}
}

// ParsePositionType parses "parent" (the default) or "self".
func ParsePositionType(s string) (layout.PositionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "parent":
		return layout.ParentDirected, nil
	case "self":
		return layout.SelfDirected, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPosition, s)
	}
}
