// internal/defs/range.go
package defs

import (
	"fmt"
	"math"
)

// RangeKind names a targeting shape.
type RangeKind string

const (
	RangeCircular RangeKind = "circular"
	RangePlus     RangeKind = "plus"
	RangeDonut    RangeKind = "donut"
)

// RangeDef is a geometric predicate over offsets measured in cells from the
// tower centre, in the tower's own (rotated) frame.
//
//	circular: distance <= Radius
//	plus:     a bar Inner wide and Outer long along each axis
//	donut:    Inner <= distance <= Outer
type RangeDef struct {
	Kind   RangeKind `json:"kind"`
	Radius float64   `json:"radius,omitempty"`
	Inner  float64   `json:"inner,omitempty"`
	Outer  float64   `json:"outer,omitempty"`
}

// Circular, Plus и Donut: конструкторы для кода и тестов
func Circular(radius float64) RangeDef {
	return RangeDef{Kind: RangeCircular, Radius: radius}
}

func Plus(inner, outer float64) RangeDef {
	return RangeDef{Kind: RangePlus, Inner: inner, Outer: outer}
}

func Donut(inner, outer float64) RangeDef {
	return RangeDef{Kind: RangeDonut, Inner: inner, Outer: outer}
}

// Contains reports whether the offset (x, y), in cells, lies inside the shape.
func (r RangeDef) Contains(x, y float64) bool {
	switch r.Kind {
	case RangeCircular:
		return math.Hypot(x, y) <= r.Radius
	case RangePlus:
		ax, ay := math.Abs(x), math.Abs(y)
		return (ax <= r.Inner && ay <= r.Outer) || (ay <= r.Inner && ax <= r.Outer)
	case RangeDonut:
		d := math.Hypot(x, y)
		return d >= r.Inner && d <= r.Outer
	}
	return false
}

// Reach is the furthest distance, in cells, any point of the shape can be.
func (r RangeDef) Reach() float64 {
	switch r.Kind {
	case RangeCircular:
		return r.Radius
	case RangePlus:
		return math.Hypot(r.Inner, r.Outer)
	case RangeDonut:
		return r.Outer
	}
	return 0
}

func (r RangeDef) validate() error {
	switch r.Kind {
	case RangeCircular:
		if r.Radius < 0 {
			return fmt.Errorf("circular range: negative radius %.2f", r.Radius)
		}
	case RangePlus, RangeDonut:
		if r.Inner < 0 || r.Outer < r.Inner {
			return fmt.Errorf("%s range: need 0 <= inner <= outer, got %.2f/%.2f", r.Kind, r.Inner, r.Outer)
		}
	default:
		return fmt.Errorf("unknown range kind %q", r.Kind)
	}
	return nil
}
