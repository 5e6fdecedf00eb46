package vjoy

import "fmt"

// Placement selects how the base graphic is positioned relative to the
// widget's resting center.
type Placement uint8

const (
	PlacementFixed    Placement = iota // base never moves
	PlacementFloating                  // base snaps to the press point until release
	PlacementDynamic                   // base snaps to the press point and chases the pointer
)

func (p Placement) String() string {
	switch p {
	case PlacementFixed:
		return "fixed"
	case PlacementFloating:
		return "floating"
	case PlacementDynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Placement(%d)", uint8(p))
	}
}

// ParsePlacement converts a placement name ("fixed", "floating", "dynamic").
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "fixed":
		return PlacementFixed, nil
	case "floating", "":
		return PlacementFloating, nil
	case "dynamic":
		return PlacementDynamic, nil
	}
	return 0, fmt.Errorf("unknown placement %q", s)
}

// Axis restricts the output delta to a subset of directions.
type Axis uint8

const (
	AxisBoth       Axis = iota // both components pass through
	AxisHorizontal             // vertical component is zeroed
	AxisVertical               // horizontal component is zeroed
)

func (a Axis) String() string {
	switch a {
	case AxisBoth:
		return "both"
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// ParseAxis converts an axis name ("both", "horizontal", "vertical").
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "both", "":
		return AxisBoth, nil
	case "horizontal":
		return AxisHorizontal, nil
	case "vertical":
		return AxisVertical, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// project applies a single axis restriction.
func (a Axis) project(v Vec2) Vec2 {
	switch a {
	case AxisHorizontal:
		v.Y = 0
	case AxisVertical:
		v.X = 0
	}
	return v
}

// Behavior combines a base placement rule with an ordered chain of axis
// restrictions. The zero value is a fixed joystick on both axes.
type Behavior struct {
	Placement Placement
	Axes      []Axis
}

// Project applies every axis restriction in order.
func (b Behavior) Project(v Vec2) Vec2 {
	for _, a := range b.Axes {
		v = a.project(v)
	}
	return v
}

// SkipResetBaseOnNoDrag reports whether the base stays where it last settled
// while no pointer is captured, instead of returning to the resting center.
func (b Behavior) SkipResetBaseOnNoDrag() bool {
	return b.Placement == PlacementDynamic
}

func (b Behavior) String() string {
	s := b.Placement.String()
	for _, a := range b.Axes {
		s += "+" + a.String()
	}
	return s
}

// clone returns a Behavior whose Axes slice is not shared with b.
func (b Behavior) clone() Behavior {
	if b.Axes != nil {
		b.Axes = append([]Axis(nil), b.Axes...)
	}
	return b
}

// baseInput is everything the placement rule looks at for one tick.
type baseInput struct {
	halfSize    Vec2 // half extent of the logical rect
	dragging    bool
	justPressed bool
	base        Vec2 // base offset from the resting center, before this tick
	start       Vec2 // capture start, relative to the resting center
	current     Vec2 // capture position, relative to the resting center
}

// placeBase evaluates the placement rule. It returns the new base offset and
// the shift to apply to the capture's start so the drag origin follows a
// base that was pushed.
func (b Behavior) placeBase(in baseInput) (base, originShift Vec2) {
	switch b.Placement {
	case PlacementFloating:
		if !in.dragging {
			return Vec2{}, Vec2{}
		}
		if in.justPressed {
			return in.start, Vec2{}
		}
		return in.base, Vec2{}

	case PlacementDynamic:
		if !in.dragging {
			return in.base, Vec2{}
		}
		base = in.base
		if in.justPressed {
			base = in.start
		}
		radius := in.halfSize.X
		offset := in.current.Sub(base)
		if d := offset.Len(); d > radius && d > 0 {
			excess := offset.Sub(offset.Scale(radius / d))
			return base.Add(excess), excess
		}
		return base, Vec2{}

	default:
		return Vec2{}, Vec2{}
	}
}
