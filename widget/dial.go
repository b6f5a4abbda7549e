// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Proportions of the dial, relative to its radius unless noted.
const (
	// DialRadiusRatio is the face radius relative to the side of
	// the dial area.
	DialRadiusRatio = 0.45
	// LabelRadiusRatio places the hour labels.
	LabelRadiusRatio = 0.82
	// HourHandRatio is the length of the hour hand.
	HourHandRatio = 0.55
	// MinuteHandRatio is the length of the minute hand.
	MinuteHandRatio = 0.75
	// HourRegionRatio separates the inner region, where a drag
	// moves the hour hand, from the outer ring, where it moves
	// the minute hand.
	HourRegionRatio = 0.6
)

// DragTarget is the hand moved by an in-progress drag.
type DragTarget uint8

const (
	// DragNone is the target between drags.
	DragNone DragTarget = iota
	// DragHour is selected by a drag starting in the inner region.
	DragHour
	// DragMinute is selected by a drag starting on the outer ring.
	DragMinute
)

// Dial is the state of a clock face whose hands are set by
// dragging. The inner region of the face moves the hour hand,
// the outer ring moves the minute hand.
type Dial struct {
	drag   gesture.Drag
	target DragTarget
	side   int
}

// DialRadius returns the face radius for a dial area with the
// given side.
func DialRadius(side float32) float32 {
	return side * DialRadiusRatio
}

// DialAngle maps a fraction of a full turn to a screen angle in
// radians. Fraction 0 points up; the angle grows clockwise.
func DialAngle(frac float32) float32 {
	return frac*2*math.Pi - math.Pi/2
}

// DialPoint returns the point at distance r from center in the
// direction of DialAngle(frac).
func DialPoint(center f32.Point, r, frac float32) f32.Point {
	sin, cos := math.Sincos(float64(DialAngle(frac)))
	return center.Add(f32.Pt(float32(cos), float32(sin)).Mul(r))
}

// TargetAt selects the hand moved by a drag starting at delta
// from the center of a face with the given radius.
func TargetAt(delta f32.Point, radius float32) DragTarget {
	if length(delta) < radius*HourRegionRatio {
		return DragHour
	}
	return DragMinute
}

// PointerAngle returns the clockwise angle of delta from the
// upward axis, normalized to [0, 2π).
func PointerAngle(delta f32.Point) float64 {
	angle := math.Atan2(float64(delta.Y), float64(delta.X)) + math.Pi/2
	return math.Mod(angle+2*math.Pi, 2*math.Pi)
}

// HourAt maps a normalized angle to an hour on the 12 position
// dial.
func HourAt(angle float64) int {
	return int(math.Round(angle/(2*math.Pi)*12)) % 24
}

// MinuteAt maps a normalized angle to a minute.
func MinuteAt(angle float64) int {
	return int(math.Round(angle/(2*math.Pi)*60)) % 60
}

// Target reports the hand being dragged, if any.
func (d *Dial) Target() DragTarget {
	return d.target
}

// Dragging reports whether a hand is being dragged.
func (d *Dial) Dragging() bool {
	return d.target != DragNone
}

// Update processes pointer events and moves the dragged hand of t.
// It reports whether t changed. Pointer positions are relative to the
// area added by the most recent Layout; before the first Layout
// there is no area and no event is applied.
func (d *Dial) Update(gtx layout.Context, t *Time) bool {
	*t = t.Clamp()
	changed := false
	for {
		e, ok := d.drag.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			break
		}
		if d.event(e, t) {
			changed = true
		}
	}
	if changed {
		gtx.Execute(op.InvalidateCmd{})
	}
	return changed
}

// event applies a single drag event. The first event of a drag only
// selects the target.
func (d *Dial) event(e pointer.Event, t *Time) bool {
	switch e.Kind {
	case pointer.Press, pointer.Drag:
		if d.side <= 0 {
			return false
		}
		side := float32(d.side)
		center := f32.Pt(side/2, side/2)
		delta := e.Position.Sub(center)
		switch d.target {
		case DragNone:
			d.target = TargetAt(delta, DialRadius(side))
		case DragHour:
			h := HourAt(PointerAngle(delta))
			changed := t.Hour != h
			t.Hour = h
			return changed
		case DragMinute:
			m := MinuteAt(PointerAngle(delta))
			changed := t.Minute != m
			t.Minute = m
			return changed
		}
	case pointer.Release, pointer.Cancel:
		d.target = DragNone
	}
	return false
}

// Layout processes events and adds the input area of the dial. The
// dial is a square with the side of gtx.Constraints.Min.X.
func (d *Dial) Layout(gtx layout.Context, t *Time) layout.Dimensions {
	d.side = gtx.Constraints.Min.X
	d.Update(gtx, t)
	size := image.Pt(d.side, d.side)
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	d.drag.Add(gtx.Ops)
	return layout.Dimensions{Size: size}
}

func (t DragTarget) String() string {
	switch t {
	case DragNone:
		return "None"
	case DragHour:
		return "Hour"
	case DragMinute:
		return "Minute"
	default:
		panic("invalid DragTarget")
	}
}

func length(p f32.Point) float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}
