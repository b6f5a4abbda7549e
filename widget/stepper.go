// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
)

// Stepper is the state of the hour and minute stepper controls.
// Values wrap around at either end of their range.
//
// Besides the buttons, the hour and minute values respond to the
// scroll wheel and to vertical drags: dragging up by DragStep
// increases the value by one.
type Stepper struct {
	HourUp, HourDown     giowidget.Clickable
	MinuteUp, MinuteDown giowidget.Clickable
	// DragStep is the drag distance of a single step. Zero means
	// 8dp.
	DragStep unit.Dp

	hour   valueField
	minute valueField
}

// StepField selects the field of a Time moved by a Stepper.
type StepField uint8

const (
	// StepHour is the hour field.
	StepHour StepField = iota
	// StepMinute is the minute field.
	StepMinute
)

// valueField is the input state of a value display.
type valueField struct {
	scroll gesture.Scroll
	drag   gesture.Drag
	// anchor is the drag position of the last applied step.
	anchor float32
}

var scrollRange = pointer.ScrollRange{Min: -1 << 16, Max: 1 << 16}

// Update applies pending clicks, scrolls and drags to t and reports
// whether t changed.
func (s *Stepper) Update(gtx layout.Context, t *Time) bool {
	*t = t.Clamp()
	before := *t
	for s.HourUp.Clicked(gtx) {
		*t = t.IncHour()
	}
	for s.HourDown.Clicked(gtx) {
		*t = t.DecHour()
	}
	for s.MinuteUp.Clicked(gtx) {
		*t = t.IncMinute()
	}
	for s.MinuteDown.Clicked(gtx) {
		*t = t.DecMinute()
	}
	stepDp := s.DragStep
	if stepDp == 0 {
		stepDp = 8
	}
	step := float32(gtx.Dp(stepDp))
	if step < 1 {
		step = 1
	}
	s.hour.update(gtx, step, t, Time.IncHour, Time.DecHour)
	s.minute.update(gtx, step, t, Time.IncMinute, Time.DecMinute)
	return *t != before
}

func (f *valueField) update(gtx layout.Context, step float32, t *Time, inc, dec func(Time) Time) {
	// Scrolling down decreases the value.
	if d := f.scroll.Update(gtx.Metric, gtx.Source, gtx.Now, gesture.Vertical, scrollRange, scrollRange); d > 0 {
		*t = dec(*t)
	} else if d < 0 {
		*t = inc(*t)
	}
	for {
		e, ok := f.drag.Update(gtx.Metric, gtx.Source, gesture.Vertical)
		if !ok {
			break
		}
		switch e.Kind {
		case pointer.Press:
			f.anchor = e.Position.Y
		case pointer.Drag:
			for e.Position.Y <= f.anchor-step {
				*t = inc(*t)
				f.anchor -= step
			}
			for e.Position.Y >= f.anchor+step {
				*t = dec(*t)
				f.anchor += step
			}
		}
	}
}

// LayoutValue lays out the value display w of field and makes it
// respond to the scroll wheel and to drags.
func (s *Stepper) LayoutValue(gtx layout.Context, field StepField, w layout.Widget) layout.Dimensions {
	dims := w(gtx)
	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	f := &s.hour
	if field == StepMinute {
		f = &s.minute
	}
	f.scroll.Add(gtx.Ops)
	f.drag.Add(gtx.Ops)
	return dims
}
