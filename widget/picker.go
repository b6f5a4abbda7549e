// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	giowidget "gioui.org/widget"
)

// TimePicker is the state of a time editor that shows its value
// on a summary button and edits it in an overlay. Edits apply
// to Time immediately; closing the overlay keeps them.
type TimePicker struct {
	Time Time
	// Summary opens the overlay when clicked.
	Summary giowidget.Clickable
	// Confirm closes the overlay when clicked.
	Confirm giowidget.Clickable
	Dial    Dial
	Stepper Stepper

	open bool
}

// Clock is the state of an always visible time editor with a dial
// and steppers.
type Clock struct {
	Time    Time
	Dial    Dial
	Stepper Stepper
}

// NewTimePicker returns a closed picker set to t.
func NewTimePicker(t Time) *TimePicker {
	return &TimePicker{Time: NewTime(t.Hour, t.Minute)}
}

// Value returns the hour and minute of the picker.
func (p *TimePicker) Value() (hour, minute int) {
	return p.Time.Value()
}

// Opened reports whether the overlay is shown.
func (p *TimePicker) Opened() bool {
	return p.open
}

// Open shows the overlay.
func (p *TimePicker) Open() {
	p.open = true
}

// Close hides the overlay.
func (p *TimePicker) Close() {
	p.open = false
}

// Update processes the summary and confirm clicks and reports
// whether the summary was clicked since the last call.
func (p *TimePicker) Update(gtx layout.Context) bool {
	p.Time = p.Time.Clamp()
	clicked := false
	for p.Summary.Clicked(gtx) {
		clicked = true
		p.open = true
	}
	for p.Confirm.Clicked(gtx) {
		p.open = false
	}
	return clicked
}

// LayoutScrim makes the current clip area consume pointer input
// while the overlay is shown.
func (p *TimePicker) LayoutScrim(gtx layout.Context) {
	for {
		_, ok := gtx.Event(pointer.Filter{
			Target: p,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
	}
	event.Op(gtx.Ops, p)
}

// Value returns the hour and minute of the clock.
func (c *Clock) Value() (hour, minute int) {
	return c.Time.Value()
}
