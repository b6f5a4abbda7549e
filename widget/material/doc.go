// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws the time picker widgets in the Material
// design of gioui.org/widget/material.
//
// As in Gio, each control is split into the stateful widget and the
// stateless drawing of it. A widget.TimePicker holds the picked time
// and the open state, while TimePickerStyle draws it with a Theme:
//
//	var picker = widget.NewTimePicker(widget.DefaultTime)
//
//	style := material.TimePicker(th, picker)
//	style.Layout(gtx) // the HH:MM summary button
//	...
//	style.LayoutOverlay(gtx) // last, with the window constraints
//
// The overlay is a separate call because Gio widgets cannot know where
// the window is; the program lays it out over everything else so that
// it stays centered in the window.
//
// Clock draws the same dial and steppers inline, without the summary
// button and overlay.
package material
