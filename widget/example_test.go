// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"fmt"
	"image"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/clockwork-ui/timepicker/widget"
)

func ExampleDial_Layout() {
	var (
		r    input.Router
		dial widget.Dial
		t    = widget.NewTime(8, 0)
	)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(200, 200)),
		Source:      r.Source(),
	}
	// The first layout and call to Frame declare the dial's input
	// area to the router.
	dial.Layout(gtx, &t)
	r.Frame(gtx.Ops)

	// Grab the outer ring at the top and drag the minute hand to
	// 6 o'clock.
	r.Queue(
		pointer.Event{
			Source:   pointer.Mouse,
			Buttons:  pointer.ButtonPrimary,
			Kind:     pointer.Press,
			Position: f32.Pt(100, 20),
		},
		pointer.Event{
			Source:   pointer.Mouse,
			Buttons:  pointer.ButtonPrimary,
			Kind:     pointer.Move,
			Position: f32.Pt(100, 180),
		},
	)
	dial.Update(gtx, &t)
	fmt.Println(dial.Target(), t)

	// Output:
	// Minute 08:30
}
