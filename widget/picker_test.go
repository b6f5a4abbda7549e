// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"testing"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	giowidget "gioui.org/widget"

	"github.com/clockwork-ui/timepicker/widget"
)

func click(r *input.Router, pos f32.Point) {
	r.Queue(
		pointer.Event{
			Source:   pointer.Mouse,
			Buttons:  pointer.ButtonPrimary,
			Kind:     pointer.Press,
			Position: pos,
		},
		pointer.Event{
			Source:   pointer.Mouse,
			Buttons:  pointer.ButtonPrimary,
			Kind:     pointer.Release,
			Position: pos,
		},
	)
}

func sizedBox(w, h int) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: image.Pt(w, h)}
	}
}

func TestTimePickerOpenClose(t *testing.T) {
	var r input.Router
	p := widget.NewTimePicker(widget.DefaultTime)
	gtx := layout.Context{
		Ops:    new(op.Ops),
		Source: r.Source(),
	}
	summaryClicks := 0
	// The summary button is at the top, the confirm button below it.
	frame := func() {
		gtx.Ops.Reset()
		if p.Update(gtx) {
			summaryClicks++
		}
		p.Summary.Layout(gtx, sizedBox(100, 50))
		off := op.Offset(image.Pt(0, 100)).Push(gtx.Ops)
		p.Confirm.Layout(gtx, sizedBox(100, 50))
		off.Pop()
		r.Frame(gtx.Ops)
	}
	frame()
	frame()
	if summaryClicks != 0 || p.Opened() {
		t.Fatalf("picker reacted without input: clicks=%d open=%v", summaryClicks, p.Opened())
	}

	click(&r, f32.Pt(50, 25))
	frame()
	frame()
	if summaryClicks != 1 {
		t.Errorf("summary click reported %d times, want 1", summaryClicks)
	}
	if !p.Opened() {
		t.Error("summary click did not open the picker")
	}

	// Clicking the summary again keeps the picker open.
	click(&r, f32.Pt(50, 25))
	frame()
	frame()
	if summaryClicks != 2 {
		t.Errorf("second summary click reported %d clicks in total, want 2", summaryClicks)
	}
	if !p.Opened() {
		t.Error("second summary click closed the picker")
	}

	click(&r, f32.Pt(50, 125))
	frame()
	frame()
	if summaryClicks != 2 {
		t.Errorf("confirm click reported as a summary click")
	}
	if p.Opened() {
		t.Error("confirm click did not close the picker")
	}
	if h, m := p.Value(); h != 12 || m != 0 {
		t.Errorf("open and close changed the time to %02d:%02d", h, m)
	}
}

func TestTimePickerScrim(t *testing.T) {
	var (
		r     input.Router
		under giowidget.Clickable
	)
	p := widget.NewTimePicker(widget.DefaultTime)
	gtx := layout.Context{
		Ops:    new(op.Ops),
		Source: r.Source(),
	}
	clicks := 0
	frame := func() {
		gtx.Ops.Reset()
		for under.Clicked(gtx) {
			clicks++
		}
		under.Layout(gtx, sizedBox(100, 100))
		if p.Opened() {
			area := clip.Rect{Max: image.Pt(200, 200)}.Push(gtx.Ops)
			p.LayoutScrim(gtx)
			area.Pop()
		}
		r.Frame(gtx.Ops)
	}

	p.Open()
	frame()
	click(&r, f32.Pt(50, 50))
	frame()
	frame()
	if clicks != 0 {
		t.Errorf("%d clicks passed through the scrim", clicks)
	}

	p.Close()
	frame()
	click(&r, f32.Pt(50, 50))
	frame()
	frame()
	if clicks != 1 {
		t.Errorf("got %d clicks without the scrim, want 1", clicks)
	}
}

func TestTimePickerClampsFields(t *testing.T) {
	p := widget.NewTimePicker(widget.NewTime(30, 99))
	if got := p.Time; got != (widget.Time{Hour: 23, Minute: 59}) {
		t.Errorf("picker time not clamped: %v", got)
	}
	p.Time = widget.Time{Hour: 30, Minute: -4}
	if h, m := p.Value(); h != 23 || m != 0 {
		t.Errorf("Value of an out of range time is %d:%d, want 23:0", h, m)
	}
	p.Update(layout.Context{Ops: new(op.Ops)})
	if got := p.Time; got != (widget.Time{Hour: 23}) {
		t.Errorf("Update left the time at %v", got)
	}
}

func TestTimePickerOpenIsSticky(t *testing.T) {
	p := widget.NewTimePicker(widget.NewTime(7, 30))
	p.Open()
	p.Open()
	if !p.Opened() {
		t.Error("picker closed by a second Open")
	}
	p.Close()
	if p.Opened() {
		t.Error("Close left the picker open")
	}
	if got := p.Time; got != (widget.Time{Hour: 7, Minute: 30}) {
		t.Errorf("open and close changed the time to %v", got)
	}
}

func TestDialDrag(t *testing.T) {
	var (
		r  input.Router
		d  widget.Dial
		tm = widget.DefaultTime
	)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(200, 200)),
		Source:      r.Source(),
	}
	frame := func() {
		gtx.Ops.Reset()
		d.Layout(gtx, &tm)
		r.Frame(gtx.Ops)
	}
	frame()
	// Press near the center to pick the hour hand and drag to
	// 3 o'clock.
	r.Queue(
		pointer.Event{
			Source:   pointer.Mouse,
			Buttons:  pointer.ButtonPrimary,
			Kind:     pointer.Press,
			Position: f32.Pt(100, 90),
		},
		pointer.Event{
			Source:   pointer.Mouse,
			Buttons:  pointer.ButtonPrimary,
			Kind:     pointer.Move,
			Position: f32.Pt(150, 100),
		},
	)
	if !d.Update(gtx, &tm) {
		t.Error("drag did not change the time")
	}
	if got := d.Target(); got != widget.DragHour {
		t.Errorf("target is %v during the drag, want Hour", got)
	}
	if tm != (widget.Time{Hour: 3}) {
		t.Errorf("drag set %v, want 03:00", tm)
	}
	r.Queue(pointer.Event{
		Source:   pointer.Mouse,
		Kind:     pointer.Release,
		Position: f32.Pt(150, 100),
	})
	d.Update(gtx, &tm)
	if d.Dragging() {
		t.Errorf("target %v left after release", d.Target())
	}
	if h, m := tm.Value(); h != 3 || m != 0 {
		t.Errorf("time after release is %02d:%02d", h, m)
	}
}

func TestDragTargetString(t *testing.T) {
	for target, exp := range map[widget.DragTarget]string{
		widget.DragNone:   "None",
		widget.DragHour:   "Hour",
		widget.DragMinute: "Minute",
	} {
		if got := target.String(); got != exp {
			t.Errorf("got %q, expected %q", got, exp)
		}
	}
}
