// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"
	"strconv"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	giomaterial "gioui.org/widget/material"

	"github.com/clockwork-ui/timepicker/internal/f32color"
	"github.com/clockwork-ui/timepicker/widget"
)

// DialStyle draws a clock face with hour labels and two hands.
type DialStyle struct {
	Dial *widget.Dial
	Time *widget.Time
	// Side is the side of the square dial area.
	Side       unit.Dp
	Face       color.NRGBA
	HourHand   color.NRGBA
	MinuteHand color.NRGBA
	// HourWidth is the stroke width of the hour hand and the
	// radius of the hub.
	HourWidth unit.Dp
	// MinuteWidth is the stroke width of the minute hand.
	MinuteWidth unit.Dp
	// Label is the template for the hour labels.
	Label giomaterial.LabelStyle
}

func Dial(th *giomaterial.Theme, d *widget.Dial, t *widget.Time) DialStyle {
	lbl := giomaterial.Label(th, 16, "")
	lbl.Alignment = text.Middle
	return DialStyle{
		Dial:        d,
		Time:        t,
		Side:        220,
		Face:        f32color.MulAlpha(th.Palette.Fg, 0x20),
		HourHand:    th.Palette.Fg,
		MinuteHand:  th.Palette.ContrastBg,
		HourWidth:   4,
		MinuteWidth: 3,
		Label:       lbl,
	}
}

// Layout draws the face from the current time and then processes
// the frame's drag events. A change is drawn in the next frame.
func (d DialStyle) Layout(gtx layout.Context) layout.Dimensions {
	side := gtx.Dp(d.Side)
	if cs := gtx.Constraints.Max; side > cs.X || side > cs.Y {
		side = min(cs.X, cs.Y)
	}
	sz := float32(side)
	center := f32.Pt(sz/2, sz/2)
	radius := widget.DialRadius(sz)

	face, hour, minute := d.Face, d.HourHand, d.MinuteHand
	switch d.Dial.Target() {
	case widget.DragHour:
		hour = f32color.Hovered(hour)
	case widget.DragMinute:
		minute = f32color.Hovered(minute)
	}
	if !gtx.Enabled() {
		face, hour, minute = f32color.Disabled(face), f32color.Disabled(hour), f32color.Disabled(minute)
	}

	r := int(radius)
	c := image.Pt(side/2, side/2)
	paint.FillShape(gtx.Ops, face, clip.Ellipse{
		Min: c.Sub(image.Pt(r, r)),
		Max: c.Add(image.Pt(r, r)),
	}.Op(gtx.Ops))

	for i := 1; i <= 12; i++ {
		pos := widget.DialPoint(center, radius*widget.LabelRadiusRatio, float32(i)/12)
		d.layoutLabel(gtx, pos, strconv.Itoa(i))
	}

	h, m := d.Time.Value()
	drawHand(gtx.Ops, center, radius*widget.HourHandRatio, float32(h)/12, hour, float32(gtx.Dp(d.HourWidth)))
	drawHand(gtx.Ops, center, radius*widget.MinuteHandRatio, float32(m)/60, minute, float32(gtx.Dp(d.MinuteWidth)))

	hub := gtx.Dp(d.HourWidth)
	paint.FillShape(gtx.Ops, hour, clip.Ellipse{
		Min: c.Sub(image.Pt(hub, hub)),
		Max: c.Add(image.Pt(hub, hub)),
	}.Op(gtx.Ops))

	gtx.Constraints = layout.Exact(image.Pt(side, side))
	return d.Dial.Layout(gtx, d.Time)
}

// layoutLabel centers txt on pos.
func (d DialStyle) layoutLabel(gtx layout.Context, pos f32.Point, txt string) {
	box := 2 * gtx.Sp(d.Label.TextSize)
	off := image.Pt(int(pos.X)-box/2, int(pos.Y)-box/2)
	defer op.Offset(off).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(box, box))
	lbl := d.Label
	lbl.Text = txt
	layout.Center.Layout(gtx, lbl.Layout)
}

func drawHand(ops *op.Ops, center f32.Point, length, frac float32, col color.NRGBA, width float32) {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(center)
	p.LineTo(widget.DialPoint(center, length, frac))
	paint.FillShape(ops, col, clip.Stroke{
		Path:  p.End(),
		Width: width,
	}.Op())
}
