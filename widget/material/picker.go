// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	giomaterial "gioui.org/widget/material"

	"github.com/clockwork-ui/timepicker/internal/f32color"
	"github.com/clockwork-ui/timepicker/widget"
)

// TimePickerStyle draws a TimePicker. Layout draws the summary
// button in place; LayoutOverlay draws the editor and must be laid
// out last, over the whole window.
type TimePickerStyle struct {
	Picker  *widget.TimePicker
	Summary giomaterial.ButtonStyle
	Title   giomaterial.LabelStyle
	Dial    DialStyle
	Stepper StepperStyle
	Confirm giomaterial.ButtonStyle
	// Background is the color of the overlay panel.
	Background   color.NRGBA
	CornerRadius unit.Dp
	// Scrim is painted over the window behind the panel.
	Scrim   color.NRGBA
	Inset   layout.Inset
	Spacing unit.Dp
}

// ClockStyle draws a Clock: a dial above the steppers.
type ClockStyle struct {
	Clock   *widget.Clock
	Dial    DialStyle
	Stepper StepperStyle
	Spacing unit.Dp
}

func TimePicker(th *giomaterial.Theme, p *widget.TimePicker) TimePickerStyle {
	return TimePickerStyle{
		Picker:       p,
		Summary:      giomaterial.Button(th, &p.Summary, ""),
		Title:        giomaterial.H6(th, "Timepicker"),
		Dial:         Dial(th, &p.Dial, &p.Time),
		Stepper:      Stepper(th, &p.Stepper, &p.Time),
		Confirm:      giomaterial.Button(th, &p.Confirm, "OK"),
		Background:   th.Palette.Bg,
		CornerRadius: 8,
		Scrim:        f32color.MulAlpha(color.NRGBA{A: 0xff}, 0x60),
		Inset:        layout.UniformInset(16),
		Spacing:      8,
	}
}

func Clock(th *giomaterial.Theme, c *widget.Clock) ClockStyle {
	return ClockStyle{
		Clock:   c,
		Dial:    Dial(th, &c.Dial, &c.Time),
		Stepper: Stepper(th, &c.Stepper, &c.Time),
		Spacing: 8,
	}
}

// Layout draws the summary button showing the picked time.
func (s TimePickerStyle) Layout(gtx layout.Context) layout.Dimensions {
	s.Picker.Update(gtx)
	s.Summary.Text = s.Picker.Time.String()
	return s.Summary.Layout(gtx)
}

// LayoutOverlay draws the editor panel centered in the constraints
// while the picker is open. The scrim behind it stops pointer
// input from reaching the widgets underneath.
func (s TimePickerStyle) LayoutOverlay(gtx layout.Context) layout.Dimensions {
	s.Picker.Update(gtx)
	if !s.Picker.Opened() {
		return layout.Dimensions{}
	}
	size := gtx.Constraints.Max
	area := clip.Rect{Max: size}.Push(gtx.Ops)
	paint.Fill(gtx.Ops, s.Scrim)
	s.Picker.LayoutScrim(gtx)
	area.Pop()

	gtx.Constraints = layout.Exact(size)
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx, s.layoutBackground, func(gtx layout.Context) layout.Dimensions {
			return s.Inset.Layout(gtx, s.layoutPanel)
		})
	})
	return layout.Dimensions{Size: size}
}

func (s TimePickerStyle) layoutBackground(gtx layout.Context) layout.Dimensions {
	sz := gtx.Constraints.Min
	rr := clip.UniformRRect(image.Rectangle{Max: sz}, gtx.Dp(s.CornerRadius))
	paint.FillShape(gtx.Ops, s.Background, rr.Op(gtx.Ops))
	return layout.Dimensions{Size: sz}
}

func (s TimePickerStyle) layoutPanel(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(s.Title.Layout),
		layout.Rigid(layout.Spacer{Height: s.Spacing}.Layout),
		layout.Rigid(s.Dial.Layout),
		layout.Rigid(layout.Spacer{Height: s.Spacing}.Layout),
		layout.Rigid(s.Stepper.Layout),
		layout.Rigid(layout.Spacer{Height: s.Spacing}.Layout),
		layout.Rigid(s.Confirm.Layout),
	)
}

func (c ClockStyle) Layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(c.Dial.Layout),
		layout.Rigid(layout.Spacer{Height: c.Spacing}.Layout),
		layout.Rigid(c.Stepper.Layout),
	)
}
