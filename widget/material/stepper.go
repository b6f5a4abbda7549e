// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"

	"gioui.org/layout"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	giomaterial "gioui.org/widget/material"

	"github.com/clockwork-ui/timepicker/widget"
)

// StepperStyle draws the hour and minute values with a step
// button above and below each.
type StepperStyle struct {
	Stepper *widget.Stepper
	Time    *widget.Time
	// Value is the template for the hour and minute values.
	Value giomaterial.LabelStyle
	// Separator is drawn between the hour and minute.
	Separator giomaterial.LabelStyle
	Spacing   unit.Dp

	theme *giomaterial.Theme
}

func Stepper(th *giomaterial.Theme, s *widget.Stepper, t *widget.Time) StepperStyle {
	return StepperStyle{
		Stepper:   s,
		Time:      t,
		Value:     giomaterial.H5(th, ""),
		Separator: giomaterial.H5(th, ":"),
		Spacing:   8,
		theme:     th,
	}
}

func (s StepperStyle) Layout(gtx layout.Context) layout.Dimensions {
	s.Stepper.Update(gtx, s.Time)
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.column(gtx, widget.StepHour, &s.Stepper.HourUp, &s.Stepper.HourDown, s.Time.Hour)
		}),
		layout.Rigid(layout.Spacer{Width: s.Spacing}.Layout),
		layout.Rigid(s.Separator.Layout),
		layout.Rigid(layout.Spacer{Width: s.Spacing}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return s.column(gtx, widget.StepMinute, &s.Stepper.MinuteUp, &s.Stepper.MinuteDown, s.Time.Minute)
		}),
	)
}

func (s StepperStyle) column(gtx layout.Context, field widget.StepField, up, down *giowidget.Clickable, v int) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(giomaterial.Button(s.theme, up, "+").Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := s.Value
			lbl.Text = fmt.Sprintf("%02d", v)
			return s.Stepper.LayoutValue(gtx, field, lbl.Layout)
		}),
		layout.Rigid(giomaterial.Button(s.theme, down, "-").Layout),
	)
}
