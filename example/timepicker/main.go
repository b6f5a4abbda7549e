// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that edits a time of day with a clock face.

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	giomaterial "gioui.org/widget/material"

	"github.com/clockwork-ui/timepicker/widget"
	"github.com/clockwork-ui/timepicker/widget/material"
)

var (
	initial = flag.String("time", "12:00", "initial time as HH:MM")
	inline  = flag.Bool("inline", false, "show an inline clock next to the picker")
	disable = flag.Bool("disable", false, "disable all widgets")
)

func main() {
	flag.Parse()
	t, err := parseTime(*initial)
	if err != nil {
		log.Fatal(err)
	}
	go func() {
		w := new(app.Window)
		w.Option(app.Title("TimePicker Demo"), app.Size(unit.Dp(480), unit.Dp(640)))
		if err := loop(w, t); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func parseTime(s string) (widget.Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return widget.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return widget.FromTime(t), nil
}

func loop(w *app.Window, t widget.Time) error {
	th := giomaterial.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.TextSize = 18

	picker := widget.NewTimePicker(t)
	clock := &widget.Clock{Time: t}
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			if *disable {
				gtx = gtx.Disabled()
			}
			if picker.Update(gtx) {
				log.Printf("picker opened at %s", picker.Time)
			}
			demo(gtx, th, picker, clock)
			e.Frame(gtx.Ops)
		}
	}
}

func demo(gtx layout.Context, th *giomaterial.Theme, picker *widget.TimePicker, clock *widget.Clock) layout.Dimensions {
	style := material.TimePicker(th, picker)
	layout.UniformInset(16).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(style.Layout),
			layout.Rigid(layout.Spacer{Height: 10}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				h, m := picker.Value()
				return giomaterial.Body1(th, fmt.Sprintf("Chosen time: %02d:%02d", h, m)).Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !*inline {
					return layout.Dimensions{}
				}
				return layout.Inset{Top: 24}.Layout(gtx, material.Clock(th, clock).Layout)
			}),
		)
	})
	return style.LayoutOverlay(gtx)
}
