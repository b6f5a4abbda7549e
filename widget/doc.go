// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the state of time picker controls. Widgets
// contain persistent state and process user events. The
// `widget/material` package implements drawing of widgets.
//
// Widgets are owned by the program's frame loop and must not be used
// from more than one goroutine.
package widget
