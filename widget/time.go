// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"time"
)

// Time is a time of day with minute resolution. The zero value
// is midnight.
type Time struct {
	Hour   int
	Minute int
}

// DefaultTime is the value of a picker created without an
// explicit time.
var DefaultTime = Time{Hour: 12}

// NewTime returns the time hour:minute, clamping hour to [0, 23]
// and minute to [0, 59]. Out of range values are capped, not
// wrapped.
func NewTime(hour, minute int) Time {
	return Time{Hour: clamp(hour, 23), Minute: clamp(minute, 59)}
}

// FromTime returns the time of day of t in t's location.
func FromTime(t time.Time) Time {
	return Time{Hour: t.Hour(), Minute: t.Minute()}
}

// On returns the instant at t on the date of day, in day's location.
func (t Time) On(day time.Time) time.Time {
	t = t.Clamp()
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, day.Location())
}

// Value returns the hour and minute of t, clamped to their ranges.
func (t Time) Value() (hour, minute int) {
	t = t.Clamp()
	return t.Hour, t.Minute
}

// Clamp returns t with Hour and Minute capped to their ranges as by
// NewTime. Values set directly on the fields may be out of range;
// every method of Time clamps before using them.
func (t Time) Clamp() Time {
	return NewTime(t.Hour, t.Minute)
}

// IncHour advances the hour by one, wrapping 23 to 0.
func (t Time) IncHour() Time {
	t = t.Clamp()
	t.Hour = (t.Hour + 1) % 24
	return t
}

// DecHour moves the hour back by one, wrapping 0 to 23.
func (t Time) DecHour() Time {
	t = t.Clamp()
	if t.Hour == 0 {
		t.Hour = 23
	} else {
		t.Hour--
	}
	return t
}

// IncMinute advances the minute by one, wrapping 59 to 0. The hour
// is left alone.
func (t Time) IncMinute() Time {
	t = t.Clamp()
	t.Minute = (t.Minute + 1) % 60
	return t
}

// DecMinute moves the minute back by one, wrapping 0 to 59.
func (t Time) DecMinute() Time {
	t = t.Clamp()
	if t.Minute == 0 {
		t.Minute = 59
	} else {
		t.Minute--
	}
	return t
}

// String formats t as HH:MM.
func (t Time) String() string {
	h, m := t.Value()
	return fmt.Sprintf("%02d:%02d", h, m)
}

func clamp(v, max int) int {
	switch {
	case v < 0:
		return 0
	case v > max:
		return max
	}
	return v
}
