// Package calendar pins down the date arithmetic used to build report windows.
//
// Unit boundaries come from jinzhu/now and are computed in the location of the
// given time. Month and year shifts keep the wall clock and clamp the day of month
// to the last valid day of the target month.
package calendar

import (
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/expense-tracker/internal/entity/period"
)

type Calendar struct{}

func New() *Calendar {
	return &Calendar{}
}

// StartOf returns the first instant of the unit containing t.
// An unknown granularity is treated as a day.
func (c *Calendar) StartOf(t time.Time, g period.Granularity) time.Time {
	n := now.With(t)
	switch g {
	case period.Month:
		return n.BeginningOfMonth()
	case period.Year:
		return n.BeginningOfYear()
	default:
		return n.BeginningOfDay()
	}
}

// EndOf returns the last nanosecond of the unit containing t.
func (c *Calendar) EndOf(t time.Time, g period.Granularity) time.Time {
	n := now.With(t)
	switch g {
	case period.Month:
		return n.EndOfMonth()
	case period.Year:
		return n.EndOfYear()
	default:
		return n.EndOfDay()
	}
}

func (c *Calendar) ShiftMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := DaysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func (c *Calendar) ShiftYears(t time.Time, years int) time.Time {
	return c.ShiftMonths(t, years*12)
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	return now.With(t).EndOfMonth().Day()
}
