package window

import (
	"time"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/period"
)

type calendar interface {
	StartOf(t time.Time, g period.Granularity) time.Time
	EndOf(t time.Time, g period.Granularity) time.Time
	ShiftMonths(t time.Time, months int) time.Time
	ShiftYears(t time.Time, years int) time.Time
}

type Selector struct {
	cal calendar
}

func NewSelector(cal calendar) *Selector {
	return &Selector{cal: cal}
}

// Current returns the day, month or year containing anchor.
func (s *Selector) Current(g period.Granularity, anchor time.Time) period.Window {
	return period.Window{
		Start: s.cal.StartOf(anchor, g),
		End:   s.cal.EndOf(anchor, g),
	}
}

// Previous returns the window one month back for day and month granularity and
// one year back for year granularity. A day is compared with the same day of the
// previous month, not with the day before.
func (s *Selector) Previous(g period.Granularity, anchor time.Time) period.Window {
	cur := s.Current(g, anchor)
	return period.Window{
		Start: s.cal.StartOf(s.shiftBack(g, cur.Start), g),
		End:   s.cal.EndOf(s.shiftBack(g, cur.End), g),
	}
}

func (s *Selector) shiftBack(g period.Granularity, t time.Time) time.Time {
	if g == period.Year {
		return s.cal.ShiftYears(t, -1)
	}
	return s.cal.ShiftMonths(t, -1)
}

// FilterByWindow keeps records dated inside w, preserving their order.
func FilterByWindow(records []expense.Record, w period.Window) []expense.Record {
	res := make([]expense.Record, 0)
	for _, rec := range records {
		if w.Contains(rec.Date) {
			res = append(res, rec)
		}
	}
	return res
}
