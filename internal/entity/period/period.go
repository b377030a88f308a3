package period

import (
	"strings"
	"time"
)

type Granularity string

const (
	Day   Granularity = "day"
	Month Granularity = "month"
	Year  Granularity = "year"
)

var Granularities = []Granularity{Day, Month, Year}

// Parse accepts a granularity name in any letter case.
func Parse(s string) (Granularity, bool) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", false
	}
	return g, true
}

func (g Granularity) Valid() bool {
	switch g {
	case Day, Month, Year:
		return true
	}
	return false
}

func (g Granularity) String() string {
	return string(g)
}

// Window is an inclusive range of instants.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
