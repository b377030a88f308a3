package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/entity/period"
)

func date(y int, m time.Month, d, h, mi int) time.Time {
	return time.Date(y, m, d, h, mi, 0, 0, time.UTC)
}

func Test_StartOf_ShouldTruncateToUnit(t *testing.T) {
	c := New()
	ts := date(2024, time.March, 15, 10, 30)

	assert.Equal(t, date(2024, time.March, 15, 0, 0), c.StartOf(ts, period.Day))
	assert.Equal(t, date(2024, time.March, 1, 0, 0), c.StartOf(ts, period.Month))
	assert.Equal(t, date(2024, time.January, 1, 0, 0), c.StartOf(ts, period.Year))
}

func Test_EndOf_ShouldReturnLastNanosecond(t *testing.T) {
	c := New()
	ts := date(2024, time.February, 10, 8, 0)
	last := int(time.Second - time.Nanosecond)

	assert.Equal(t, time.Date(2024, time.February, 10, 23, 59, 59, last, time.UTC), c.EndOf(ts, period.Day))
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, last, time.UTC), c.EndOf(ts, period.Month))
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, last, time.UTC), c.EndOf(ts, period.Year))
}

func Test_StartOf_ShouldKeepLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, time.March, 15, 1, 0, 0, 0, loc)

	start := New().StartOf(ts, period.Day)

	assert.Equal(t, loc, start.Location())
	assert.Equal(t, 15, start.Day())
}

func Test_ShiftMonths(t *testing.T) {
	c := New()
	cases := []struct {
		name   string
		in     time.Time
		months int
		want   time.Time
	}{
		{"plain", date(2024, time.March, 15, 10, 0), -1, date(2024, time.February, 15, 10, 0)},
		{"clamp to leap february", date(2024, time.March, 31, 23, 59), -1, date(2024, time.February, 29, 23, 59)},
		{"clamp to february", date(2023, time.March, 30, 0, 0), -1, date(2023, time.February, 28, 0, 0)},
		{"clamp to 30 day month", date(2024, time.May, 31, 12, 0), -1, date(2024, time.April, 30, 12, 0)},
		{"across year", date(2024, time.January, 31, 9, 0), -1, date(2023, time.December, 31, 9, 0)},
		{"forward", date(2024, time.January, 31, 9, 0), 1, date(2024, time.February, 29, 9, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.ShiftMonths(tc.in, tc.months))
		})
	}
}

func Test_ShiftYears_ShouldClampLeapDay(t *testing.T) {
	c := New()

	assert.Equal(t, date(2023, time.February, 28, 6, 0), c.ShiftYears(date(2024, time.February, 29, 6, 0), -1))
	assert.Equal(t, date(2023, time.July, 4, 6, 0), c.ShiftYears(date(2024, time.July, 4, 6, 0), -1))
}

func Test_ShiftMonths_ShouldKeepNanoseconds(t *testing.T) {
	end := New().EndOf(date(2024, time.March, 31, 0, 0), period.Day)

	shifted := New().ShiftMonths(end, -1)

	assert.Equal(t, end.Nanosecond(), shifted.Nanosecond())
	assert.Equal(t, 29, shifted.Day())
}
