package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	cal "max.ks1230/expense-tracker/internal/calendar"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/period"
)

const lastNano = int(time.Second - time.Nanosecond)

func newSelector() *Selector {
	return NewSelector(cal.New())
}

func Test_Current_ShouldCoverWholeUnit(t *testing.T) {
	s := newSelector()
	anchor := time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC)

	day := s.Current(period.Day, anchor)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), day.Start)
	assert.Equal(t, time.Date(2024, time.March, 15, 23, 59, 59, lastNano, time.UTC), day.End)

	month := s.Current(period.Month, anchor)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), month.Start)
	assert.Equal(t, time.Date(2024, time.March, 31, 23, 59, 59, lastNano, time.UTC), month.End)

	year := s.Current(period.Year, anchor)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), year.Start)
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, lastNano, time.UTC), year.End)
}

func Test_Previous_DayShouldBeSameDayOfPreviousMonth(t *testing.T) {
	w := newSelector().Previous(period.Day, time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.February, 15, 23, 59, 59, lastNano, time.UTC), w.End)
}

func Test_Previous_DayShouldClampToMonthEnd(t *testing.T) {
	w := newSelector().Previous(period.Day, time.Date(2024, time.March, 31, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, lastNano, time.UTC), w.End)
}

func Test_Previous_MonthShouldCoverWholePreviousMonth(t *testing.T) {
	s := newSelector()

	w := s.Previous(period.Month, time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.April, 30, 23, 59, 59, lastNano, time.UTC), w.End)

	w = s.Previous(period.Month, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, lastNano, time.UTC), w.End)

	w = s.Previous(period.Month, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.January, 31, 23, 59, 59, lastNano, time.UTC), w.End)
}

func Test_Previous_YearShouldBeOneYearBack(t *testing.T) {
	w := newSelector().Previous(period.Year, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2023, time.December, 31, 23, 59, 59, lastNano, time.UTC), w.End)
}

func Test_FilterByWindow_ShouldIncludeBothBounds(t *testing.T) {
	w := newSelector().Current(period.Day, time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))
	records := []expense.Record{
		{ID: 1, Amount: 1, Category: expense.Food, Date: w.Start},
		{ID: 2, Amount: 2, Category: expense.Food, Date: w.Start.Add(-time.Nanosecond)},
		{ID: 3, Amount: 3, Category: expense.Food, Date: w.End},
		{ID: 4, Amount: 4, Category: expense.Food, Date: w.End.Add(time.Nanosecond)},
	}

	res := FilterByWindow(records, w)

	assert.Len(t, res, 2)
	assert.Equal(t, int64(1), res[0].ID)
	assert.Equal(t, int64(3), res[1].ID)
}

func Test_FilterByWindow_ShouldPreserveOrder(t *testing.T) {
	w := newSelector().Current(period.Month, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	records := []expense.Record{
		{ID: 3, Date: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Date: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 1, Date: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)},
	}

	res := FilterByWindow(records, w)

	assert.Equal(t, []int64{3, 1}, []int64{res[0].ID, res[1].ID})
}

func Test_FilterByWindow_EmptyInput(t *testing.T) {
	res := FilterByWindow(nil, newSelector().Current(period.Year, time.Now()))

	assert.NotNil(t, res)
	assert.Empty(t, res)
}
