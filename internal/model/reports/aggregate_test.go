package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_Total_ShouldRoundToCents(t *testing.T) {
	recs := []expense.Record{{Amount: 0.1}, {Amount: 0.2}, {Amount: 10.004}}

	assert.Equal(t, "10.30", Total(recs).StringFixed(2))
	assert.Equal(t, "0.00", Total(nil).StringFixed(2))
}

func Test_BucketSeries_ShouldSumPerDay(t *testing.T) {
	current := []expense.Record{
		{Amount: 1, Date: at(2024, time.March, 15, 8)},
		{Amount: 2, Date: at(2024, time.March, 14, 8)},
		{Amount: 3, Date: at(2024, time.March, 15, 20)},
	}
	previous := []expense.Record{
		{Amount: 4, Date: at(2024, time.February, 14, 8)},
		{Amount: 5, Date: at(2024, time.March, 14, 9)},
	}

	assert.Equal(t, []SeriesPoint{
		{Date: "2024-03-15", Current: 4, Previous: 0},
		{Date: "2024-03-14", Current: 2, Previous: 5},
		{Date: "2024-02-14", Current: 0, Previous: 4},
	}, BucketSeries(current, previous))
}

func Test_BucketSeries_ShouldUseRecordLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	recs := []expense.Record{{Amount: 1, Date: time.Date(2024, time.March, 15, 22, 30, 0, 0, time.UTC).In(loc)}}

	series := BucketSeries(recs, nil)

	assert.Equal(t, "2024-03-16", series[0].Date)
}

func Test_BucketSeries_ShouldKeepInsertionOrder(t *testing.T) {
	current := []expense.Record{{Amount: 1, Date: at(2024, time.March, 20, 0)}, {Amount: 1, Date: at(2024, time.March, 1, 0)}}
	previous := []expense.Record{{Amount: 1, Date: at(2024, time.February, 25, 0)}}

	series := BucketSeries(current, previous)

	assert.Equal(t, []string{"2024-03-20", "2024-03-01", "2024-02-25"},
		[]string{series[0].Date, series[1].Date, series[2].Date})
}

func Test_ByCategory_TiesShouldSortByName(t *testing.T) {
	recs := []expense.Record{
		{Amount: 5, Category: expense.Shopping},
		{Amount: 5, Category: expense.Airtime},
		{Amount: 7.5, Category: expense.Food},
	}

	res := ByCategory(recs)

	assert.Equal(t, []string{expense.Food, expense.Airtime, expense.Shopping},
		[]string{res[0].Category, res[1].Category, res[2].Category})
}
