package reports

import (
	"sort"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

const dayKeyLayout = "2006-01-02"

// SeriesPoint pairs the daily sums of the current and previous window.
type SeriesPoint struct {
	Date     string
	Current  float64
	Previous float64
}

type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// Total sums amounts and rounds to cents. The sum of nothing is 0.00.
func Total(recs []expense.Record) decimal.Decimal {
	sum := decimal.Zero
	for _, rec := range recs {
		sum = sum.Add(decimal.NewFromFloat(rec.Amount))
	}
	return sum.Round(2)
}

// BucketSeries sums both series per calendar day of each record's own location.
// Days appear in first-seen order, current series first; the result is not
// sorted by date.
func BucketSeries(current, previous []expense.Record) []SeriesPoint {
	points := make([]SeriesPoint, 0)
	index := make(map[string]int)

	bucket := func(rec expense.Record) *SeriesPoint {
		key := rec.Date.Format(dayKeyLayout)
		i, ok := index[key]
		if !ok {
			i = len(points)
			index[key] = i
			points = append(points, SeriesPoint{Date: key})
		}
		return &points[i]
	}

	for _, rec := range current {
		bucket(rec).Current += rec.Amount
	}
	for _, rec := range previous {
		bucket(rec).Previous += rec.Amount
	}
	return points
}

// ByCategory groups amounts per category, largest first.
func ByCategory(recs []expense.Record) []CategoryAmount {
	m := make(map[string]decimal.Decimal)
	for _, rec := range recs {
		m[rec.Category] = m[rec.Category].Add(decimal.NewFromFloat(rec.Amount))
	}
	res := make([]CategoryAmount, 0, len(m))
	for cat, am := range m {
		res = append(res, CategoryAmount{Category: cat, Amount: am.Round(2)})
	}
	sort.Slice(res, func(i, j int) bool {
		if c := res[i].Amount.Cmp(res[j].Amount); c != 0 {
			return c > 0
		}
		return res[i].Category < res[j].Category
	})
	return res
}
