package reports

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/period"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/window"
)

type recordsSource interface {
	List() []expense.Record
}

type windowSelector interface {
	Current(g period.Granularity, anchor time.Time) period.Window
	Previous(g period.Granularity, anchor time.Time) period.Window
}

// Report describes one window and its comparison with the previous one.
type Report struct {
	Granularity   period.Granularity
	Anchor        time.Time
	Current       period.Window
	Previous      period.Window
	Records       []expense.Record
	Total         decimal.Decimal
	PreviousTotal decimal.Decimal
	ByCategory    []CategoryAmount
	Series        []SeriesPoint
}

type Generator struct {
	source   recordsSource
	selector windowSelector
}

func NewGenerator(source recordsSource, selector windowSelector) *Generator {
	return &Generator{
		source:   source,
		selector: selector,
	}
}

func (g *Generator) Generate(ctx context.Context, gran period.Granularity, anchor time.Time) (*Report, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()
	span.SetTag("granularity", gran.String())

	logger.Debug("Generate - start", zap.Stringer("granularity", gran), zap.Time("anchor", anchor))
	defer logger.Debug("Generate - end")

	if !gran.Valid() {
		return nil, &customerr.ValidationError{Field: "granularity", Reason: "must be day, month or year"}
	}

	all := g.source.List()
	cur := g.selector.Current(gran, anchor)
	prev := g.selector.Previous(gran, anchor)
	curRecs := window.FilterByWindow(all, cur)
	prevRecs := window.FilterByWindow(all, prev)

	return &Report{
		Granularity:   gran,
		Anchor:        anchor,
		Current:       cur,
		Previous:      prev,
		Records:       curRecs,
		Total:         Total(curRecs),
		PreviousTotal: Total(prevRecs),
		ByCategory:    ByCategory(curRecs),
		Series:        BucketSeries(curRecs, prevRecs),
	}, nil
}
