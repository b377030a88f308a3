package messages

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/period"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

const (
	commandParts     = 2
	recordDateLayout = "2006-01-02 15:04"
)

var anchorLayouts = []string{"2006-01-02", "2006-01", "2006"}

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts && strings.HasPrefix(text, "/") {
		return split[0], strings.TrimSpace(split[1])
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

// parseWindowArgs reads "[granularity] [date]". Granularity defaults to day and
// the date to today.
func parseWindowArgs(arg string, today time.Time) (period.Granularity, time.Time, error) {
	fields := strings.Fields(arg)
	g, anchor := period.Day, today

	if len(fields) > 0 {
		if parsed, ok := period.Parse(fields[0]); ok {
			g = parsed
			fields = fields[1:]
		}
	}
	switch len(fields) {
	case 0:
		return g, anchor, nil
	case 1:
		anchor, err := parseAnchor(fields[0], today.Location())
		return g, anchor, err
	}
	return "", time.Time{}, &customerr.ValidationError{Field: "arguments", Reason: "expected [day|month|year] [date]"}
}

func parseAnchor(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range anchorLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &customerr.ValidationError{
		Field:  "date",
		Reason: fmt.Sprintf("%q should look like YYYY-MM-DD, YYYY-MM or YYYY", s),
	}
}

func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &customerr.ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a number", s)}
	}
	return amount, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil {
		return 0, &customerr.ValidationError{Field: "id", Reason: fmt.Sprintf("%q is not an expense id", s)}
	}
	return id, nil
}

// canonicalCategory matches a category name ignoring case. Unknown names are
// returned unchanged so the store can reject them.
func canonicalCategory(s string) string {
	for _, c := range expense.Categories {
		if strings.EqualFold(c, s) {
			return c
		}
	}
	return s
}

func formatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

func formatRecord(rec expense.Record) string {
	return fmt.Sprintf("#%d  %s  %s  %s",
		rec.ID, rec.Date.Format(recordDateLayout), rec.Category, formatAmount(rec.Amount))
}

func formatWindowTitle(g period.Granularity, anchor time.Time) string {
	switch g {
	case period.Year:
		return anchor.Format("2006")
	case period.Month:
		return anchor.Format("January 2006")
	default:
		return anchor.Format("January 2, 2006")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
