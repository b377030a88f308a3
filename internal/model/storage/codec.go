package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

const dateLayout = time.RFC3339Nano

type recordJSON struct {
	ID       int64   `json:"id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

// EncodeRecords serializes records as a JSON array. Dates are written in UTC.
func EncodeRecords(recs []expense.Record) ([]byte, error) {
	out := make([]recordJSON, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recordJSON{
			ID:       rec.ID,
			Amount:   rec.Amount,
			Category: rec.Category,
			Date:     rec.Date.UTC().Format(dateLayout),
		})
	}
	data, err := json.Marshal(out)
	return data, errors.Wrap(err, "encode records")
}

// DecodeRecords parses a JSON array written by EncodeRecords or by the browser
// version of the tracker. Every field is checked; the first bad record fails the
// whole payload with a *customerr.DecodeError. Dates are converted to loc.
func DecodeRecords(data []byte, loc *time.Location) ([]expense.Record, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &customerr.DecodeError{Index: -1, Reason: err.Error()}
	}

	res := make([]expense.Record, 0, len(raws))
	seen := make(map[int64]struct{}, len(raws))
	for i, raw := range raws {
		rec, err := decodeRecord(raw, loc)
		if err != nil {
			return nil, &customerr.DecodeError{Index: i, Reason: err.Error()}
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, &customerr.DecodeError{Index: i, Reason: fmt.Sprintf("duplicate id %d", rec.ID)}
		}
		seen[rec.ID] = struct{}{}
		res = append(res, rec)
	}
	return res, nil
}

func decodeRecord(raw json.RawMessage, loc *time.Location) (expense.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return expense.Record{}, errors.New("not an object")
	}

	id, err := numberField(fields, "id")
	if err != nil {
		return expense.Record{}, err
	}
	idVal, err := id.Int64()
	if err != nil || idVal <= 0 {
		return expense.Record{}, errors.Errorf("id %q is not a positive integer", id)
	}

	amount, err := numberField(fields, "amount")
	if err != nil {
		return expense.Record{}, err
	}
	amountVal, err := amount.Float64()
	if err != nil || math.IsInf(amountVal, 0) || amountVal <= 0 {
		return expense.Record{}, errors.Errorf("amount %q is not a positive number", amount)
	}

	category, err := stringField(fields, "category")
	if err != nil {
		return expense.Record{}, err
	}
	if !expense.IsCategory(category) {
		return expense.Record{}, errors.Errorf("unknown category %q", category)
	}

	rawDate, err := stringField(fields, "date")
	if err != nil {
		return expense.Record{}, err
	}
	date, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		return expense.Record{}, errors.Errorf("date %q is not RFC 3339", rawDate)
	}

	return expense.Record{
		ID:       idVal,
		Amount:   amountVal,
		Category: category,
		Date:     date.In(loc),
	}, nil
}

func numberField(fields map[string]any, name string) (json.Number, error) {
	v, ok := fields[name]
	if !ok {
		return "", errors.Errorf("missing %s", name)
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", errors.Errorf("%s is not a number", name)
	}
	return n, nil
}

func stringField(fields map[string]any, name string) (string, error) {
	v, ok := fields[name]
	if !ok {
		return "", errors.Errorf("missing %s", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Errorf("%s is not a string", name)
	}
	return s, nil
}
