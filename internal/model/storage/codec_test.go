package storage

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

func Test_DecodeRecords_ShouldAcceptBrowserPayload(t *testing.T) {
	payload := `[{"id":1710496800000,"amount":12.5,"category":"Food","date":"2024-03-15T10:00:00.000Z"}]`

	recs, err := DecodeRecords([]byte(payload), time.UTC)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, int64(1710496800000), recs[0].ID)
	assert.Equal(t, 12.5, recs[0].Amount)
	assert.Equal(t, expense.Food, recs[0].Category)
	assert.True(t, time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC).Equal(recs[0].Date))
}

func Test_DecodeRecords_ShouldConvertToLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	payload := `[{"id":1,"amount":1,"category":"Food","date":"2024-03-15T22:30:00Z"}]`

	recs, err := DecodeRecords([]byte(payload), loc)

	require.NoError(t, err)
	assert.Equal(t, loc, recs[0].Date.Location())
	assert.Equal(t, 16, recs[0].Date.Day())
}

func Test_DecodeRecords_EmptyArray(t *testing.T) {
	recs, err := DecodeRecords([]byte(`[]`), time.UTC)

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func Test_DecodeRecords_ShouldRejectMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":         `{{`,
		"not array":        `{"id":1}`,
		"not object":       `[1]`,
		"missing id":       `[{"amount":1,"category":"Food","date":"2024-03-15T10:00:00Z"}]`,
		"string id":        `[{"id":"1","amount":1,"category":"Food","date":"2024-03-15T10:00:00Z"}]`,
		"fractional id":    `[{"id":1.5,"amount":1,"category":"Food","date":"2024-03-15T10:00:00Z"}]`,
		"string amount":    `[{"id":1,"amount":"1","category":"Food","date":"2024-03-15T10:00:00Z"}]`,
		"zero amount":      `[{"id":1,"amount":0,"category":"Food","date":"2024-03-15T10:00:00Z"}]`,
		"negative amount":  `[{"id":1,"amount":-3,"category":"Food","date":"2024-03-15T10:00:00Z"}]`,
		"unknown category": `[{"id":1,"amount":1,"category":"Rent","date":"2024-03-15T10:00:00Z"}]`,
		"numeric category": `[{"id":1,"amount":1,"category":7,"date":"2024-03-15T10:00:00Z"}]`,
		"bad date":         `[{"id":1,"amount":1,"category":"Food","date":"15.03.2024"}]`,
		"missing date":     `[{"id":1,"amount":1,"category":"Food"}]`,
		"duplicate id": `[{"id":1,"amount":1,"category":"Food","date":"2024-03-15T10:00:00Z"},
			{"id":1,"amount":2,"category":"Food","date":"2024-03-15T11:00:00Z"}]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeRecords([]byte(payload), time.UTC)

			var decErr *customerr.DecodeError
			assert.True(t, errors.As(err, &decErr), "got %v", err)
		})
	}
}

func Test_DecodeRecords_ShouldReportIndex(t *testing.T) {
	payload := `[{"id":1,"amount":1,"category":"Food","date":"2024-03-15T10:00:00Z"},
		{"id":2,"amount":1,"category":"Food","date":"yesterday"}]`

	_, err := DecodeRecords([]byte(payload), time.UTC)

	var decErr *customerr.DecodeError
	require.True(t, errors.As(err, &decErr))
	assert.Equal(t, 1, decErr.Index)
}

func Test_EncodeRecords_ShouldWriteUTCDates(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	recs := []expense.Record{
		{ID: 7, Amount: 3.25, Category: expense.Shopping, Date: time.Date(2024, time.March, 15, 1, 0, 0, 500, loc)},
	}

	data, err := EncodeRecords(recs)

	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":7,"amount":3.25,"category":"Shopping","date":"2024-03-14T22:00:00.0000005Z"}]`,
		string(data))
}
