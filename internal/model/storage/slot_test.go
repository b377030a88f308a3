package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

type testBackend struct {
	backend string
	dir     string
}

func (b testBackend) Backend() string    { return b.backend }
func (b testBackend) Dir() string        { return b.dir }
func (b testBackend) SQLitePath() string { return filepath.Join(b.dir, "tracker.db") }

func localSlots(t *testing.T) map[string]Slot {
	t.Helper()

	fileSlot, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)
	sqliteSlot, err := NewSQLiteSlot(filepath.Join(t.TempDir(), "db", "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteSlot.Close() })

	return map[string]Slot{
		BackendMemory: NewInMemSlot(),
		BackendFile:   fileSlot,
		BackendSQLite: sqliteSlot,
	}
}

func Test_Slots_GetPutRemove(t *testing.T) {
	ctx := context.Background()
	for name, slot := range localSlots(t) {
		t.Run(name, func(t *testing.T) {
			_, found, err := slot.Get(ctx, "expenses")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, slot.Put(ctx, "expenses", []byte(`[1]`)))
			require.NoError(t, slot.Put(ctx, "expenses", []byte(`[2]`)))

			value, found, err := slot.Get(ctx, "expenses")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `[2]`, string(value))

			require.NoError(t, slot.Remove(ctx, "expenses"))
			require.NoError(t, slot.Remove(ctx, "expenses"))

			_, found, err = slot.Get(ctx, "expenses")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func Test_RecordStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	loc := time.FixedZone("UTC-5", -5*60*60)
	recs := []expense.Record{
		{ID: 1710496800123, Amount: 10, Category: expense.Food, Date: time.Date(2024, time.March, 15, 10, 0, 0, 123456789, loc)},
		{ID: 1707991200000, Amount: 5.55, Category: expense.Airtime, Date: time.Date(2024, time.February, 15, 10, 0, 0, 0, loc)},
	}

	for name, slot := range localSlots(t) {
		t.Run(name, func(t *testing.T) {
			s := NewRecordStorage(slot, "expenses", loc)

			require.NoError(t, s.Save(ctx, recs))
			loaded, err := s.Load(ctx)

			require.NoError(t, err)
			require.Len(t, loaded, len(recs))
			for i := range recs {
				assert.Equal(t, recs[i].ID, loaded[i].ID)
				assert.Equal(t, recs[i].Amount, loaded[i].Amount)
				assert.Equal(t, recs[i].Category, loaded[i].Category)
				assert.True(t, recs[i].Date.Equal(loaded[i].Date))
			}
		})
	}
}

func Test_RecordStorage_MissingKeyIsEmpty(t *testing.T) {
	s := NewRecordStorage(NewInMemSlot(), "expenses", time.UTC)

	recs, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func Test_RecordStorage_ClearShouldRemoveKey(t *testing.T) {
	ctx := context.Background()
	slot := NewInMemSlot()
	s := NewRecordStorage(slot, "expenses", time.UTC)
	require.NoError(t, s.Save(ctx, []expense.Record{{ID: 1, Amount: 1, Category: expense.Food, Date: time.Now()}}))

	require.NoError(t, s.Clear(ctx))

	_, found, err := slot.Get(ctx, "expenses")
	require.NoError(t, err)
	assert.False(t, found)
}

func Test_FileSlot_ShouldRejectPathKeys(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, slot.Put(context.Background(), "../escape", []byte("x")))
	_, _, err = slot.Get(context.Background(), "")
	assert.Error(t, err)
}

func Test_NewSlot(t *testing.T) {
	slot, err := NewSlot(testBackend{backend: BackendFile, dir: t.TempDir()}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &FileSlot{}, slot)

	slot, err = NewSlot(testBackend{backend: BackendSQLite, dir: t.TempDir()}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &SQLSlot{}, slot)
	assert.NoError(t, slot.Close())

	_, err = NewSlot(testBackend{backend: "cloud"}, nil, nil)
	assert.EqualError(t, err, `unknown storage backend "cloud"`)
}
