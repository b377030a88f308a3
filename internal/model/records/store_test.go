package records

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/records/mock"
	"max.ks1230/expense-tracker/internal/model/storage"
)

var frozen = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func frozenClock() time.Time {
	return frozen
}

func newStorageMock(m *minimock.Controller, initial ...expense.Record) *mock.RecordsStorageMock {
	return mock.NewRecordsStorageMock(m).LoadMock.Return(initial, nil)
}

// recordSaves answers every Save with err and keeps what was written.
func recordSaves(storage *mock.RecordsStorageMock, err error) *[][]expense.Record {
	saved := &[][]expense.Record{}
	storage.SaveMock.
		Inspect(func(_ context.Context, recs []expense.Record) {
			*saved = append(*saved, recs)
		}).
		Return(err)
	return saved
}

func lastSaved(saved *[][]expense.Record) []expense.Record {
	if len(*saved) == 0 {
		return nil
	}
	return (*saved)[len(*saved)-1]
}

func openStore(t *testing.T, storage *mock.RecordsStorageMock) *Store {
	t.Helper()
	s, err := Open(context.Background(), storage, WithClock(frozenClock))
	require.NoError(t, err)
	return s
}

func Test_Create_ShouldStoreRetrievableRecord(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := newStorageMock(m)
	saved := recordSaves(storage, nil)
	s := openStore(t, storage)

	rec, err := s.Create(context.Background(), 12.5, expense.Food)
	require.NoError(t, err)

	got, ok := s.Get(rec.ID)
	assert.True(t, ok)
	assert.Equal(t, expense.Record{ID: frozen.UnixMilli(), Amount: 12.5, Category: expense.Food, Date: frozen}, got)
	assert.Equal(t, []expense.Record{got}, lastSaved(saved))
}

func Test_Create_ShouldPrependNewest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := newStorageMock(m)
	recordSaves(storage, nil)
	s := openStore(t, storage)
	ctx := context.Background()

	first, err := s.Create(ctx, 1, expense.Food)
	require.NoError(t, err)
	second, err := s.Create(ctx, 2, expense.Drugs)
	require.NoError(t, err)

	list := s.List()
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, uint64(2), storage.SaveAfterCounter())
}

func Test_Create_ShouldKeepIDsUniqueUnderFrozenClock(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := newStorageMock(m)
	recordSaves(storage, nil)
	s := openStore(t, storage)
	ctx := context.Background()

	ids := make(map[int64]struct{})
	prev := int64(0)
	for i := 0; i < 5; i++ {
		rec, err := s.Create(ctx, 1, expense.Others)
		require.NoError(t, err)
		ids[rec.ID] = struct{}{}
		assert.Greater(t, rec.ID, prev)
		prev = rec.ID
	}
	assert.Len(t, ids, 5)
}

func Test_Create_ShouldRejectInvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		category string
		field    string
	}{
		{"zero amount", 0, expense.Food, "amount"},
		{"negative amount", -1, expense.Food, "amount"},
		{"nan amount", math.NaN(), expense.Food, "amount"},
		{"infinite amount", math.Inf(1), expense.Food, "amount"},
		{"unknown category", 10, "Rent", "category"},
		{"wrong case category", 10, "food", "category"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			// no Save expectation: a write here fails the test
			storage := newStorageMock(m, expense.Record{ID: 1, Amount: 3, Category: expense.Food, Date: frozen})
			s := openStore(t, storage)

			_, err := s.Create(context.Background(), tc.amount, tc.category)

			var vErr *customerr.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, 1, s.Len())
		})
	}
}

func Test_UpdateAmount_ShouldChangeOnlyAmount(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	orig := expense.Record{ID: 7, Amount: 3, Category: expense.Utilities, Date: frozen.Add(-time.Hour)}
	storage := newStorageMock(m, orig)
	saved := recordSaves(storage, nil)
	s := openStore(t, storage)

	require.NoError(t, s.UpdateAmount(context.Background(), 7, 4.75))

	got, ok := s.Get(7)
	require.True(t, ok)
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.Category, got.Category)
	assert.Equal(t, orig.Date, got.Date)
	assert.Equal(t, 4.75, got.Amount)
	assert.Equal(t, 4.75, lastSaved(saved)[0].Amount)
}

func Test_UpdateAmount_Errors(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s := openStore(t, newStorageMock(m, expense.Record{ID: 7, Amount: 3, Category: expense.Food, Date: frozen}))
	ctx := context.Background()

	var nf *customerr.NotFoundError
	assert.True(t, errors.As(s.UpdateAmount(ctx, 8, 1), &nf))
	assert.Equal(t, int64(8), nf.ID)

	var vErr *customerr.ValidationError
	assert.True(t, errors.As(s.UpdateAmount(ctx, 7, 0), &vErr))

	got, _ := s.Get(7)
	assert.Equal(t, 3.0, got.Amount)
}

func Test_Delete_ShouldRemoveExactlyOne(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := newStorageMock(m,
		expense.Record{ID: 3, Amount: 1, Category: expense.Food, Date: frozen},
		expense.Record{ID: 2, Amount: 2, Category: expense.Food, Date: frozen},
		expense.Record{ID: 1, Amount: 3, Category: expense.Food, Date: frozen},
	)
	saved := recordSaves(storage, nil)
	s := openStore(t, storage)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, 2))
	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(2)
	assert.False(t, ok)
	last := lastSaved(saved)
	assert.Equal(t, []int64{3, 1}, []int64{last[0].ID, last[1].ID})

	var nf *customerr.NotFoundError
	assert.True(t, errors.As(s.Delete(ctx, 2), &nf))
	assert.Equal(t, 2, s.Len())
	assert.Len(t, *saved, 1)
}

func Test_ResetAll_ShouldEmptyStoreAndClearStorage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := newStorageMock(m, expense.Record{ID: 1, Amount: 1, Category: expense.Food, Date: frozen})
	storage.ClearMock.Return(nil)
	s := openStore(t, storage)

	require.NoError(t, s.ResetAll(context.Background()))
	require.NoError(t, s.ResetAll(context.Background()))

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
	assert.Equal(t, uint64(2), storage.ClearAfterCounter())
}

func Test_ResetAll_ClearFailureShouldStillEmptyMemory(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := newStorageMock(m, expense.Record{ID: 1, Amount: 1, Category: expense.Food, Date: frozen})
	storage.ClearMock.Return(errors.New("quota exceeded"))
	s := openStore(t, storage)

	err := s.ResetAll(context.Background())

	var pErr *customerr.PersistError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "reset", pErr.Op)
	assert.Equal(t, 0, s.Len())
}

func Test_PersistFailure_ShouldKeepMemoryChange(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := newStorageMock(m)
	recordSaves(storage, errors.New("quota exceeded"))
	s := openStore(t, storage)

	rec, err := s.Create(context.Background(), 5, expense.Shopping)

	var pErr *customerr.PersistError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "create", pErr.Op)
	_, ok := s.Get(rec.ID)
	assert.True(t, ok)
}

func Test_Open_ShouldPropagateLoadError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewRecordsStorageMock(m).
		LoadMock.Return(nil, &customerr.DecodeError{Index: 0, Reason: "bad date"})

	_, err := Open(context.Background(), storage)

	var decErr *customerr.DecodeError
	assert.True(t, errors.As(err, &decErr))
}

func Test_List_ShouldReturnCopy(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	s := openStore(t, newStorageMock(m, expense.Record{ID: 1, Amount: 1, Category: expense.Food, Date: frozen}))

	list := s.List()
	list[0].Amount = 100

	got, _ := s.Get(1)
	assert.Equal(t, 1.0, got.Amount)
}

func Test_Store_ShouldSurviveReopen(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewRecordStorage(storage.NewInMemSlot(), "expenses", time.UTC)

	s, err := Open(ctx, backend, WithClock(frozenClock))
	require.NoError(t, err)
	food, err := s.Create(ctx, 10, expense.Food)
	require.NoError(t, err)
	_, err = s.Create(ctx, 2.5, expense.Airtime)
	require.NoError(t, err)
	require.NoError(t, s.UpdateAmount(ctx, food.ID, 11))

	reopened, err := Open(ctx, backend)
	require.NoError(t, err)

	assert.Equal(t, s.Len(), reopened.Len())
	for _, rec := range s.List() {
		got, ok := reopened.Get(rec.ID)
		require.True(t, ok)
		assert.Equal(t, rec.Amount, got.Amount)
		assert.Equal(t, rec.Category, got.Category)
		assert.True(t, rec.Date.Equal(got.Date))
	}
}
