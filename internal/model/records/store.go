package records

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

type recordsStorage interface {
	Load(ctx context.Context) ([]expense.Record, error)
	Save(ctx context.Context, recs []expense.Record) error
	Clear(ctx context.Context) error
}

// Store owns the expense collection, newest first. It is not safe for
// concurrent use; callers run one operation at a time.
//
// Every mutation is written through to storage. When that write fails the
// in-memory change is kept and a *customerr.PersistError is returned.
type Store struct {
	storage recordsStorage
	records []expense.Record
	clock   func() time.Time
}

type Option func(*Store)

func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// Open loads the stored collection. A missing key yields an empty store.
func Open(ctx context.Context, storage recordsStorage, opts ...Option) (*Store, error) {
	s := &Store{
		storage: storage,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	recs, err := storage.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	s.records = recs
	return s, nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return &customerr.ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}
	return nil
}

// Create adds a new expense dated now. On a storage failure the record is
// returned together with the error.
func (s *Store) Create(ctx context.Context, amount float64, category string) (expense.Record, error) {
	if err := validateAmount(amount); err != nil {
		return expense.Record{}, err
	}
	if !expense.IsCategory(category) {
		return expense.Record{}, &customerr.ValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("unknown category %q", category),
		}
	}

	created := s.clock()
	rec := expense.Record{
		ID:       s.nextID(created),
		Amount:   amount,
		Category: category,
		Date:     created,
	}
	s.records = append([]expense.Record{rec}, s.records...)

	logger.Info("expense created",
		zap.Int64("id", rec.ID),
		zap.Float64("amount", rec.Amount),
		zap.String("category", rec.Category))
	return rec, s.persist(ctx, "create")
}

// nextID uses the creation time in milliseconds, bumped past the largest
// existing id when the clock has not moved on.
func (s *Store) nextID(created time.Time) int64 {
	id := created.UnixMilli()
	for _, rec := range s.records {
		if rec.ID >= id {
			id = rec.ID + 1
		}
	}
	return id
}

func (s *Store) UpdateAmount(ctx context.Context, id int64, amount float64) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return &customerr.NotFoundError{ID: id}
	}
	if err := validateAmount(amount); err != nil {
		return err
	}

	s.records[idx].Amount = amount

	logger.Info("expense updated", zap.Int64("id", id), zap.Float64("amount", amount))
	return s.persist(ctx, "update")
}

// Delete fails with *customerr.NotFoundError for an unknown id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return &customerr.NotFoundError{ID: id}
	}

	recs := make([]expense.Record, 0, len(s.records)-1)
	recs = append(recs, s.records[:idx]...)
	s.records = append(recs, s.records[idx+1:]...)

	logger.Info("expense deleted", zap.Int64("id", id))
	return s.persist(ctx, "delete")
}

// ResetAll empties the collection and removes it from storage.
func (s *Store) ResetAll(ctx context.Context) error {
	s.records = []expense.Record{}

	logger.Info("all expenses reset")
	if err := s.storage.Clear(ctx); err != nil {
		logger.Error("failed to clear storage", zap.Error(err))
		return &customerr.PersistError{Op: "reset", Err: err}
	}
	return nil
}

func (s *Store) Get(id int64) (expense.Record, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return expense.Record{}, false
	}
	return s.records[idx], true
}

// List returns a copy of all records, newest first.
func (s *Store) List() []expense.Record {
	return append([]expense.Record(nil), s.records...)
}

func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) indexOf(id int64) int {
	for i, rec := range s.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context, op string) error {
	if err := s.storage.Save(ctx, s.List()); err != nil {
		logger.Error("failed to persist expenses", zap.String("op", op), zap.Error(err))
		return &customerr.PersistError{Op: op, Err: err}
	}
	return nil
}
