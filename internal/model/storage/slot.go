package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

// Slot is a key-value backend holding whole serialized values.
type Slot interface {
	// Get reports found=false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// RecordStorage keeps the expense collection in a single slot key and
// overwrites it on every save.
type RecordStorage struct {
	slot Slot
	key  string
	loc  *time.Location
}

func NewRecordStorage(slot Slot, key string, loc *time.Location) *RecordStorage {
	if loc == nil {
		loc = time.Local
	}
	return &RecordStorage{slot: slot, key: key, loc: loc}
}

func (s *RecordStorage) Load(ctx context.Context) ([]expense.Record, error) {
	data, found, err := s.slot.Get(ctx, s.key)
	if err != nil {
		return nil, errors.Wrap(err, "load records")
	}
	if !found {
		logger.Info("no stored records", zap.String("key", s.key))
		return []expense.Record{}, nil
	}
	recs, err := DecodeRecords(data, s.loc)
	if err != nil {
		return nil, errors.Wrap(err, "load records")
	}
	logger.Info("records loaded", zap.String("key", s.key), zap.Int("count", len(recs)))
	return recs, nil
}

func (s *RecordStorage) Save(ctx context.Context, recs []expense.Record) error {
	data, err := EncodeRecords(recs)
	if err != nil {
		return err
	}
	return errors.Wrap(s.slot.Put(ctx, s.key, data), "save records")
}

func (s *RecordStorage) Clear(ctx context.Context) error {
	return errors.Wrap(s.slot.Remove(ctx, s.key), "clear records")
}
