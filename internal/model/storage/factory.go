package storage

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	BackendMemory    = "memory"
	BackendFile      = "file"
	BackendSQLite    = "sqlite"
	BackendPostgres  = "postgres"
	BackendMemcached = "memcached"
)

var Backends = []string{BackendMemory, BackendFile, BackendSQLite, BackendPostgres, BackendMemcached}

type backendConfig interface {
	Backend() string
	Dir() string
	SQLitePath() string
}

// NewSlot opens the slot backend selected in config.
func NewSlot(cfg backendConfig, pg postgresConfig, mc memcacheConfig) (Slot, error) {
	logger.Info("opening storage", zap.String("backend", cfg.Backend()))

	switch cfg.Backend() {
	case BackendMemory:
		return NewInMemSlot(), nil
	case BackendFile:
		slot, err := NewFileSlot(cfg.Dir())
		if err != nil {
			return nil, errors.Wrap(err, "open file storage")
		}
		return slot, nil
	case BackendSQLite:
		slot, err := NewSQLiteSlot(cfg.SQLitePath())
		if err != nil {
			return nil, errors.Wrap(err, "open sqlite storage")
		}
		return slot, nil
	case BackendPostgres:
		slot, err := NewPostgresSlot(pg)
		if err != nil {
			return nil, errors.Wrap(err, "open postgres storage")
		}
		return slot, nil
	case BackendMemcached:
		slot, err := NewMemcacheSlot(mc)
		if err != nil {
			return nil, errors.Wrap(err, "open memcached storage")
		}
		return slot, nil
	}
	return nil, errors.Errorf("unknown storage backend %q", cfg.Backend())
}
