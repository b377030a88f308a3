package storage

import (
	"context"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

const memcacheKeyPrefix = "expense-tracker:"

type memcacheConfig interface {
	Hosts() []string
}

// MemcacheSlot is volatile: values disappear on eviction or restart.
type MemcacheSlot struct {
	client *memcache.Client
}

func NewMemcacheSlot(config memcacheConfig) (*MemcacheSlot, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	if err := mc.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping memcached")
	}
	return &MemcacheSlot{mc}, nil
}

func formatKey(key string) string {
	return memcacheKeyPrefix + key
}

func (s *MemcacheSlot) Get(_ context.Context, key string) ([]byte, bool, error) {
	item, err := s.client.Get(formatKey(key))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "get slot")
	}
	return item.Value, true, nil
}

func (s *MemcacheSlot) Put(_ context.Context, key string, value []byte) error {
	return errors.Wrap(s.client.Set(&memcache.Item{
		Key:   formatKey(key),
		Value: value,
	}), "put slot")
}

func (s *MemcacheSlot) Remove(_ context.Context, key string) error {
	err := s.client.Delete(formatKey(key))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return errors.Wrap(err, "remove slot")
	}
	return nil
}

func (s *MemcacheSlot) Close() error {
	return nil
}
