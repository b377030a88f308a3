package storage

import "context"

type InMemSlot struct {
	values map[string][]byte
}

func NewInMemSlot() *InMemSlot {
	return &InMemSlot{values: make(map[string][]byte)}
}

func (s *InMemSlot) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *InMemSlot) Put(_ context.Context, key string, value []byte) error {
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *InMemSlot) Remove(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func (s *InMemSlot) Close() error {
	return nil
}
