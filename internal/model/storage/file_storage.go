package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const fileExt = ".json"

// FileSlot stores each key as <dir>/<key>.json. Writes go through a temp file
// and a rename so a crash never leaves a half-written value.
type FileSlot struct {
	dir string
}

func NewFileSlot(dir string) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage dir")
	}
	return &FileSlot{dir: dir}, nil
}

func (s *FileSlot) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", errors.Errorf("invalid slot key %q", key)
	}
	return filepath.Join(s.dir, key+fileExt), nil
}

func (s *FileSlot) Get(_ context.Context, key string) ([]byte, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "read slot")
	}
	return data, true, nil
}

func (s *FileSlot) Put(_ context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err = tmp.Write(value); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write slot")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "write slot")
	}
	return errors.Wrap(os.Rename(tmp.Name(), p), "replace slot")
}

func (s *FileSlot) Remove(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove slot")
	}
	return nil
}

func (s *FileSlot) Close() error {
	return nil
}
