package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"

	// postgres driver
	_ "github.com/lib/pq"
	// sqlite driver
	_ "modernc.org/sqlite"
)

const (
	dsnTemplate = "user=%s password=%s host=%s port=%d dbname=%s sslmode=%s"
	slotsTable  = "slots"

	createSlotsTable = `CREATE TABLE IF NOT EXISTS slots (
	slot_key   TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`
	upsertSuffix = "ON CONFLICT(slot_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

type postgresConfig interface {
	Host() string
	Port() int
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

// SQLSlot keeps slot values in one table; it works with postgres and sqlite.
type SQLSlot struct {
	db  *sql.DB
	sql sq.StatementBuilderType
}

func NewPostgresSlot(config postgresConfig) (*SQLSlot, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Port(),
		config.Database(),
		config.SSLMode()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return newSQLSlot(db, sq.Dollar)
}

func NewSQLiteSlot(path string) (*SQLSlot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create db directory")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open sqlite database")
	}
	// one writer at a time
	db.SetMaxOpenConns(1)
	return newSQLSlot(db, sq.Question)
}

func newSQLSlot(db *sql.DB, placeholders sq.PlaceholderFormat) (*SQLSlot, error) {
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if _, err := db.Exec(createSlotsTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create slots table")
	}
	return &SQLSlot{
		db:  db,
		sql: sq.StatementBuilder.PlaceholderFormat(placeholders),
	}, nil
}

func (s *SQLSlot) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := s.sql.Select("value").
		From(slotsTable).
		Where(sq.Eq{"slot_key": key})

	var value string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "get slot")
	}
	return []byte(value), true, nil
}

func (s *SQLSlot) Put(ctx context.Context, key string, value []byte) error {
	query := s.sql.Insert(slotsTable).
		Columns("slot_key", "value", "updated_at").
		Values(key, string(value), time.Now().UTC()).
		Suffix(upsertSuffix)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "put slot")
}

func (s *SQLSlot) Remove(ctx context.Context, key string) error {
	query := s.sql.Delete(slotsTable).
		Where(sq.Eq{"slot_key": key})

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "remove slot")
}

func (s *SQLSlot) Close() error {
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close database", zap.Error(err))
		return err
	}
	return nil
}
