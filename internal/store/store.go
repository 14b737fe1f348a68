// Package store owns the single connection to the sessions table. It is
// the only place in the process that ever sees a database handle;
// callers get typed rows or errors, never the connection.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	sessionModel "github.com/quddos/vr-rehab-dashboard/internal/model/session"
)

// ErrNotConfigured is returned by every operation when no DSN was
// supplied. No connection attempt is made in that state.
var ErrNotConfigured = errors.New("DATABASE_URL is not configured")

// Store is the session gateway. Construct it once with New and share
// it; the underlying connection is opened lazily on first use and
// cached for the life of the process.
type Store struct {
	dsn string

	once    sync.Once
	db      *gorm.DB
	openErr error
}

// New creates a gateway for the given sqlite DSN. An empty DSN is
// allowed at construction time; operations will fail with
// ErrNotConfigured until one is provided.
func New(dsn string) *Store {
	return &Store{dsn: strings.TrimSpace(dsn)}
}

// conn opens the database on first call and reuses the handle after.
func (s *Store) conn() (*gorm.DB, error) {
	if s.dsn == "" {
		return nil, ErrNotConfigured
	}

	s.once.Do(func() {
		db, err := gorm.Open(sqlite.Open(s.dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
		})
		if err != nil {
			s.openErr = fmt.Errorf("failed to connect to database: %w", err)
			return
		}

		if err := db.AutoMigrate(&sessionModel.Session{}); err != nil {
			s.openErr = fmt.Errorf("failed to run migrations: %w", err)
			return
		}

		s.db = db
	})

	return s.db, s.openErr
}

// Insert persists one validated session as a new row. The store assigns
// the id. Duplicate session_id values are accepted; there is no
// deduplication or idempotency at this layer.
func (s *Store) Insert(ctx context.Context, payload sessionModel.Payload) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	row := payload.Row()
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// List returns every session, newest first: date descending with the
// store-assigned id as tiebreak. The dashboard relies on this exact
// ordering and re-reverses it for chronological charts.
func (s *Store) List(ctx context.Context) ([]sessionModel.Session, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var sessions []sessionModel.Session
	if err := db.WithContext(ctx).Order("date DESC, id DESC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Close closes the underlying connection if one was ever opened.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
