// Package sqlite implementa los repositorios sobre un archivo SQLite (driver modernc, sin cgo).
// Es el backend por defecto en desarrollo y en las pruebas; producción usa postgres.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Store conexión compartida por los repositorios SQLite.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path. Activa claves foráneas y un busy_timeout
// para que escrituras concurrentes esperen en lugar de fallar con SQLITE_BUSY.
func Open(path string) (*Store, error) {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "busy_timeout(5000)")
	dsn := "file:" + path + "?" + q.Encode()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifica que la conexión siga viva (usado por /health).
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Items repositorio de artículos sobre esta conexión.
func (s *Store) Items() *InventoryItemRepo { return &InventoryItemRepo{db: s.db} }

// Users repositorio de usuarios sobre esta conexión.
func (s *Store) Users() *UserRepo { return &UserRepo{db: s.db} }

const timeLayout = time.RFC3339Nano

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// isUniqueViolation verifica si un error es una violación de UNIQUE.
func isUniqueViolation(err error) bool {
	var sqlErr *moderncsqlite.Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			sqlErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
