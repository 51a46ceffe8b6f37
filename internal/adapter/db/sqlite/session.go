package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/service"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var _ service.SessionStorage = new(sessionStorage)

//go:embed schema.sql
var schema string

type sessionStorage struct {
	db *sql.DB
}

// Open creates the database file if needed and applies the schema.
func Open(path string) (*sessionStorage, error) {
	dsn := path
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}

	return &sessionStorage{db: db}, nil
}

func (s *sessionStorage) Close() error {
	return s.db.Close()
}

func (s *sessionStorage) CreateSession(ctx context.Context, session entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.WrapIntoDomainError(err, errors.ErrDB, "marshal session")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, email, data, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?)
	`, session.ID, session.Email, string(data), session.CreatedAt.Unix(), session.ExpiresAt.Unix())
	if err != nil {
		slog.Error("error inserting session",
			"error", err,
		)
		var sqliteErr *sqlite.Error
		if stdErrors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return errors.NewDomainError(errors.ErrAlreadyExists, "session %s", session.ID)
		}
		return errors.NewDomainError(errors.ErrDB, "")
	}

	return nil
}

func (s *sessionStorage) GetSession(ctx context.Context, id string) (entity.Session, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM sessions WHERE id = ?`, id).Scan(&data)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return entity.Session{}, errors.NewDomainError(errors.ErrNoDataFound, "session")
		}
		slog.Error("error scanning session",
			"error", err,
		)
		return entity.Session{}, errors.NewDomainError(errors.ErrDB, "")
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		slog.Error("error decoding session",
			"error", err,
		)
		return entity.Session{}, errors.WrapIntoDomainError(err, errors.ErrDB, "decode session")
	}

	return session, nil
}

func (s *sessionStorage) UpdateSession(ctx context.Context, session entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.WrapIntoDomainError(err, errors.ErrDB, "marshal session")
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE sessions SET data = ?, expires_at = ? WHERE id = ?
	`, string(data), session.ExpiresAt.Unix(), session.ID)
	if err != nil {
		slog.Error("error updating session",
			"error", err,
		)
		return errors.NewDomainError(errors.ErrDB, "")
	}

	return affectedOne(res)
}

func (s *sessionStorage) DeleteSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		slog.Error("error deleting session",
			"error", err,
		)
		return errors.NewDomainError(errors.ErrDB, "")
	}

	return affectedOne(res)
}

// DeleteExpiredSessions removes sessions that ended before now and reports how many went.
func (s *sessionStorage) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, now.Unix())
	if err != nil {
		slog.Error("error deleting expired sessions",
			"error", err,
		)
		return 0, errors.NewDomainError(errors.ErrDB, "")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, errors.WrapIntoDomainError(err, errors.ErrDB, "rows affected")
	}
	return n, nil
}

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.WrapIntoDomainError(err, errors.ErrDB, "rows affected")
	}
	if n == 0 {
		return errors.NewDomainError(errors.ErrNoDataFound, "session")
	}
	return nil
}
