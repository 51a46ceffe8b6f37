package db

import (
	"context"
	"embed"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/service"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
	"github.com/The-Gleb/roundbuy_admin/pkg/client/postgresql"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ service.SessionStorage = new(sessionStorage)

type sessionStorage struct {
	client postgresql.Client
}

func NewSessionStorage(client postgresql.Client) *sessionStorage {
	return &sessionStorage{client: client}
}

//go:embed migration/*.sql
var migrationsDir embed.FS

func RunMigrations(dsn string) error {

	d, err := iofs.New(migrationsDir, "migration")
	if err != nil {
		slog.Error(err.Error())
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dsn)
	if err != nil {
		slog.Error(err.Error())
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}
	if err := m.Up(); err != nil {
		if !stdErrors.Is(err, migrate.ErrNoChange) {
			slog.Error(err.Error())
			return fmt.Errorf("failed to apply migrations to the DB: %w", err)
		}
	}
	return nil
}

func (s *sessionStorage) CreateSession(ctx context.Context, session entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.WrapIntoDomainError(err, errors.ErrDB, "marshal session")
	}

	_, err = s.client.Exec(
		ctx,
		`INSERT INTO sessions (id, email, data, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5);`,
		session.ID, session.Email, data, session.CreatedAt, session.ExpiresAt,
	)
	if err != nil {
		slog.Error("error inserting session",
			"error", err,
		)
		var pgErr *pgconn.PgError
		if stdErrors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errors.NewDomainError(errors.ErrAlreadyExists, "session %s", session.ID)
		}
		return errors.NewDomainError(errors.ErrDB, "")
	}

	return nil
}

func (s *sessionStorage) GetSession(ctx context.Context, id string) (entity.Session, error) {
	row := s.client.QueryRow(
		ctx,
		`SELECT data
		FROM sessions
		WHERE id = $1;`,
		id,
	)

	var data []byte
	err := row.Scan(&data)
	if err != nil {
		if stdErrors.Is(err, pgx.ErrNoRows) {
			return entity.Session{}, errors.NewDomainError(errors.ErrNoDataFound, "session")
		}
		slog.Error("error scanning session",
			"error", err,
		)
		return entity.Session{}, errors.NewDomainError(errors.ErrDB, "")
	}

	return decodeSession(data)
}

func (s *sessionStorage) UpdateSession(ctx context.Context, session entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.WrapIntoDomainError(err, errors.ErrDB, "marshal session")
	}

	c, err := s.client.Exec(
		ctx,
		`UPDATE sessions
		SET data = $2, expires_at = $3
		WHERE id = $1;`,
		session.ID, data, session.ExpiresAt,
	)
	if err != nil {
		slog.Error("error updating session",
			"error", err,
		)
		return errors.NewDomainError(errors.ErrDB, "")
	}
	if c.RowsAffected() == 0 {
		return errors.NewDomainError(errors.ErrNoDataFound, "session")
	}

	return nil
}

func (s *sessionStorage) DeleteSession(ctx context.Context, id string) error {
	c, err := s.client.Exec(
		ctx,
		`DELETE FROM sessions
		WHERE id = $1;`,
		id,
	)
	if err != nil {
		slog.Error("error deleting session",
			"error", err,
		)
		return errors.NewDomainError(errors.ErrDB, "")
	}
	if c.RowsAffected() == 0 {
		return errors.NewDomainError(errors.ErrNoDataFound, "session")
	}

	return nil
}

// DeleteExpiredSessions removes sessions that ended before now and reports how many went.
func (s *sessionStorage) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	c, err := s.client.Exec(
		ctx,
		`DELETE FROM sessions
		WHERE expires_at <= $1;`,
		now,
	)
	if err != nil {
		slog.Error("error deleting expired sessions",
			"error", err,
		)
		return 0, errors.NewDomainError(errors.ErrDB, "")
	}

	return c.RowsAffected(), nil
}

func decodeSession(data []byte) (entity.Session, error) {
	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		slog.Error("error decoding session",
			"error", err,
		)
		return entity.Session{}, errors.WrapIntoDomainError(err, errors.ErrDB, "decode session")
	}
	return session, nil
}
