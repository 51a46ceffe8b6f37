package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
	"github.com/The-Gleb/roundbuy_admin/pkg/client/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest"
	"github.com/ory/dockertest/docker"
	"github.com/stretchr/testify/require"
)

var dsn string

func TestMain(m *testing.M) {
	purge, err := createTestPostgresContainer()
	if err != nil {
		slog.Warn("postgres container unavailable, session storage tests will be skipped", "error", err)
	}
	code := m.Run()
	if purge != nil {
		purge()
	}
	os.Exit(code)
}

func createTestPostgresContainer() (func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, err
	}

	pg, err := pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        "alpine",
			Env: []string{
				"POSTGRES_USER=postgres",
				"POSTGRES_PASSWORD=postgres",
			},
			ExposedPorts: []string{"5432"},
		},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)
	if err != nil {
		return nil, err
	}
	purge := func() {
		if err := pool.Purge(pg); err != nil {
			slog.Error("failed to purge the postgres container", "error", err)
		}
	}

	url := fmt.Sprintf("postgres://postgres:postgres@%s/postgres?sslmode=disable", pg.GetHostPort("5432/tcp"))

	pool.MaxWait = 30 * time.Second
	err = pool.Retry(func() error {
		conn, err := pgx.Connect(context.Background(), url)
		if err != nil {
			return fmt.Errorf("failed to connect to the DB: %w", err)
		}
		return conn.Close(context.Background())
	})
	if err != nil {
		purge()
		return nil, err
	}

	if err := RunMigrations(url); err != nil {
		purge()
		return nil, err
	}

	dsn = url
	return purge, nil
}

func newTestStorage(t *testing.T) *sessionStorage {
	t.Helper()
	if dsn == "" {
		t.Skip("postgres is not available")
	}

	client, err := postgresql.NewClient(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	_, err = client.Exec(context.Background(), `TRUNCATE TABLE sessions`)
	require.NoError(t, err)

	return NewSessionStorage(client)
}

func testSession(id string) entity.Session {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return entity.Session{
		ID:          id,
		AccessToken: "token-" + id,
		Email:       "admin@roundbuy.com",
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
	}
}

func TestSessionStorage_lifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	session := testSession("s1")
	require.NoError(t, s.CreateSession(ctx, session))

	err := s.CreateSession(ctx, session)
	require.Equal(t, errors.ErrAlreadyExists, errors.Code(err))

	got, err := s.GetSession(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, session.AccessToken, got.AccessToken)
	require.True(t, session.ExpiresAt.Equal(got.ExpiresAt))

	session.Screens = map[string]entity.ScreenSnapshot{
		"users": {Query: "page=2", Items: []entity.Record{{"id": "7"}}, Total: 21},
	}
	require.NoError(t, s.UpdateSession(ctx, session))

	got, err = s.GetSession(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "page=2", got.Screens["users"].Query)
	require.Equal(t, 21, got.Screens["users"].Total)

	require.NoError(t, s.DeleteSession(ctx, "s1"))

	_, err = s.GetSession(ctx, "s1")
	require.Equal(t, errors.ErrNoDataFound, errors.Code(err))

	err = s.UpdateSession(ctx, session)
	require.Equal(t, errors.ErrNoDataFound, errors.Code(err))

	err = s.DeleteSession(ctx, "s1")
	require.Equal(t, errors.ErrNoDataFound, errors.Code(err))
}

func TestSessionStorage_DeleteExpiredSessions(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	live := testSession("live")
	stale := testSession("stale")
	stale.ExpiresAt = time.Now().Add(-time.Minute)

	require.NoError(t, s.CreateSession(ctx, live))
	require.NoError(t, s.CreateSession(ctx, stale))

	n, err := s.DeleteExpiredSessions(ctx, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = s.GetSession(ctx, "live")
	require.NoError(t, err)
}
