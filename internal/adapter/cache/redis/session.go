package cache

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/domain/service"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
	"github.com/redis/go-redis/v9"
)

var _ service.SessionStorage = new(redisSessions)

const keyPrefix = "roundbuy_admin:session:"

// minTTL keeps a session that is about to expire addressable until the next request sees it as expired.
const minTTL = time.Second

type redisSessions struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisSessions(client *redis.Client) *redisSessions {
	return &redisSessions{client: client, now: time.Now}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (c *redisSessions) ttl(session entity.Session) time.Duration {
	if session.ExpiresAt.IsZero() {
		return 0
	}
	ttl := session.ExpiresAt.Sub(c.now())
	if ttl < minTTL {
		return minTTL
	}
	return ttl
}

func (c *redisSessions) CreateSession(ctx context.Context, session entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.WrapIntoDomainError(err, errors.ErrDB, "marshal session")
	}

	ok, err := c.client.SetNX(ctx, sessionKey(session.ID), data, c.ttl(session)).Result()
	if err != nil {
		slog.Error("error saving session in redis", "error", err)
		return errors.NewDomainError(errors.ErrDB, "")
	}
	if !ok {
		return errors.NewDomainError(errors.ErrAlreadyExists, "session %s", session.ID)
	}

	return nil
}

func (c *redisSessions) GetSession(ctx context.Context, id string) (entity.Session, error) {
	data, err := c.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if stdErrors.Is(err, redis.Nil) {
			return entity.Session{}, errors.NewDomainError(errors.ErrNoDataFound, "session")
		}
		slog.Error("error getting session from redis", "error", err)
		return entity.Session{}, errors.NewDomainError(errors.ErrDB, "")
	}

	var session entity.Session
	err = json.Unmarshal(data, &session)
	if err != nil {
		slog.Error("error unmarshalling session from redis", "error", err)
		return entity.Session{}, errors.WrapIntoDomainError(err, errors.ErrDB, "decode session")
	}

	return session, nil
}

func (c *redisSessions) UpdateSession(ctx context.Context, session entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return errors.WrapIntoDomainError(err, errors.ErrDB, "marshal session")
	}

	err = c.client.SetArgs(ctx, sessionKey(session.ID), data, redis.SetArgs{
		Mode: "XX",
		TTL:  c.ttl(session),
	}).Err()
	if err != nil {
		if stdErrors.Is(err, redis.Nil) {
			return errors.NewDomainError(errors.ErrNoDataFound, "session")
		}
		slog.Error("error updating session in redis", "error", err)
		return errors.NewDomainError(errors.ErrDB, "")
	}

	return nil
}

func (c *redisSessions) DeleteSession(ctx context.Context, id string) error {
	n, err := c.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		slog.Error("error deleting session from redis", "error", err)
		return errors.NewDomainError(errors.ErrDB, "")
	}
	if n == 0 {
		return errors.NewDomainError(errors.ErrNoDataFound, "session")
	}

	return nil
}
