package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/The-Gleb/roundbuy_admin/internal/domain/entity"
	"github.com/The-Gleb/roundbuy_admin/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type SessionStorage interface {
	CreateSession(ctx context.Context, session entity.Session) error
	GetSession(ctx context.Context, id string) (entity.Session, error)
	UpdateSession(ctx context.Context, session entity.Session) error
	DeleteSession(ctx context.Context, id string) error
}

type AuthAPI interface {
	Login(ctx context.Context, dto entity.LoginDTO) (entity.LoginResult, error)
}

type sessionService struct {
	storage  SessionStorage
	api      AuthAPI
	ttl      time.Duration
	validate *validator.Validate
	now      func() time.Time
}

func NewSessionService(storage SessionStorage, api AuthAPI, ttl time.Duration) *sessionService {
	return &sessionService{
		storage:  storage,
		api:      api,
		ttl:      ttl,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

func (service *sessionService) Login(ctx context.Context, dto entity.LoginDTO) (entity.Session, error) {
	if err := service.validate.Struct(dto); err != nil {
		return entity.Session{}, errors.NewDomainError(errors.ErrValidation, "enter a valid email and password")
	}

	res, err := service.api.Login(ctx, dto)
	if err != nil {
		return entity.Session{}, err
	}

	now := service.now().UTC()
	token := res.BearerToken()

	expiresAt := now.Add(service.ttl)
	if exp, ok := tokenExpiry(token); ok && exp.Before(expiresAt) {
		expiresAt = exp.UTC()
	}
	if !expiresAt.After(now) {
		return entity.Session{}, errors.NewDomainError(errors.ErrUnauthorized, "the backend issued an expired token")
	}

	email := res.User.Email
	if email == "" {
		email = dto.Email
	}

	session := entity.Session{
		ID:          uuid.NewString(),
		AccessToken: token,
		Email:       email,
		Name:        res.User.FullName,
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
		Screens:     map[string]entity.ScreenSnapshot{},
	}
	if err := service.storage.CreateSession(ctx, session); err != nil {
		return entity.Session{}, err
	}

	slog.Info("admin signed in", "email", session.Email, "expires_at", session.ExpiresAt)
	return session, nil
}

// CheckSession returns the live session with the given id. Expired sessions are removed.
func (service *sessionService) CheckSession(ctx context.Context, id string) (entity.Session, error) {
	if id == "" {
		return entity.Session{}, errors.NewDomainError(errors.ErrUnauthorized, "")
	}

	session, err := service.storage.GetSession(ctx, id)
	if err != nil {
		if errors.Code(err) == errors.ErrNoDataFound {
			return entity.Session{}, errors.NewDomainError(errors.ErrUnauthorized, "")
		}
		return entity.Session{}, err
	}

	if session.Expired(service.now()) {
		if err := service.storage.DeleteSession(ctx, id); err != nil {
			slog.Error("error deleting expired session", "error", err)
		}
		return entity.Session{}, errors.NewDomainError(errors.ErrSessionExpired, "")
	}

	return session, nil
}

func (service *sessionService) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	err := service.storage.DeleteSession(ctx, id)
	if err != nil && errors.Code(err) != errors.ErrNoDataFound {
		return err
	}
	return nil
}

// tokenExpiry reads the exp claim of a JWT without verifying it: the backend owns the key,
// the console only needs to know when to stop using the token.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// sessionMemory keeps list snapshots inside the signed-in session.
type sessionMemory struct {
	storage SessionStorage
}

func (m sessionMemory) Recall(ctx context.Context, screen string) (entity.ScreenSnapshot, bool) {
	session, ok := entity.SessionFromContext(ctx)
	if !ok {
		return entity.ScreenSnapshot{}, false
	}
	snap, ok := session.Screens[screen]
	return snap, ok
}

func (m sessionMemory) Remember(ctx context.Context, screen string, snapshot entity.ScreenSnapshot) error {
	current, ok := entity.SessionFromContext(ctx)
	if !ok {
		return nil
	}

	session, err := m.storage.GetSession(ctx, current.ID)
	if err != nil {
		return err
	}
	if session.Screens == nil {
		session.Screens = map[string]entity.ScreenSnapshot{}
	}
	session.Screens[screen] = snapshot
	return m.storage.UpdateSession(ctx, session)
}
