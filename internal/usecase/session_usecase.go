package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/santluz/Oficina-sub000/internal/domain/entities"
	"github.com/santluz/Oficina-sub000/internal/usecase/interfaces"
)

var (
	ErrNoActiveSession   = errors.New("no active session")
	ErrInvalidLoginEmail = errors.New("invalid login email")
)

// ISessionUseCase manages the single-tenant session marker.
//
// Login is placeholder authentication: no credential is verified and the
// session identity is always the fixed local id, never derived from the
// email.

type ISessionUseCase interface {
	Login(ctx context.Context, email, name string) (entities.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (entities.Session, error)
}

type SessionUseCase struct {
	repo interfaces.ISessionRepository
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(repo interfaces.ISessionRepository) *SessionUseCase {
	return &SessionUseCase{repo: repo}
}

func (u *SessionUseCase) Login(ctx context.Context, email, name string) (entities.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Session{}, ErrInvalidLoginEmail
	}

	s := entities.Session{
		ID:    entities.LocalSessionID,
		Email: email,
		Name:  strings.TrimSpace(name),
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.Session{}, err
	}
	return s, nil
}

func (u *SessionUseCase) Logout(ctx context.Context) error {
	return u.repo.Clear(ctx)
}

func (u *SessionUseCase) Current(ctx context.Context) (entities.Session, error) {
	s, found, err := u.repo.Get(ctx)
	if err != nil {
		return entities.Session{}, err
	}
	if !found {
		return entities.Session{}, ErrNoActiveSession
	}
	return s, nil
}
