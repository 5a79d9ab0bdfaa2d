// Package session заменяет флаги браузерного хранилища явной сессией:
// вход создает запись, каждый запрос читает ее, выход удаляет.
package session

import (
	"context"
	"fmt"
	"strings"

	"dashboard/internal/entities"
	"github.com/google/uuid"
)

type Service struct {
	backend    Backend
	repository Repository
	txManager  TxManager
	views      Views
	validator  Validator
	newID      func() string
}

func New(backend Backend, repository Repository, txManager TxManager, views Views, validator Validator) *Service {
	return &Service{
		backend:    backend,
		repository: repository,
		txManager:  txManager,
		views:      views,
		validator:  validator,
		newID:      uuid.NewString,
	}
}

func (s *Service) SignIn(ctx context.Context, credentials entities.Credentials) (*entities.Session, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)

	err := s.validator.Struct(signInForm{
		Email:    credentials.Email,
		Password: credentials.Password,
	})
	if err != nil {
		return nil, err
	}

	grant, err := s.backend.SignIn(ctx, credentials)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	return s.open(ctx, grant)
}

func (s *Service) SignUp(ctx context.Context, registration entities.Registration) (*entities.Session, error) {
	registration.Email = strings.TrimSpace(registration.Email)

	err := s.validator.Struct(signUpForm{
		Name:     strings.TrimSpace(registration.Name),
		Email:    registration.Email,
		Phone:    strings.TrimSpace(registration.Phone),
		Password: registration.Password,
	})
	if err != nil {
		return nil, err
	}

	grant, err := s.backend.SignUp(ctx, registration)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}

	return s.open(ctx, grant)
}

// Load поднимает сессию по идентификатору, выданному при входе.
func (s *Service) Load(ctx context.Context, id string) (*entities.Session, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrSessionNotFound
	}

	sess, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

// SignOut закрывает представление сессии и удаляет ее из хранилища.
// Ответы бэкенда, пришедшие после выхода, уже никуда не применяются.
func (s *Service) SignOut(ctx context.Context, id string) error {
	s.views.Drop(id)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func (s *Service) open(ctx context.Context, grant *entities.AuthGrant) (*entities.Session, error) {
	var created *entities.Session

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, entities.Session{
			ID:          s.newID(),
			AccessToken: grant.AccessToken,
			IsAdmin:     grant.IsAdmin,
			UserID:      grant.UserID,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return created, nil
}
