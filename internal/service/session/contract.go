//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"

	"dashboard/internal/entities"
)

type Backend interface {
	SignIn(ctx context.Context, credentials entities.Credentials) (*entities.AuthGrant, error)
	SignUp(ctx context.Context, registration entities.Registration) (*entities.AuthGrant, error)
}

type Repository interface {
	Create(ctx context.Context, sessionEntity entities.Session) (*entities.Session, error)
	GetByID(ctx context.Context, id string) (*entities.Session, error)
	Delete(ctx context.Context, id string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Views interface {
	Drop(sessionID string)
}

type Validator interface {
	Struct(form any) error
}
