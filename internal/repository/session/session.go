package session

import (
	"context"
	"errors"
	"fmt"

	"dashboard/internal/entities"
	"dashboard/internal/repository"
	"dashboard/internal/service/session"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const table = "sessions"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, sessionEntity entities.Session) (*entities.Session, error) {
	model, err := FromDomain(sessionEntity)
	if err != nil {
		return nil, fmt.Errorf("session repository create: %w", err)
	}

	query, args, err := qb.
		Insert(table).
		Columns("id", "access_token", "is_admin", "user_id").
		Values(model.ID, model.AccessToken, model.IsAdmin, model.UserID).
		Suffix("RETURNING id, access_token, is_admin, user_id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected session repository create error: %w", err)
	}

	var created SessionDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&created.ID,
			&created.AccessToken,
			&created.IsAdmin,
			&created.UserID,
			&created.CreatedAt,
		)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, session.ErrConflict
		}
		return nil, fmt.Errorf("unexpected session repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Session, error) {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, session.ErrSessionNotFound
	}

	query, args, err := qb.
		Select("id", "access_token", "is_admin", "user_id", "created_at").
		From(table).
		Where(sq.Eq{"id": sessionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected session repository getbyid error: %w", err)
	}

	var model SessionDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&model.ID,
			&model.AccessToken,
			&model.IsAdmin,
			&model.UserID,
			&model.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, session.ErrSessionNotFound
		}
		return nil, fmt.Errorf("unexpected session repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

// Delete не считает отсутствие сессии ошибкой: повторный выход безопасен.
func (r *Repository) Delete(ctx context.Context, id string) error {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	query, args, err := qb.
		Delete(table).
		Where(sq.Eq{"id": sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected session repository delete error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected session repository delete error: %w", err)
	}
	return nil
}
