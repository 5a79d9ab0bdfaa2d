package session

import (
	"fmt"

	"dashboard/internal/entities"
	"github.com/google/uuid"
)

func ToDomain(s *SessionDB) *entities.Session {
	if s == nil {
		return nil
	}

	return &entities.Session{
		ID:          s.ID.String(),
		AccessToken: s.AccessToken,
		IsAdmin:     s.IsAdmin,
		UserID:      s.UserID,
		CreatedAt:   s.CreatedAt,
	}
}

func FromDomain(s entities.Session) (*SessionDB, error) {
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return nil, fmt.Errorf("parse session id: %w", err)
	}

	return &SessionDB{
		ID:          id,
		AccessToken: s.AccessToken,
		IsAdmin:     s.IsAdmin,
		UserID:      s.UserID,
		CreatedAt:   s.CreatedAt,
	}, nil
}
