package session

import (
	"time"

	"github.com/google/uuid"
)

type SessionDB struct {
	ID          uuid.UUID
	AccessToken string
	IsAdmin     bool
	UserID      *int64
	CreatedAt   time.Time
}
