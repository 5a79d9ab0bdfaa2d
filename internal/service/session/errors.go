package session

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrConflict        = errors.New("session already exists")
)
