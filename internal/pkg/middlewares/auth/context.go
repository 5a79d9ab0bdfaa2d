package auth

import (
	"context"

	"dashboard/internal/entities"
)

type sessionKey struct{}

func WithSession(ctx context.Context, sess entities.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

func SessionFromContext(ctx context.Context) (entities.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(entities.Session)
	return sess, ok
}
