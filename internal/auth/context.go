package auth

import (
	"context"

	"github.com/fekuna/omnipos-scm-service/internal/model"
)

type UserContext struct {
	UserID   int64
	Username string
	Role     string
}

type ctxKey struct{}

func WithUser(ctx context.Context, u *UserContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// GetUser returns the authenticated user, or nil for system callers such as
// the order listener and the CLI.
func GetUser(ctx context.Context) *UserContext {
	if u, ok := ctx.Value(ctxKey{}).(*UserContext); ok {
		return u
	}
	return nil
}

// ActorID is the user id recorded in audit logs for mutations made with ctx.
func ActorID(ctx context.Context) int64 {
	if u := GetUser(ctx); u != nil && u.UserID > 0 {
		return u.UserID
	}
	return model.SystemUserID
}
