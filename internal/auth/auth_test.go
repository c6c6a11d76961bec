package auth

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Generate(&UserContext{UserID: 7, Username: "admin1", Role: model.RoleAdmin})
	require.NoError(t, err)

	u, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.UserID)
	assert.Equal(t, "admin1", u.Username)
	assert.Equal(t, model.RoleAdmin, u.Role)
}

func TestValidate_RejectsForeignSecretAndExpiry(t *testing.T) {
	token, err := NewTokenIssuer("other", time.Hour).Generate(&UserContext{UserID: 1})
	require.NoError(t, err)
	_, err = NewTokenIssuer("secret", time.Hour).Validate(token)
	assert.Error(t, err)

	expired, err := NewTokenIssuer("secret", -time.Minute).Generate(&UserContext{UserID: 1})
	require.NoError(t, err)
	_, err = NewTokenIssuer("secret", time.Hour).Validate(expired)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("adminpass123")
	require.NoError(t, err)
	assert.NotEqual(t, "adminpass123", hash)
	assert.True(t, CheckPassword(hash, "adminpass123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestActorID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, model.SystemUserID, ActorID(ctx))

	ctx = WithUser(ctx, &UserContext{UserID: 2, Role: model.RoleUser})
	assert.Equal(t, int64(2), ActorID(ctx))
	assert.Equal(t, model.RoleUser, GetUser(ctx).Role)
}
