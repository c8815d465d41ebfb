package jwtservice

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	user := &entity.User{
		ID:    uuid.New(),
		Email: "foo@bar.com",
		Name:  "Foo",
	}
	s := New("secret", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		token, err := s.GenerateToken(user)
		require.NoError(t, err)
		claims, err := s.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})
	t.Run("default ttl", func(t *testing.T) {
		assert.Equal(t, DefaultTokenTTL, New("secret", 0).ttl)
	})
	t.Run("wrong secret", func(t *testing.T) {
		token, err := New("other", time.Hour).GenerateToken(user)
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		past := New("secret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := past.GenerateToken(user)
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
