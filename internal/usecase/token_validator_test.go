//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/jwt"
	"travel-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("validator-test-secret", time.Minute, time.Hour)
	v := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("アクセストークンを受け付ける", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleOperator)
		require.NoError(t, err)

		id, role, err := v.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, userID, id)
		assert.Equal(t, user.RoleOperator, role)
	})

	t.Run("リフレッシュトークンは拒否", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleCustomer)
		require.NoError(t, err)

		_, _, err = v.ValidateToken(token)

		assert.ErrorIs(t, err, usecase.ErrNotAccessToken)
	})

	t.Run("不正なトークン", func(t *testing.T) {
		_, _, err := v.ValidateToken("not-a-token")

		assert.Error(t, err)
	})
}
