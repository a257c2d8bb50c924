package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest(t *testing.T) {
	t.Run("UnknownAccount", func(t *testing.T) {
		fx := newFixture(t)

		out, err := fx.uc.LoginRequest(context.Background(), LoginRequestInput{Email: "ghost@example.com"})

		require.Nil(t, out)
		assertBusinessError(t, err, "No account found with this email address", goerror.CodeNotFound)
		assert.Empty(t, fx.delivery.sent)
		assert.Zero(t, fx.cache.pendingCount())
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		fx := newFixture(t)

		out, err := fx.uc.LoginRequest(context.Background(), LoginRequestInput{Email: "not-an-email"})

		require.Nil(t, out)
		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeInvalidInput, gerr.Code())
	})

	t.Run("Success", func(t *testing.T) {
		fx := newFixture(t, testUser())

		out, err := fx.uc.LoginRequest(context.Background(), LoginRequestInput{Email: "Camper@Example.com "})

		require.NoError(t, err)
		require.NotNil(t, out)
		assert.NotEmpty(t, out.FlowToken)
		assert.True(t, out.Delivered)

		stored := fx.db.user(7)
		assert.Equal(t, "111111", stored.OTP.Code)
		assert.Equal(t, fx.clock.Now().Add(10*time.Minute), stored.OTP.ExpiresAt)

		require.Len(t, fx.delivery.sent, 1)
		assert.Equal(t, "camper@example.com", fx.delivery.last().email)
		assert.Equal(t, "111111", fx.delivery.last().code)

		assert.Equal(t, 1, fx.cache.pendingCount())
	})

	t.Run("FreshCodePerRequest", func(t *testing.T) {
		fx := newFixture(t, testUser())

		first, err := fx.uc.LoginRequest(context.Background(), LoginRequestInput{Email: "camper@example.com"})
		require.NoError(t, err)
		second, err := fx.uc.LoginRequest(context.Background(), LoginRequestInput{Email: "camper@example.com"})
		require.NoError(t, err)

		assert.NotEqual(t, first.FlowToken, second.FlowToken)
		assert.Equal(t, "222222", fx.db.user(7).OTP.Code)
	})

	t.Run("DeliveryFailureKeepsFlow", func(t *testing.T) {
		fx := newFixture(t, testUser())
		fx.delivery.err = errors.New("smtp unreachable")

		out, err := fx.uc.LoginRequest(context.Background(), LoginRequestInput{Email: "camper@example.com"})

		require.NoError(t, err)
		require.NotNil(t, out)
		assert.False(t, out.Delivered)
		assert.NotEmpty(t, out.FlowToken)

		// code and pending slot survive so a resend can still succeed
		assert.Equal(t, "111111", fx.db.user(7).OTP.Code)
		assert.Equal(t, 1, fx.cache.pendingCount())
	})
}
