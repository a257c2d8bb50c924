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

func TestLoginResend(t *testing.T) {
	t.Run("NoPendingLogin", func(t *testing.T) {
		fx := newFixture(t, testUser())

		err := fx.uc.LoginResend(context.Background(), LoginResendInput{FlowToken: "bogus"})

		assertBusinessError(t, err, "Please start the login process again", goerror.CodeUnauthorized)
	})

	t.Run("Success", func(t *testing.T) {
		fx := newFixture(t, testUser())

		out, err := fx.uc.LoginRequest(context.Background(), LoginRequestInput{Email: "camper@example.com"})
		require.NoError(t, err)

		fx.clock.advance(5 * time.Minute)

		err = fx.uc.LoginResend(context.Background(), LoginResendInput{FlowToken: out.FlowToken})

		require.NoError(t, err)

		stored := fx.db.user(7)
		assert.Equal(t, "222222", stored.OTP.Code)
		assert.Equal(t, fx.clock.Now().Add(10*time.Minute), stored.OTP.ExpiresAt, "expiry is refreshed")

		require.Len(t, fx.delivery.sent, 2)
		assert.Equal(t, "222222", fx.delivery.last().code)
	})

	t.Run("OldCodeInvalidated", func(t *testing.T) {
		fx := newFixture(t, testUser())

		out, err := fx.uc.LoginRequest(context.Background(), LoginRequestInput{Email: "camper@example.com"})
		require.NoError(t, err)
		require.NoError(t, fx.uc.LoginResend(context.Background(), LoginResendInput{FlowToken: out.FlowToken}))

		_, err = fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: out.FlowToken, Code: "111111"})
		assertBusinessError(t, err, "Invalid code. Please try again", goerror.CodeUnauthorized)

		verified, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: out.FlowToken, Code: "222222"})
		require.NoError(t, err)
		assert.NotEmpty(t, verified.Token)
	})

	t.Run("DeliveryFailure", func(t *testing.T) {
		fx := newFixture(t, testUser())

		out, err := fx.uc.LoginRequest(context.Background(), LoginRequestInput{Email: "camper@example.com"})
		require.NoError(t, err)

		fx.delivery.err = errors.New("smtp unreachable")

		err = fx.uc.LoginResend(context.Background(), LoginResendInput{FlowToken: out.FlowToken})

		assertBusinessError(t, err, "Failed to send code. Please try again", goerror.CodeInternal)

		// the overwrite happened before the failed send
		assert.Equal(t, "222222", fx.db.user(7).OTP.Code)
	})
}
