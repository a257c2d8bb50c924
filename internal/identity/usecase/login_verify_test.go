package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginVerify(t *testing.T) {
	start := func(t *testing.T, fx *fixture) string {
		t.Helper()
		out, err := fx.uc.LoginRequest(context.Background(), LoginRequestInput{Email: "camper@example.com"})
		require.NoError(t, err)
		return out.FlowToken
	}

	t.Run("NoPendingLogin", func(t *testing.T) {
		fx := newFixture(t, testUser())

		out, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: "bogus", Code: "111111"})

		require.Nil(t, out)
		assertBusinessError(t, err, "Please start the login process again", goerror.CodeUnauthorized)
	})

	t.Run("NoCodeIssued", func(t *testing.T) {
		fx := newFixture(t, testUser())
		token := start(t, fx)

		// the stored code vanished while the pending login survives
		require.NoError(t, fx.db.ClearUserOTP(context.Background(), 7))

		out, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: token, Code: "111111"})

		require.Nil(t, out)
		assertBusinessError(t, err, "No code found. Please request a new one", goerror.CodeUnauthorized)
	})

	t.Run("Expired", func(t *testing.T) {
		fx := newFixture(t, testUser())
		token := start(t, fx)

		fx.clock.advance(10*time.Minute + time.Second)

		out, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: token, Code: "111111"})

		require.Nil(t, out)
		assertBusinessError(t, err, "Code has expired. Please request a new one", goerror.CodeUnauthorized)
		assert.False(t, fx.db.user(7).OTP.Present(), "expired code must be cleared")
	})

	t.Run("ExpiredAtExactInstant", func(t *testing.T) {
		fx := newFixture(t, testUser())
		token := start(t, fx)

		fx.clock.advance(10 * time.Minute)

		out, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: token, Code: "111111"})

		require.Nil(t, out)
		assertBusinessError(t, err, "Code has expired. Please request a new one", goerror.CodeUnauthorized)
	})

	t.Run("Mismatch", func(t *testing.T) {
		fx := newFixture(t, testUser())
		token := start(t, fx)

		out, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: token, Code: "999999"})

		require.Nil(t, out)
		assertBusinessError(t, err, "Invalid code. Please try again", goerror.CodeUnauthorized)

		// a wrong guess must not burn the code or the pending login
		assert.True(t, fx.db.user(7).OTP.Present())
		assert.Equal(t, 1, fx.cache.pendingCount())
	})

	t.Run("WrongThenRight", func(t *testing.T) {
		fx := newFixture(t, testUser())
		token := start(t, fx)

		_, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: token, Code: "999999"})
		require.Error(t, err)

		out, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: token, Code: "111111"})

		require.NoError(t, err)
		require.NotNil(t, out)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("Success", func(t *testing.T) {
		fx := newFixture(t, testUser())
		token := start(t, fx)

		out, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: token, Code: "111111"})

		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, "camper", out.Username)

		auth, err := fx.sessions.Current(context.Background(), out.Token)
		require.NoError(t, err)
		require.NotNil(t, auth)
		assert.Equal(t, int64(7), auth.UserID)
		assert.Equal(t, "camper", auth.Username)
		assert.Equal(t, "user", auth.Role)

		stored := fx.db.user(7)
		assert.False(t, stored.OTP.Present(), "code must be consumed")
		assert.True(t, stored.IsVerified, "first login verifies the account")
		assert.Zero(t, fx.cache.pendingCount(), "pending login must be cleared")
	})

	t.Run("Replay", func(t *testing.T) {
		fx := newFixture(t, testUser())
		token := start(t, fx)

		_, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: token, Code: "111111"})
		require.NoError(t, err)

		out, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: token, Code: "111111"})

		require.Nil(t, out)
		assertBusinessError(t, err, "Please start the login process again", goerror.CodeUnauthorized)
	})
}
