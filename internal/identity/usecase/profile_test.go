package usecase

import (
	"context"
	"testing"

	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/camporahq/campora/internal/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	t.Run("NotAuthenticated", func(t *testing.T) {
		fx := newFixture(t, testUser())

		out, err := fx.uc.Profile(context.Background(), ProfileInput{})

		require.Nil(t, out)
		assertBusinessError(t, err, "You must be signed in first", goerror.CodeUnauthorized)
	})

	t.Run("Success", func(t *testing.T) {
		fx := newFixture(t, testUser())
		ctx := session.SetAuth(context.Background(), &session.Auth{UserID: 7, Username: "camper", Role: "user"})

		out, err := fx.uc.Profile(ctx, ProfileInput{})

		require.NoError(t, err)
		assert.Equal(t, int64(7), out.ID)
		assert.Equal(t, "camper@example.com", out.Email)
		assert.Equal(t, "camper", out.Username)
		assert.Equal(t, "user", out.Role)
	})

	t.Run("AccountGone", func(t *testing.T) {
		fx := newFixture(t)
		ctx := session.SetAuth(context.Background(), &session.Auth{UserID: 404, Username: "ghost", Role: "user"})

		out, err := fx.uc.Profile(ctx, ProfileInput{})

		require.Nil(t, out)
		assertBusinessError(t, err, "You must be signed in first", goerror.CodeUnauthorized)
	})
}

func TestLogout(t *testing.T) {
	t.Run("DestroysSession", func(t *testing.T) {
		fx := newFixture(t, testUser())

		out, err := fx.uc.LoginRequest(context.Background(), LoginRequestInput{Email: "camper@example.com"})
		require.NoError(t, err)
		verified, err := fx.uc.LoginVerify(context.Background(), LoginVerifyInput{FlowToken: out.FlowToken, Code: "111111"})
		require.NoError(t, err)

		require.NoError(t, fx.uc.Logout(context.Background(), LogoutInput{Token: verified.Token}))

		auth, err := fx.sessions.Current(context.Background(), verified.Token)
		require.NoError(t, err)
		assert.Nil(t, auth)
	})

	t.Run("IdempotentForUnknownToken", func(t *testing.T) {
		fx := newFixture(t)

		assert.NoError(t, fx.uc.Logout(context.Background(), LogoutInput{Token: "unknown"}))
	})
}
