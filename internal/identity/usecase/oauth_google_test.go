package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthGoogle(t *testing.T) {
	t.Run("URLStoresState", func(t *testing.T) {
		fx := newFixture(t)

		out, err := fx.uc.OAuthGoogleURL(context.Background())

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.URL, "https://accounts.example.com/auth?state=flow-"))
		assert.Len(t, fx.cache.states, 1)
	})

	t.Run("CallbackUnknownState", func(t *testing.T) {
		fx := newFixture(t)

		out, err := fx.uc.OAuthGoogleCallback(context.Background(), OAuthGoogleCallbackInput{
			State: "forged",
			Code:  "auth-code",
		})

		require.Nil(t, out)
		assertBusinessError(t, err, "Please start the login process again", goerror.CodeUnauthorized)
	})

	t.Run("CallbackStateIsSingleUse", func(t *testing.T) {
		fx := newFixture(t, testUser())
		fx.fed.user = &FederatedUser{ProviderID: "google-1", Email: "camper@example.com", Name: "Camper"}

		urlOut, err := fx.uc.OAuthGoogleURL(context.Background())
		require.NoError(t, err)
		state := strings.TrimPrefix(urlOut.URL, "https://accounts.example.com/auth?state=")

		in := OAuthGoogleCallbackInput{State: state, Code: "auth-code"}

		_, err = fx.uc.OAuthGoogleCallback(context.Background(), in)
		require.NoError(t, err)

		_, err = fx.uc.OAuthGoogleCallback(context.Background(), in)
		assertBusinessError(t, err, "Please start the login process again", goerror.CodeUnauthorized)
	})

	t.Run("CallbackLinksExistingAccount", func(t *testing.T) {
		fx := newFixture(t, testUser())
		fx.fed.user = &FederatedUser{ProviderID: "google-1", Email: "Camper@Example.com", Name: "Camper"}

		urlOut, err := fx.uc.OAuthGoogleURL(context.Background())
		require.NoError(t, err)
		state := strings.TrimPrefix(urlOut.URL, "https://accounts.example.com/auth?state=")

		out, err := fx.uc.OAuthGoogleCallback(context.Background(), OAuthGoogleCallbackInput{State: state, Code: "auth-code"})

		require.NoError(t, err)
		assert.Equal(t, "camper", out.Username)
		assert.NotEmpty(t, out.Token)

		linked := fx.db.user(7)
		assert.Equal(t, "google-1", linked.GoogleID)
		assert.True(t, linked.IsVerified)
	})

	t.Run("CallbackCreatesAccount", func(t *testing.T) {
		fx := newFixture(t)
		fx.fed.user = &FederatedUser{ProviderID: "google-2", Email: "new.hiker@example.com", Name: "New Hiker"}

		urlOut, err := fx.uc.OAuthGoogleURL(context.Background())
		require.NoError(t, err)
		state := strings.TrimPrefix(urlOut.URL, "https://accounts.example.com/auth?state=")

		out, err := fx.uc.OAuthGoogleCallback(context.Background(), OAuthGoogleCallbackInput{State: state, Code: "auth-code"})

		require.NoError(t, err)
		assert.Equal(t, "new.hiker", out.Username)

		created := fx.db.user(101)
		assert.Equal(t, "new.hiker@example.com", created.Email)
		assert.Equal(t, "google-2", created.GoogleID)
		assert.True(t, created.IsVerified, "google attests the email")

		require.Len(t, fx.msg.published, 1)
		assert.Equal(t, int64(101), fx.msg.published[0].UserID)
	})
}

func TestUsernameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"john.doe@example.com", "john.doe"},
		{"a+b@example.com", "userab"},
		{"x@example.com", "userx"},
		{"camp-er_99@example.com", "camp-er_99"},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, usernameFromEmail(tc.email))
		})
	}
}
