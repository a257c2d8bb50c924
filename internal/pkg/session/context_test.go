package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthContext(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, GetAuth(context.Background()))
	})

	t.Run("RoundTrip", func(t *testing.T) {
		auth := &Auth{UserID: 42, Username: "camper", Role: "user"}

		ctx := SetAuth(context.Background(), auth)

		got := GetAuth(ctx)
		require.NotNil(t, got)
		assert.Equal(t, int64(42), got.UserID)
		assert.Equal(t, "camper", got.Username)
		assert.Equal(t, "user", got.Role)
	})

	t.Run("NilAuth", func(t *testing.T) {
		ctx := SetAuth(context.Background(), nil)
		assert.Nil(t, GetAuth(ctx))
	})
}
