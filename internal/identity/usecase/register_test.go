package usecase

import (
	"context"
	"testing"

	"github.com/camporahq/campora/internal/identity/entity"
	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		fx := newFixture(t)

		err := fx.uc.Register(context.Background(), RegisterInput{
			Username: "hiker42",
			Email:    "Hiker@Example.com",
		})

		require.NoError(t, err)

		created := fx.db.user(101)
		assert.Equal(t, "hiker@example.com", created.Email)
		assert.Equal(t, "hiker42", created.Username)
		assert.Equal(t, entity.RoleUser, created.Role)
		assert.False(t, created.IsVerified, "account is unverified until first login")
		assert.False(t, created.OTP.Present(), "no code is issued at registration")

		require.Len(t, fx.msg.published, 1)
		assert.Equal(t, int64(101), fx.msg.published[0].UserID)
		assert.Equal(t, "hiker@example.com", fx.msg.published[0].Email)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		fx := newFixture(t, testUser())

		err := fx.uc.Register(context.Background(), RegisterInput{
			Username: "someoneelse",
			Email:    "camper@example.com",
		})

		assertBusinessError(t, err, "Username or email already exists", goerror.CodeConflict)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		fx := newFixture(t, testUser())

		err := fx.uc.Register(context.Background(), RegisterInput{
			Username: "camper",
			Email:    "other@example.com",
		})

		assertBusinessError(t, err, "Username or email already exists", goerror.CodeConflict)
	})

	t.Run("InvalidUsername", func(t *testing.T) {
		fx := newFixture(t)

		err := fx.uc.Register(context.Background(), RegisterInput{
			Username: "x",
			Email:    "short@example.com",
		})

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeInvalidInput, gerr.Code())
	})
}
