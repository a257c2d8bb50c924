package usecase

import (
	"context"
	"testing"

	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate(t *testing.T) {
	input := func(id int64) UpdateInput {
		return UpdateInput{
			ID:          id,
			Title:       "Pine Hollow Deluxe",
			Description: "Now with firewood included",
			Location:    "Lost Valley",
			Price:       30,
		}
	}

	t.Run("Anonymous", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)
		before := fx.db.lookupCount()

		err := fx.uc.Update(context.Background(), input(cg.ID))

		assertBusinessError(t, err, "You must be signed in first", goerror.CodeUnauthorized)
		assert.Equal(t, before, fx.db.lookupCount(), "anonymous callers must be rejected before any lookup")
	})

	t.Run("NotFound", func(t *testing.T) {
		fx := newFixture(t)

		err := fx.uc.Update(asUser(1, "author", "user"), input(9999))

		assertBusinessError(t, err, "Campground not found", goerror.CodeNotFound)
	})

	t.Run("Owner", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		err := fx.uc.Update(asUser(1, "author", "user"), input(cg.ID))

		require.NoError(t, err)
		assert.Equal(t, "Pine Hollow Deluxe", fx.db.campground(cg.ID).Title)
	})

	t.Run("OtherUserForbidden", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		err := fx.uc.Update(asUser(2, "intruder", "user"), input(cg.ID))

		assertBusinessError(t, err, "You do not have permission to do that", goerror.CodeForbidden)
		assert.Equal(t, "Pine Hollow", fx.db.campground(cg.ID).Title, "a denied update must not change anything")
	})

	t.Run("ModeratorOverride", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		err := fx.uc.Update(asUser(3, "mod", "moderator"), input(cg.ID))

		require.NoError(t, err)
		assert.Equal(t, "Pine Hollow Deluxe", fx.db.campground(cg.ID).Title)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		err := fx.uc.Delete(context.Background(), DeleteInput{ID: cg.ID})

		assertBusinessError(t, err, "You must be signed in first", goerror.CodeUnauthorized)
	})

	t.Run("Owner", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		err := fx.uc.Delete(asUser(1, "author", "user"), DeleteInput{ID: cg.ID})

		require.NoError(t, err)
		assert.Nil(t, fx.db.campground(cg.ID))
	})

	t.Run("OtherUserForbidden", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		err := fx.uc.Delete(asUser(2, "intruder", "user"), DeleteInput{ID: cg.ID})

		assertBusinessError(t, err, "You do not have permission to do that", goerror.CodeForbidden)
		assert.NotNil(t, fx.db.campground(cg.ID))
	})

	t.Run("ModeratorOverride", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		err := fx.uc.Delete(asUser(3, "mod", "moderator"), DeleteInput{ID: cg.ID})

		require.NoError(t, err)
		assert.Nil(t, fx.db.campground(cg.ID))
	})
}
