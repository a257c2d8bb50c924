package usecase

import (
	"context"
	"testing"

	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreate(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		out, err := fx.uc.ReviewCreate(context.Background(), ReviewCreateInput{
			CampgroundID: cg.ID,
			Rating:       5,
			Body:         "Lovely",
		})

		require.Nil(t, out)
		assertBusinessError(t, err, "You must be signed in first", goerror.CodeUnauthorized)
	})

	t.Run("CampgroundNotFound", func(t *testing.T) {
		fx := newFixture(t)

		out, err := fx.uc.ReviewCreate(asUser(2, "reviewer", "user"), ReviewCreateInput{
			CampgroundID: 9999,
			Rating:       5,
			Body:         "Lovely",
		})

		require.Nil(t, out)
		assertBusinessError(t, err, "Campground not found", goerror.CodeNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		out, err := fx.uc.ReviewCreate(asUser(2, "reviewer", "user"), ReviewCreateInput{
			CampgroundID: cg.ID,
			Rating:       5,
			Body:         "  Lovely spot  ",
		})

		require.NoError(t, err)
		review := fx.db.review(out.ID)
		require.NotNil(t, review)
		assert.Equal(t, int64(2), review.AuthorID)
		assert.Equal(t, int16(5), review.Rating)
		assert.Equal(t, "Lovely spot", review.Body)

		require.Len(t, fx.msg.published, 1)
		event := fx.msg.published[0]
		assert.Equal(t, out.ID, event.ReviewID)
		assert.Equal(t, cg.ID, event.CampgroundID)
		assert.Equal(t, int64(1), event.OwnerID)
		assert.Equal(t, int64(2), event.AuthorID)
		assert.Equal(t, "reviewer", event.AuthorName)
	})

	t.Run("InvalidRating", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		out, err := fx.uc.ReviewCreate(asUser(2, "reviewer", "user"), ReviewCreateInput{
			CampgroundID: cg.ID,
			Rating:       6,
			Body:         "Too good",
		})

		require.Nil(t, out)
		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeInvalidInput, gerr.Code())
	})
}

func TestReviewDelete(t *testing.T) {
	t.Run("AuthorDeletesOwn", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)
		review := fx.seedReview(t, cg.ID, 2)

		err := fx.uc.ReviewDelete(asUser(2, "reviewer", "user"), ReviewDeleteInput{
			CampgroundID: cg.ID,
			ReviewID:     review.ID,
		})

		require.NoError(t, err)
		assert.Nil(t, fx.db.review(review.ID))
	})

	t.Run("CampgroundOwnerForbidden", func(t *testing.T) {
		// owning the campground does not grant rights over someone's review
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)
		review := fx.seedReview(t, cg.ID, 2)

		err := fx.uc.ReviewDelete(asUser(1, "author", "user"), ReviewDeleteInput{
			CampgroundID: cg.ID,
			ReviewID:     review.ID,
		})

		assertBusinessError(t, err, "You do not have permission to do that", goerror.CodeForbidden)
		assert.NotNil(t, fx.db.review(review.ID))
	})

	t.Run("ModeratorOverride", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)
		review := fx.seedReview(t, cg.ID, 2)

		err := fx.uc.ReviewDelete(asUser(3, "mod", "moderator"), ReviewDeleteInput{
			CampgroundID: cg.ID,
			ReviewID:     review.ID,
		})

		require.NoError(t, err)
		assert.Nil(t, fx.db.review(review.ID))
	})

	t.Run("WrongCampground", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)
		other := fx.seedCampground(t, 1)
		review := fx.seedReview(t, cg.ID, 2)

		err := fx.uc.ReviewDelete(asUser(2, "reviewer", "user"), ReviewDeleteInput{
			CampgroundID: other.ID,
			ReviewID:     review.ID,
		})

		assertBusinessError(t, err, "Review not found", goerror.CodeNotFound)
	})
}
