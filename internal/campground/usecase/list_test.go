package usecase

import (
	"context"
	"testing"

	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	t.Run("PublicWithoutAuth", func(t *testing.T) {
		fx := newFixture(t)
		fx.seedCampground(t, 1)
		fx.seedCampground(t, 2)

		out, err := fx.uc.List(context.Background(), ListInput{})

		require.NoError(t, err)
		assert.Equal(t, int64(2), out.Total)
		assert.Len(t, out.Campgrounds, 2)
		assert.Equal(t, int32(1), out.Page)
		assert.Equal(t, int32(20), out.Size)
	})

	t.Run("SizeClamped", func(t *testing.T) {
		fx := newFixture(t)

		out, err := fx.uc.List(context.Background(), ListInput{Size: 500})

		require.NoError(t, err)
		assert.Equal(t, int32(20), out.Size)
	})
}

func TestDetail(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		fx := newFixture(t)

		out, err := fx.uc.Detail(context.Background(), DetailInput{ID: 9999})

		require.Nil(t, out)
		assertBusinessError(t, err, "Campground not found", goerror.CodeNotFound)
	})

	t.Run("WithReviews", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)
		fx.seedReview(t, cg.ID, 2)
		fx.seedReview(t, cg.ID, 3)

		out, err := fx.uc.Detail(context.Background(), DetailInput{ID: cg.ID})

		require.NoError(t, err)
		assert.Equal(t, cg.ID, out.Campground.ID)
		assert.Len(t, out.Reviews, 2)
	})
}
