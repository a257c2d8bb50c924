package usecase

import (
	"strings"
	"testing"

	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImage(t *testing.T) {
	t.Run("Owner", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		out, err := fx.uc.UploadImage(asUser(1, "author", "user"), UploadImageInput{
			ID:          cg.ID,
			File:        strings.NewReader("fake jpeg bytes"),
			ContentType: "image/jpeg",
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.ImageURL, "https://img.campora.app/"))
		assert.True(t, strings.HasSuffix(out.ImageURL, ".jpg"))
		assert.Equal(t, out.ImageURL, fx.db.campground(cg.ID).ImageURL)

		require.Len(t, fx.storage.puts, 1)
		assert.Equal(t, "campora-images", fx.storage.puts[0].bucket)
	})

	t.Run("OtherUserForbidden", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		out, err := fx.uc.UploadImage(asUser(2, "intruder", "user"), UploadImageInput{
			ID:          cg.ID,
			File:        strings.NewReader("fake jpeg bytes"),
			ContentType: "image/jpeg",
		})

		require.Nil(t, out)
		assertBusinessError(t, err, "You do not have permission to do that", goerror.CodeForbidden)
		assert.Empty(t, fx.storage.puts)
	})

	t.Run("UnsupportedContentType", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		out, err := fx.uc.UploadImage(asUser(1, "author", "user"), UploadImageInput{
			ID:          cg.ID,
			File:        strings.NewReader("<svg/>"),
			ContentType: "image/svg+xml",
		})

		require.Nil(t, out)
		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeInvalidInput, gerr.Code())
	})

	t.Run("TooLarge", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		out, err := fx.uc.UploadImage(asUser(1, "author", "user"), UploadImageInput{
			ID:          cg.ID,
			File:        strings.NewReader(strings.Repeat("x", 65)),
			ContentType: "image/png",
		})

		require.Nil(t, out)
		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, goerror.CodeInvalidInput, gerr.Code())
		assert.Empty(t, fx.db.campground(cg.ID).ImageURL)
	})

	t.Run("ExactlyMaxSize", func(t *testing.T) {
		fx := newFixture(t)
		cg := fx.seedCampground(t, 1)

		out, err := fx.uc.UploadImage(asUser(1, "author", "user"), UploadImageInput{
			ID:          cg.ID,
			File:        strings.NewReader(strings.Repeat("x", 64)),
			ContentType: "image/png",
		})

		require.NoError(t, err)
		require.Len(t, fx.storage.puts, 1)
		assert.Equal(t, int64(64), fx.storage.puts[0].size)
		assert.NotEmpty(t, out.ImageURL)
	})
}
