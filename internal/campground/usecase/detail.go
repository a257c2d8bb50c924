package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/camporahq/campora/internal/campground/entity"
	"github.com/camporahq/campora/internal/pkg/goerror"
)

type DetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

type DetailOutput struct {
	Campground entity.Campground
	Reviews    []entity.Review
}

func (s *Usecase) Detail(ctx context.Context, in DetailInput) (*DetailOutput, error) {
	ctx, span := s.startSpan(ctx, "Detail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cg, err := s.repoDB.GetCampgroundByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Campground not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get campground by id", "campground_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	reviews, err := s.repoDB.ListReviewsByCampground(ctx, in.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list reviews by campground", "campground_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DetailOutput{Campground: *cg, Reviews: reviews}, nil
}
