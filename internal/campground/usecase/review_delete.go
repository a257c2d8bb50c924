package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/camporahq/campora/internal/pkg/goerror"
)

type ReviewDeleteInput struct {
	CampgroundID int64 `validate:"required,gt=0"`
	ReviewID     int64 `validate:"required,gt=0"`
}

func (s *Usecase) ReviewDelete(ctx context.Context, in ReviewDeleteInput) error {
	ctx, span := s.startSpan(ctx, "ReviewDelete")
	defer span.End()

	auth, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	review, err := s.repoDB.GetReviewByID(ctx, in.ReviewID, in.CampgroundID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Review not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get review by id", "review_id", in.ReviewID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.allowOwner(ctx, auth, "reviews", review.AuthorID); err != nil {
		return err
	}

	if err := s.repoDB.DeleteReview(ctx, in.ReviewID, in.CampgroundID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete review", "review_id", in.ReviewID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
