package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/camporahq/campora/internal/campground/entity"
	"github.com/camporahq/campora/internal/pkg/goerror"
)

type ReviewCreateInput struct {
	CampgroundID int64  `validate:"required,gt=0"`
	Rating       int16  `validate:"required,gte=1,lte=5"`
	Body         string `validate:"required,max=1000"`
}

type ReviewCreateOutput struct {
	ID int64
}

func (s *Usecase) ReviewCreate(ctx context.Context, in ReviewCreateInput) (*ReviewCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "ReviewCreate")
	defer span.End()

	auth, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Body = strings.TrimSpace(in.Body)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cg, err := s.repoDB.GetCampgroundByID(ctx, in.CampgroundID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Campground not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get campground by id", "campground_id", in.CampgroundID, "error", err)
		return nil, goerror.NewServer(err)
	}

	newReview := entity.NewReview{
		ID:           s.uid.Generate(),
		CampgroundID: cg.ID,
		AuthorID:     auth.UserID,
		Rating:       in.Rating,
		Body:         in.Body,
	}

	if err := s.repoDB.CreateReview(ctx, newReview); err != nil {
		slog.ErrorContext(ctx, "failed to repo create review", "campground_id", cg.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishReviewCreated(ctx, ReviewCreatedEvent{
		ReviewID:       newReview.ID,
		CampgroundID:   cg.ID,
		CampgroundName: cg.Title,
		OwnerID:        cg.AuthorID,
		AuthorID:       auth.UserID,
		AuthorName:     auth.Username,
		Rating:         in.Rating,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish review created", "review_id", newReview.ID, "error", err)
	}

	return &ReviewCreateOutput{ID: newReview.ID}, nil
}
