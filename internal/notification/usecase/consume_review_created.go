package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/camporahq/campora/internal/notification/entity"
	"github.com/camporahq/campora/internal/pkg/idempotency"
	"github.com/camporahq/campora/internal/pkg/valueobject"
)

type ConsumeReviewCreatedInput struct {
	ReviewID       int64  `validate:"required,gt=0"`
	CampgroundID   int64  `validate:"required,gt=0"`
	CampgroundName string `validate:"required"`
	OwnerID        int64  `validate:"required,gt=0"`
	AuthorID       int64  `validate:"required,gt=0"`
	AuthorName     string `validate:"required"`
	Rating         int16  `validate:"required,gte=1,lte=5"`
}

// ConsumeReviewCreated notifies a campground owner about a new review.
// Owners are not notified about their own reviews.
func (s *Usecase) ConsumeReviewCreated(ctx context.Context, in ConsumeReviewCreatedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeReviewCreated")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	if in.OwnerID == in.AuthorID {
		return nil
	}

	key := "notification:review_created:" + strconv.FormatInt(in.ReviewID, 10)
	err := s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		if err := s.repoDB.CreateNotification(ctx, entity.CreateNotification{
			ID:     s.uid.Generate(),
			UserID: in.OwnerID,
			Kind:   entity.KindReviewReceived,
			Data: valueobject.JSONMap{
				"review_id":       in.ReviewID,
				"campground_id":   in.CampgroundID,
				"campground_name": in.CampgroundName,
				"author_name":     in.AuthorName,
				"rating":          in.Rating,
			},
		}); err != nil {
			slog.ErrorContext(ctx, "failed to repo create notification", "user_id", in.OwnerID, "error", err)
			return err
		}
		return nil
	}, idempotency.WithStateTTL(24*time.Hour))
	if errors.Is(err, idempotency.ErrAlreadyInProgress) || errors.Is(err, idempotency.ErrAlreadyCompleted) {
		slog.InfoContext(ctx, "duplicate review created message dropped", "review_id", in.ReviewID)
		return nil
	}

	return err
}
