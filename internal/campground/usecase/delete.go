package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/camporahq/campora/internal/pkg/goerror"
)

type DeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) Delete(ctx context.Context, in DeleteInput) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()

	auth, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	cg, err := s.repoDB.GetCampgroundByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Campground not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get campground by id", "campground_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.allowOwner(ctx, auth, "campgrounds", cg.AuthorID); err != nil {
		return err
	}

	if err := s.repoDB.DeleteCampground(ctx, in.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete campground", "campground_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
