package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/camporahq/campora/internal/campground/entity"
	"github.com/camporahq/campora/internal/pkg/goerror"
)

type UpdateInput struct {
	ID          int64   `validate:"required,gt=0"`
	Title       string  `validate:"required,min=3,max=120"`
	Description string  `validate:"required,max=2000"`
	Location    string  `validate:"required,max=200"`
	Price       float64 `validate:"gte=0"`
}

func (s *Usecase) Update(ctx context.Context, in UpdateInput) error {
	ctx, span := s.startSpan(ctx, "Update")
	defer span.End()

	auth, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)

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

	if err := s.repoDB.UpdateCampground(ctx, entity.UpdateCampground{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Price:       in.Price,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo update campground", "campground_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
