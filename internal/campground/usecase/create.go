package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/camporahq/campora/internal/campground/entity"
	"github.com/camporahq/campora/internal/pkg/goerror"
)

type CreateInput struct {
	Title       string  `validate:"required,min=3,max=120"`
	Description string  `validate:"required,max=2000"`
	Location    string  `validate:"required,max=200"`
	Price       float64 `validate:"gte=0"`
}

type CreateOutput struct {
	ID int64
}

func (s *Usecase) Create(ctx context.Context, in CreateInput) (*CreateOutput, error) {
	ctx, span := s.startSpan(ctx, "Create")
	defer span.End()

	auth, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	newCampground := entity.NewCampground{
		ID:          s.uid.Generate(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Price:       in.Price,
		AuthorID:    auth.UserID,
	}

	if err := s.repoDB.CreateCampground(ctx, newCampground); err != nil {
		slog.ErrorContext(ctx, "failed to repo create campground", "user_id", auth.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CreateOutput{ID: newCampground.ID}, nil
}
