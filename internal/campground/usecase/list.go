package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/camporahq/campora/internal/campground/entity"
	"github.com/camporahq/campora/internal/pkg/goerror"
)

type ListInput struct {
	Search string
	Size   int32
	Page   int32
}

type ListOutput struct {
	Page        int32
	Size        int32
	Total       int64
	Campgrounds []entity.Campground
}

func (s *Usecase) List(ctx context.Context, in ListInput) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 20 // default limit
	}

	filter := entity.ListFilter{
		Search: strings.TrimSpace(in.Search),
		Limit:  in.Size,
		Offset: (max(in.Page, 1) - 1) * in.Size,
	}

	campgrounds, total, err := s.repoDB.ListCampgrounds(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list campgrounds", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListOutput{
		Page:        max(in.Page, 1),
		Size:        in.Size,
		Total:       total,
		Campgrounds: campgrounds,
	}, nil
}
