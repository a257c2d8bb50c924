package usecase

import (
	"context"
	"log/slog"

	"github.com/camporahq/campora/internal/notification/entity"
	"github.com/camporahq/campora/internal/pkg/goerror"
)

type ListInput struct {
	Limit  int32 `validate:"omitempty,gte=1,lte=100"`
	Offset int32 `validate:"omitempty,gte=0"`
}

func (s *Usecase) List(ctx context.Context, in ListInput) (_ []entity.Notification, err error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	auth, err := s.requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if in.Limit == 0 {
		in.Limit = 20
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	items, err := s.repoDB.ListNotifications(ctx, auth.UserID, in.Limit, in.Offset)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list notifications", "user_id", auth.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return items, nil
}
