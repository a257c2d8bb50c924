package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/camporahq/campora/internal/pkg/session"
)

type ProfileInput struct{}

type ProfileOutput struct {
	ID         int64
	Email      string
	Username   string
	Role       string
	IsVerified bool
}

func (s *Usecase) Profile(ctx context.Context, _ ProfileInput) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	auth := session.GetAuth(ctx)
	if auth == nil {
		return nil, goerror.NewBusiness("You must be signed in first", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByID(ctx, auth.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "user_id", auth.UserID)
		return nil, goerror.NewBusiness("You must be signed in first", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", auth.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{
		ID:         user.ID,
		Email:      user.Email,
		Username:   user.Username,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}, nil
}
