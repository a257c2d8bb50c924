package usecase

import (
	"context"
	"log/slog"

	"github.com/camporahq/campora/internal/pkg/goerror"
)

type LogoutInput struct {
	Token string
}

// Logout destroys the session bound to the token. It succeeds even when no
// such session exists.
func (s *Usecase) Logout(ctx context.Context, in LogoutInput) error {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	if err := s.sessions.Destroy(ctx, in.Token); err != nil {
		slog.ErrorContext(ctx, "failed to destroy session", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
