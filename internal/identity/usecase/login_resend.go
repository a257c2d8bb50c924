package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/camporahq/campora/internal/pkg/goerror"
)

type LoginResendInput struct {
	FlowToken string `validate:"required"`
}

// LoginResend re-issues the one-time code for a pending login. The previous
// code is invalidated by the overwrite even when the send fails.
func (s *Usecase) LoginResend(ctx context.Context, in LoginResendInput) error {
	ctx, span := s.startSpan(ctx, "LoginResend")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	flowKey, err := s.flowKey(in.FlowToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash flow token", "error", err)
		return goerror.NewServer(err)
	}

	email, err := s.repoCache.GetPendingLogin(ctx, flowKey)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "pending login not found")
		return goerror.NewBusiness("Please start the login process again", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to get pending login", "error", err)
		return goerror.NewServer(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account gone for pending login", "email", email)
		return goerror.NewBusiness("Please start the login process again", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return goerror.NewServer(err)
	}

	code, err := s.codes.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate login code", "error", err)
		return goerror.NewServer(err)
	}

	expiresAt := s.clock.Now().Add(s.cfg.GetMinute("modules.identity.otp_ttl_minutes"))
	if err := s.repoDB.SetUserOTP(ctx, user.ID, code, expiresAt); err != nil {
		slog.ErrorContext(ctx, "failed to repo set user otp", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.delivery.SendLoginCode(ctx, user.Email, code); err != nil {
		slog.ErrorContext(ctx, "failed to send login code", "user_id", user.ID, "error", err)
		return goerror.NewBusiness("Failed to send code. Please try again", goerror.CodeInternal)
	}

	return nil
}
