package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/camporahq/campora/internal/pkg/otp"
	"github.com/camporahq/campora/internal/pkg/session"
)

type LoginVerifyInput struct {
	FlowToken string `validate:"required"`
	Code      string `validate:"required,len=6,numeric"`
}

type LoginVerifyOutput struct {
	Token    string
	Username string
}

// LoginVerify checks a submitted code against the pending login. On success
// the stored code is consumed, the account is marked verified, the pending
// login is cleared and a session is established.
//
// A mismatch leaves the stored code untouched so the user can retry within
// the code's lifetime.
func (s *Usecase) LoginVerify(ctx context.Context, in LoginVerifyInput) (*LoginVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "LoginVerify")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	flowKey, err := s.flowKey(in.FlowToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash flow token", "error", err)
		return nil, goerror.NewServer(err)
	}

	email, err := s.repoCache.GetPendingLogin(ctx, flowKey)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "pending login not found")
		return nil, goerror.NewBusiness("Please start the login process again", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to get pending login", "error", err)
		return nil, goerror.NewServer(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account gone for pending login", "email", email)
		return nil, goerror.NewBusiness("Please start the login process again", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	switch otp.Verify(in.Code, user.OTP.Code, user.OTP.ExpiresAt, s.clock.Now()) {
	case otp.StatusNoCode:
		slog.WarnContext(ctx, "no login code issued", "user_id", user.ID)
		return nil, goerror.NewBusiness("No code found. Please request a new one", goerror.CodeUnauthorized)

	case otp.StatusExpired:
		if err := s.repoDB.ClearUserOTP(ctx, user.ID); err != nil {
			slog.ErrorContext(ctx, "failed to repo clear user otp", "user_id", user.ID, "error", err)
		}
		slog.WarnContext(ctx, "login code expired", "user_id", user.ID)
		return nil, goerror.NewBusiness("Code has expired. Please request a new one", goerror.CodeUnauthorized)

	case otp.StatusMismatch:
		slog.WarnContext(ctx, "login code mismatch", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid code. Please try again", goerror.CodeUnauthorized)
	}

	if err := s.repoDB.ConsumeUserOTP(ctx, user.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo consume user otp", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoCache.DeletePendingLogin(ctx, flowKey); err != nil {
		slog.ErrorContext(ctx, "failed to delete pending login", "user_id", user.ID, "error", err)
	}

	token, err := s.sessions.Establish(ctx, session.Auth{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to establish session", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginVerifyOutput{Token: token, Username: user.Username}, nil
}
