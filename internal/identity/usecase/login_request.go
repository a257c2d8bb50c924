package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/camporahq/campora/internal/pkg/goerror"
)

type LoginRequestInput struct {
	Email string `validate:"required,email"`
}

type LoginRequestOutput struct {
	FlowToken string
	Delivered bool
}

// LoginRequest starts a passwordless login: it issues a fresh one-time code
// for the account, remembers the pending login under a new flow token, and
// sends the code by email.
//
// A failed send does not roll anything back; the caller may retry delivery
// through LoginResend with the returned flow token.
func (s *Usecase) LoginRequest(ctx context.Context, in LoginRequestInput) (*LoginRequestOutput, error) {
	ctx, span := s.startSpan(ctx, "LoginRequest")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", in.Email)
		return nil, goerror.NewBusiness("No account found with this email address", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	code, err := s.codes.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate login code", "error", err)
		return nil, goerror.NewServer(err)
	}

	expiresAt := s.clock.Now().Add(s.cfg.GetMinute("modules.identity.otp_ttl_minutes"))
	if err := s.repoDB.SetUserOTP(ctx, user.ID, code, expiresAt); err != nil {
		slog.ErrorContext(ctx, "failed to repo set user otp", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	flowToken := s.oid.Generate()
	flowKey, err := s.flowKey(flowToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash flow token", "error", err)
		return nil, goerror.NewServer(err)
	}

	slotTTL := s.cfg.GetMinute("modules.identity.login_flow_ttl_minutes")
	if err := s.repoCache.SavePendingLogin(ctx, flowKey, user.Email, slotTTL); err != nil {
		slog.ErrorContext(ctx, "failed to save pending login", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	delivered := true
	if err := s.delivery.SendLoginCode(ctx, user.Email, code); err != nil {
		slog.ErrorContext(ctx, "failed to send login code", "user_id", user.ID, "error", err)
		delivered = false
	}

	return &LoginRequestOutput{FlowToken: flowToken, Delivered: delivered}, nil
}
