package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/camporahq/campora/internal/notification/entity"
	"github.com/camporahq/campora/internal/pkg/idempotency"
	"github.com/camporahq/campora/internal/pkg/mail"
	"github.com/camporahq/campora/internal/pkg/valueobject"
)

type ConsumeUserRegisteredInput struct {
	UserID   int64  `validate:"required,gt=0"`
	Email    string `validate:"required,email"`
	Username string `validate:"required"`
}

// ConsumeUserRegistered handles a user_registered message: it stores a
// welcome notification and sends the welcome email. Duplicate deliveries of
// the same message are dropped through the idempotency tracker.
func (s *Usecase) ConsumeUserRegistered(ctx context.Context, in ConsumeUserRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserRegistered")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	key := "notification:user_registered:" + strconv.FormatInt(in.UserID, 10)
	err := s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		return s.welcome(ctx, in)
	}, idempotency.WithStateTTL(24*time.Hour))
	if errors.Is(err, idempotency.ErrAlreadyInProgress) || errors.Is(err, idempotency.ErrAlreadyCompleted) {
		slog.InfoContext(ctx, "duplicate user registered message dropped", "user_id", in.UserID)
		return nil
	}

	return err
}

func (s *Usecase) welcome(ctx context.Context, in ConsumeUserRegisteredInput) error {
	if err := s.repoDB.CreateNotification(ctx, entity.CreateNotification{
		ID:     s.uid.Generate(),
		UserID: in.UserID,
		Kind:   entity.KindWelcome,
		Data:   valueobject.JSONMap{"username": in.Username},
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create notification", "user_id", in.UserID, "error", err)
		return err
	}

	msg := mail.Message{
		To:      []string{in.Email},
		Subject: "Welcome to Campora",
		TextBody: "Hi " + in.Username + ",\n\n" +
			"Welcome to Campora. Sign in with your email at " + s.cfg.GetString("app.web") +
			" to start listing campgrounds and posting reviews.\n\n" +
			"Happy camping!",
	}
	if err := s.repoMail.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to send welcome email", "user_id", in.UserID, "error", err)
	}

	return nil
}
