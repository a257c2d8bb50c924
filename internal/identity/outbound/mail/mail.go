package mail

import (
	"context"
	"time"

	"github.com/camporahq/campora/internal/pkg/instrument"
	"github.com/camporahq/campora/internal/pkg/mail"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/otel/codes"
)

// Mail delivers login codes over the configured email provider. Transient
// send failures are retried with fibonacci backoff before being reported.
type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

func (m *Mail) SendLoginCode(ctx context.Context, email, code string) error {
	ctx, span := m.ins.Tracer("identity.outbound.mail").Start(ctx, "SendLoginCode")
	defer span.End()

	msg := mail.Message{
		To:      []string{email},
		Subject: "Your Campora login code",
		TextBody: "Your one-time login code is " + code + ".\n\n" +
			"It expires in 10 minutes. If you did not request it, you can ignore this email.",
	}

	b := retry.WithCappedDuration(2*time.Second, retry.NewFibonacci(200*time.Millisecond))

	err := retry.Do(ctx, retry.WithMaxRetries(3, b), func(ctx context.Context) error {
		if err := m.client.Send(ctx, msg); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
