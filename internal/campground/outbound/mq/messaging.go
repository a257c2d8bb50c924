package mq

import (
	"context"
	"encoding/json"

	"github.com/camporahq/campora/internal/campground/usecase"
	"github.com/camporahq/campora/internal/pkg/instrument"
	"github.com/camporahq/campora/internal/pkg/messaging"
	"github.com/camporahq/campora/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishReviewCreated(ctx context.Context, msg usecase.ReviewCreatedEvent) error {
	ctx, span := m.ins.Tracer("campground.outbound.mq").Start(ctx, "PublishReviewCreated")
	defer span.End()

	body, err := json.Marshal(event.ReviewCreatedMessage{
		ReviewID:       msg.ReviewID,
		CampgroundID:   msg.CampgroundID,
		CampgroundName: msg.CampgroundName,
		OwnerID:        msg.OwnerID,
		AuthorID:       msg.AuthorID,
		AuthorName:     msg.AuthorName,
		Rating:         msg.Rating,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.ReviewCreatedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
