package inbound

import (
	"context"

	"github.com/camporahq/campora/internal/notification/entity"
	"github.com/camporahq/campora/internal/notification/usecase"
	"github.com/camporahq/campora/internal/pkg/router"
)

type uc interface {
	List(ctx context.Context, in usecase.ListInput) ([]entity.Notification, error)

	ConsumeUserRegistered(ctx context.Context, in usecase.ConsumeUserRegisteredInput) error
	ConsumeReviewCreated(ctx context.Context, in usecase.ConsumeReviewCreatedInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Inbox (need authenticated)
	r.GET("/api/v1/notifications", end.List)
}
