package inbound

import (
	"context"

	"github.com/camporahq/campora/internal/campground/usecase"
	"github.com/camporahq/campora/internal/pkg/router"
)

type uc interface {
	List(ctx context.Context, in usecase.ListInput) (*usecase.ListOutput, error)
	Detail(ctx context.Context, in usecase.DetailInput) (*usecase.DetailOutput, error)
	Create(ctx context.Context, in usecase.CreateInput) (*usecase.CreateOutput, error)
	Update(ctx context.Context, in usecase.UpdateInput) error
	Delete(ctx context.Context, in usecase.DeleteInput) error
	UploadImage(ctx context.Context, in usecase.UploadImageInput) (*usecase.UploadImageOutput, error)

	ReviewCreate(ctx context.Context, in usecase.ReviewCreateInput) (*usecase.ReviewCreateOutput, error)
	ReviewDelete(ctx context.Context, in usecase.ReviewDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Browsing (public)
	r.GET("/api/v1/campgrounds", end.List)
	r.GET("/api/v1/campgrounds/:id", end.Detail)

	// Mutations (need authenticated, owner or moderator)
	r.POST("/api/v1/campgrounds", end.Create)
	r.PUT("/api/v1/campgrounds/:id", end.Update)
	r.DELETE("/api/v1/campgrounds/:id", end.Delete)
	r.PUT("/api/v1/campgrounds/:id/image", end.UploadImage)

	// Reviews
	r.POST("/api/v1/campgrounds/:id/reviews", end.ReviewCreate)
	r.DELETE("/api/v1/campgrounds/:id/reviews/:reviewId", end.ReviewDelete)
}
