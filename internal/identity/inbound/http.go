package inbound

import (
	"context"

	"github.com/camporahq/campora/internal/identity/usecase"
	"github.com/camporahq/campora/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) error

	LoginRequest(ctx context.Context, in usecase.LoginRequestInput) (*usecase.LoginRequestOutput, error)
	LoginVerify(ctx context.Context, in usecase.LoginVerifyInput) (*usecase.LoginVerifyOutput, error)
	LoginResend(ctx context.Context, in usecase.LoginResendInput) error

	OAuthGoogleURL(ctx context.Context) (*usecase.OAuthGoogleURLOutput, error)
	OAuthGoogleCallback(ctx context.Context, in usecase.OAuthGoogleCallbackInput) (*usecase.OAuthGoogleCallbackOutput, error)

	Logout(ctx context.Context, in usecase.LogoutInput) error
	Profile(ctx context.Context, in usecase.ProfileInput) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Passwordless authentication
	r.POST("/api/v1/auth/register", end.Register)
	r.POST("/api/v1/auth/login", end.LoginRequest)
	r.POST("/api/v1/auth/login/verify", end.LoginVerify)
	r.POST("/api/v1/auth/login/resend", end.LoginResend)

	// Federated authentication
	r.GET("/api/v1/auth/google", end.OAuthGoogleURL)
	r.GET("/api/v1/auth/google/callback", end.OAuthGoogleCallback)

	// Session (need authenticated)
	r.POST("/api/v1/auth/logout", end.Logout)
	r.GET("/api/v1/auth/profile", end.Profile)
}
