package inbound

import (
	"github.com/camporahq/campora/internal/identity/usecase"
	"github.com/camporahq/campora/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for registration, passwordless login and
// profile workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new user account.
// @Summary Register user
// @Description Creates a new account with a unique username and email.
// @Tags Identity, Authentication
// @Accept json
// @Param request body RegisterRequest true "Registration payload"
// @Success 204 "No Content"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Username or email already exists"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// LoginRequest starts a passwordless login by emailing a one-time code.
// @Summary Request login code
// @Description Issues a one-time code for the account and emails it. Returns a flow token used to verify or resend.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Login flow started"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "No account found with this email address"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) LoginRequest(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.LoginRequest(r.Context(), usecase.LoginRequestInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	message := "Code sent. Check your email"
	if !resp.Delivered {
		message = "Failed to send code. Please try again"
	}

	return LoginResponse{
		FlowToken: resp.FlowToken,
		Delivered: resp.Delivered,
		Message:   message,
	}, nil
}

// LoginVerify completes a passwordless login with the emailed code.
// @Summary Verify login code
// @Description Checks the submitted code and establishes a session on success.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginVerifyRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=LoginVerifyResponse} "Session established"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid, expired or missing code"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login/verify [post]
func (h *HTTPEndpoint) LoginVerify(r *router.Request) (any, error) {
	var req LoginVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.LoginVerify(r.Context(), usecase.LoginVerifyInput{
		FlowToken: req.FlowToken,
		Code:      req.Code,
	})
	if err != nil {
		return nil, err
	}

	return LoginVerifyResponse{
		Token:    resp.Token,
		Username: resp.Username,
	}, nil
}

// LoginResend re-issues and re-sends the one-time code for a pending login.
// @Summary Resend login code
// @Description Invalidates the previous code, issues a fresh one and emails it.
// @Tags Identity, Authentication
// @Accept json
// @Param request body LoginResendRequest true "Resend payload"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Please start the login process again"
// @Failure 500 {object} router.errorResponse "Failed to send code"
// @Router /api/v1/auth/login/resend [post]
func (h *HTTPEndpoint) LoginResend(r *router.Request) (any, error) {
	var req LoginResendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.LoginResend(r.Context(), usecase.LoginResendInput{FlowToken: req.FlowToken}); err != nil {
		return nil, err
	}

	return nil, nil
}

// OAuthGoogleURL returns the Google consent URL for federated login.
// @Summary Google login URL
// @Tags Identity, Authentication
// @Produce json
// @Success 200 {object} router.successResponse{data=OAuthGoogleURLResponse} "Consent URL"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/google [get]
func (h *HTTPEndpoint) OAuthGoogleURL(r *router.Request) (any, error) {
	resp, err := h.uc.OAuthGoogleURL(r.Context())
	if err != nil {
		return nil, err
	}

	return OAuthGoogleURLResponse{URL: resp.URL}, nil
}

// OAuthGoogleCallback completes the Google federated login.
// @Summary Google login callback
// @Tags Identity, Authentication
// @Produce json
// @Param state query string true "Opaque state issued by the consent URL endpoint"
// @Param code query string true "Authorization code from Google"
// @Success 200 {object} router.successResponse{data=LoginVerifyResponse} "Session established"
// @Failure 401 {object} router.errorResponse "Unknown or reused state"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/google/callback [get]
func (h *HTTPEndpoint) OAuthGoogleCallback(r *router.Request) (any, error) {
	resp, err := h.uc.OAuthGoogleCallback(r.Context(), usecase.OAuthGoogleCallbackInput{
		State: r.GetQuery("state"),
		Code:  r.GetQuery("code"),
	})
	if err != nil {
		return nil, err
	}

	return LoginVerifyResponse{
		Token:    resp.Token,
		Username: resp.Username,
	}, nil
}

// Logout destroys the caller's session.
// @Summary Logout
// @Tags Identity, Authentication
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "You must be signed in first"
// @Router /api/v1/auth/logout [post]
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	if err := h.uc.Logout(r.Context(), usecase.LogoutInput{
		Token: router.SessionToken(r.Request),
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// Profile returns the caller's account.
// @Summary Get profile
// @Tags Identity
// @Produce json
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Account"
// @Failure 401 {object} router.errorResponse "You must be signed in first"
// @Router /api/v1/auth/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context(), usecase.ProfileInput{})
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:         resp.ID,
		Email:      resp.Email,
		Username:   resp.Username,
		Role:       resp.Role,
		IsVerified: resp.IsVerified,
	}, nil
}
