package inbound

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

type LoginResponse struct {
	FlowToken string `json:"flow_token"`
	Delivered bool   `json:"delivered"`
	Message   string `json:"message"`
}

type LoginVerifyRequest struct {
	FlowToken string `json:"flow_token"`
	Code      string `json:"code"`
}

type LoginVerifyResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type LoginResendRequest struct {
	FlowToken string `json:"flow_token"`
}

type OAuthGoogleURLResponse struct {
	URL string `json:"url"`
}

type ProfileResponse struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}
