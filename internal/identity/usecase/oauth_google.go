package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/camporahq/campora/internal/identity/entity"
	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/camporahq/campora/internal/pkg/session"
)

type OAuthGoogleURLOutput struct {
	URL string
}

// OAuthGoogleURL builds the Google consent URL with a single-use state value.
func (s *Usecase) OAuthGoogleURL(ctx context.Context) (*OAuthGoogleURLOutput, error) {
	ctx, span := s.startSpan(ctx, "OAuthGoogleURL")
	defer span.End()

	state := s.oid.Generate()
	ttl := s.cfg.GetMinute("modules.identity.oauth_state_ttl_minutes")
	if err := s.repoCache.SaveOAuthState(ctx, state, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to save oauth state", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &OAuthGoogleURLOutput{URL: s.federation.AuthURL(state)}, nil
}

type OAuthGoogleCallbackInput struct {
	State string `validate:"required"`
	Code  string `validate:"required"`
}

type OAuthGoogleCallbackOutput struct {
	Token    string
	Username string
}

// OAuthGoogleCallback completes the federated login: it checks the state,
// resolves the Google identity, finds or creates the matching account and
// establishes a session. Accounts reached this way are considered verified
// since Google attests the email.
func (s *Usecase) OAuthGoogleCallback(ctx context.Context, in OAuthGoogleCallbackInput) (*OAuthGoogleCallbackOutput, error) {
	ctx, span := s.startSpan(ctx, "OAuthGoogleCallback")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	ok, err := s.repoCache.TakeOAuthState(ctx, in.State)
	if err != nil {
		slog.ErrorContext(ctx, "failed to take oauth state", "error", err)
		return nil, goerror.NewServer(err)
	}
	if !ok {
		slog.WarnContext(ctx, "oauth state unknown or reused")
		return nil, goerror.NewBusiness("Please start the login process again", goerror.CodeUnauthorized)
	}

	fed, err := s.federation.ResolveUser(ctx, in.Code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to resolve federated user", "error", err)
		return nil, goerror.NewServer(err)
	}

	user, err := s.resolveAccount(ctx, fed)
	if err != nil {
		return nil, err
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

	return &OAuthGoogleCallbackOutput{Token: token, Username: user.Username}, nil
}

func (s *Usecase) resolveAccount(ctx context.Context, fed *FederatedUser) (*entity.User, error) {
	user, err := s.repoDB.GetUserByGoogleID(ctx, fed.ProviderID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by google id", "error", err)
		return nil, goerror.NewServer(err)
	}

	email := strings.TrimSpace(strings.ToLower(fed.Email))

	user, err = s.repoDB.GetUserByEmail(ctx, email)
	if err == nil {
		if err := s.repoDB.LinkGoogleAccount(ctx, user.ID, fed.ProviderID); err != nil {
			slog.ErrorContext(ctx, "failed to repo link google account", "user_id", user.ID, "error", err)
			return nil, goerror.NewServer(err)
		}
		user.IsVerified = true
		user.GoogleID = fed.ProviderID
		return user, nil
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	newUser := entity.NewUser{
		ID:         s.uid.Generate(),
		Email:      email,
		Username:   usernameFromEmail(email),
		Role:       entity.RoleUser,
		IsVerified: true,
		GoogleID:   fed.ProviderID,
	}

	err = s.repoDB.CreateUser(ctx, newUser)
	if errors.Is(err, goerror.ErrConflict) {
		// Username taken by someone else; retry once with a numeric suffix.
		newUser.Username += strconv.FormatInt(newUser.ID%100000, 10)
		err = s.repoDB.CreateUser(ctx, newUser)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create federated user", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishUserRegistered(ctx, UserRegisteredEvent{
		UserID:   newUser.ID,
		Email:    newUser.Email,
		Username: newUser.Username,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user registered", "user_id", newUser.ID, "error", err)
	}

	return &entity.User{
		ID:         newUser.ID,
		Email:      newUser.Email,
		Username:   newUser.Username,
		Role:       newUser.Role,
		IsVerified: true,
		GoogleID:   newUser.GoogleID,
	}, nil
}

func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var b strings.Builder
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	if b.Len() < 3 {
		return "user" + b.String()
	}

	return b.String()
}
