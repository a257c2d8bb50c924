package google

import (
	"context"

	"github.com/camporahq/campora/internal/identity/usecase"
	"github.com/camporahq/campora/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Federation resolves Google identities through the OAuth2 auth-code flow.
type Federation struct {
	cfg *oauth2.Config
	ins instrument.Instrumentation
}

func NewFederation(clientID, clientSecret, redirectURL string, ins instrument.Instrumentation) *Federation {
	return &Federation{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     oauthgoogle.Endpoint,
		},
		ins: ins,
	}
}

func (f *Federation) AuthURL(state string) string {
	return f.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (f *Federation) ResolveUser(ctx context.Context, code string) (*usecase.FederatedUser, error) {
	ctx, span := f.ins.Tracer("identity.outbound.google").Start(ctx, "ResolveUser")
	defer span.End()

	token, err := f.cfg.Exchange(ctx, code)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	svc, err := goauth2.NewService(ctx, option.WithTokenSource(f.cfg.TokenSource(ctx, token)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return &usecase.FederatedUser{
		ProviderID: info.Id,
		Email:      info.Email,
		Name:       info.Name,
	}, nil
}
