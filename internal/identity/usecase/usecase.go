package usecase

import (
	"context"
	"time"

	"github.com/camporahq/campora/internal/identity/entity"
	"github.com/camporahq/campora/internal/pkg/clock"
	"github.com/camporahq/campora/internal/pkg/config"
	"github.com/camporahq/campora/internal/pkg/hash"
	"github.com/camporahq/campora/internal/pkg/instrument"
	"github.com/camporahq/campora/internal/pkg/otp"
	"github.com/camporahq/campora/internal/pkg/session"
	"github.com/camporahq/campora/internal/pkg/uid"
	"github.com/camporahq/campora/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type UserRegisteredEvent struct {
	UserID   int64
	Email    string
	Username string
}

// FederatedUser is the identity resolved from an external OAuth provider.
type FederatedUser struct {
	ProviderID string
	Email      string
	Name       string
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	CreateUser(ctx context.Context, in entity.NewUser) error
	SetUserOTP(ctx context.Context, userID int64, code string, expiresAt time.Time) error
	ClearUserOTP(ctx context.Context, userID int64) error
	ConsumeUserOTP(ctx context.Context, userID int64) error
	LinkGoogleAccount(ctx context.Context, userID int64, googleID string) error
}

type repoCache interface {
	SavePendingLogin(ctx context.Context, flowKey, email string, ttl time.Duration) error
	GetPendingLogin(ctx context.Context, flowKey string) (string, error)
	DeletePendingLogin(ctx context.Context, flowKey string) error

	SaveOAuthState(ctx context.Context, state string, ttl time.Duration) error
	TakeOAuthState(ctx context.Context, state string) (bool, error)
}

type delivery interface {
	SendLoginCode(ctx context.Context, email, code string) error
}

type federation interface {
	AuthURL(state string) string
	ResolveUser(ctx context.Context, code string) (*FederatedUser, error)
}

type Usecase struct {
	repoDB        repoDB
	repoCache     repoCache
	repoMessaging repoMessaging
	delivery      delivery
	federation    federation
	sessions      session.Manager
	validator     validator.Validator
	cfg           config.Config
	hmac          hash.Hash
	uid           uid.NumberID
	oid           uid.StringID
	codes         otp.Generator
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoCache     repoCache
	RepoMessaging repoMessaging
	Delivery      delivery
	Federation    federation
	Sessions      session.Manager
	Validator     validator.Validator
	Config        config.Config
	HMAC          hash.Hash
	UID           uid.NumberID
	OID           uid.StringID
	Codes         otp.Generator
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoCache:     dep.RepoCache,
		repoMessaging: dep.RepoMessaging,
		delivery:      dep.Delivery,
		federation:    dep.Federation,
		sessions:      dep.Sessions,
		validator:     dep.Validator,
		cfg:           dep.Config,
		hmac:          dep.HMAC,
		uid:           dep.UID,
		oid:           dep.OID,
		codes:         dep.Codes,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) flowKey(flowToken string) (string, error) {
	sum, err := s.hmac.Hash(flowToken)
	if err != nil {
		return "", err
	}
	return string(sum), nil
}
