package usecase

import (
	"context"
	"log/slog"

	"github.com/camporahq/campora/internal/campground/entity"
	"github.com/camporahq/campora/internal/pkg/config"
	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/camporahq/campora/internal/pkg/instrument"
	"github.com/camporahq/campora/internal/pkg/session"
	"github.com/camporahq/campora/internal/pkg/storage"
	"github.com/camporahq/campora/internal/pkg/uid"
	"github.com/camporahq/campora/internal/pkg/validator"
	"github.com/casbin/casbin/v3"
	"go.opentelemetry.io/otel/trace"
)

type ReviewCreatedEvent struct {
	ReviewID       int64
	CampgroundID   int64
	CampgroundName string
	OwnerID        int64
	AuthorID       int64
	AuthorName     string
	Rating         int16
}

type repoMessaging interface {
	PublishReviewCreated(ctx context.Context, msg ReviewCreatedEvent) error
}

type repoDB interface {
	GetCampgroundByID(ctx context.Context, id int64) (*entity.Campground, error)
	ListCampgrounds(ctx context.Context, filter entity.ListFilter) ([]entity.Campground, int64, error)
	ListReviewsByCampground(ctx context.Context, campgroundID int64) ([]entity.Review, error)
	GetReviewByID(ctx context.Context, id, campgroundID int64) (*entity.Review, error)

	CreateCampground(ctx context.Context, in entity.NewCampground) error
	UpdateCampground(ctx context.Context, in entity.UpdateCampground) error
	UpdateCampgroundImage(ctx context.Context, id int64, imageURL string) error
	DeleteCampground(ctx context.Context, id int64) error

	CreateReview(ctx context.Context, in entity.NewReview) error
	DeleteReview(ctx context.Context, id, campgroundID int64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	storage       storage.Storage
	validator     validator.Validator
	cfg           config.Config
	uid           uid.NumberID
	uuid          uid.StringID
	enforcer      *casbin.Enforcer
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Storage       storage.Storage
	Validator     validator.Validator
	Config        config.Config
	UID           uid.NumberID
	UUID          uid.StringID
	Enforcer      *casbin.Enforcer
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		storage:       dep.Storage,
		validator:     dep.Validator,
		cfg:           dep.Config,
		uid:           dep.UID,
		uuid:          dep.UUID,
		enforcer:      dep.Enforcer,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("campground.usecase").Start(ctx, name)
}

// authenticated resolves the acting identity before any resource lookup so
// anonymous callers never learn whether a resource exists.
func (s *Usecase) authenticated(ctx context.Context) (*session.Auth, error) {
	auth := session.GetAuth(ctx)
	if auth == nil {
		return nil, goerror.NewBusiness("You must be signed in first", goerror.CodeUnauthorized)
	}

	return auth, nil
}

// allowOwner permits the resource owner, or a role the policy grants the
// moderate action on the object.
func (s *Usecase) allowOwner(ctx context.Context, auth *session.Auth, obj string, ownerID int64) error {
	if auth.UserID == ownerID {
		return nil
	}

	ok, err := s.enforcer.Enforce(auth.Role, obj, "moderate")
	if err != nil {
		slog.ErrorContext(ctx, "failed to check authorization", "user_id", auth.UserID, "object", obj, "error", err)
		return goerror.NewServer(err)
	}

	if !ok {
		return goerror.NewBusiness("You do not have permission to do that", goerror.CodeForbidden)
	}

	return nil
}
