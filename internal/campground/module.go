package campground

import (
	"github.com/camporahq/campora/internal/campground/inbound"
	"github.com/camporahq/campora/internal/campground/outbound/db"
	"github.com/camporahq/campora/internal/campground/outbound/mq"
	"github.com/camporahq/campora/internal/campground/usecase"
	"github.com/camporahq/campora/internal/pkg/config"
	"github.com/camporahq/campora/internal/pkg/instrument"
	"github.com/camporahq/campora/internal/pkg/messaging"
	"github.com/camporahq/campora/internal/pkg/router"
	"github.com/camporahq/campora/internal/pkg/storage"
	"github.com/camporahq/campora/internal/pkg/uid"
	"github.com/camporahq/campora/internal/pkg/validator"
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Storage    storage.Storage            `validate:"required"`
	Enforcer   *casbin.Enforcer           `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbCampground := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbCampground,
		RepoMessaging: repoMsg,
		Storage:       dep.Storage,
		Validator:     dep.Validator,
		Config:        dep.Config,
		UID:           dep.UID,
		UUID:          dep.UUID,
		Enforcer:      dep.Enforcer,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
