package identity

import (
	"github.com/camporahq/campora/internal/identity/inbound"
	"github.com/camporahq/campora/internal/identity/outbound/cache"
	"github.com/camporahq/campora/internal/identity/outbound/db"
	"github.com/camporahq/campora/internal/identity/outbound/google"
	identitymail "github.com/camporahq/campora/internal/identity/outbound/mail"
	"github.com/camporahq/campora/internal/identity/outbound/mq"
	"github.com/camporahq/campora/internal/identity/usecase"
	"github.com/camporahq/campora/internal/pkg/clock"
	"github.com/camporahq/campora/internal/pkg/config"
	"github.com/camporahq/campora/internal/pkg/hash"
	"github.com/camporahq/campora/internal/pkg/instrument"
	"github.com/camporahq/campora/internal/pkg/mail"
	"github.com/camporahq/campora/internal/pkg/messaging"
	"github.com/camporahq/campora/internal/pkg/otp"
	"github.com/camporahq/campora/internal/pkg/router"
	"github.com/camporahq/campora/internal/pkg/session"
	"github.com/camporahq/campora/internal/pkg/uid"
	"github.com/camporahq/campora/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  *redis.Client              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Sessions   session.Manager            `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	OID        uid.StringID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Codes      otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	cacheAuth := cache.NewCache(dep.CacheConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	delivery := identitymail.New(dep.Mail, dep.Instrument)
	federation := google.NewFederation(
		dep.Config.GetString("modules.identity.google.client_id"),
		dep.Config.GetString("modules.identity.google.client_secret"),
		dep.Config.GetString("modules.identity.google.redirect_url"),
		dep.Instrument,
	)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoCache:     cacheAuth,
		RepoMessaging: repoMsg,
		Delivery:      delivery,
		Federation:    federation,
		Sessions:      dep.Sessions,
		Validator:     dep.Validator,
		Config:        dep.Config,
		HMAC:          dep.HMAC,
		UID:           dep.UID,
		OID:           dep.OID,
		Codes:         dep.Codes,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
