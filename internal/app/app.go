package app

import (
	"context"
	"net/http"

	"github.com/camporahq/campora/internal/pkg/clock"
	"github.com/camporahq/campora/internal/pkg/config"
	"github.com/camporahq/campora/internal/pkg/goroutine"
	"github.com/camporahq/campora/internal/pkg/hash"
	"github.com/camporahq/campora/internal/pkg/idempotency"
	"github.com/camporahq/campora/internal/pkg/instrument"
	"github.com/camporahq/campora/internal/pkg/mail"
	"github.com/camporahq/campora/internal/pkg/messaging"
	"github.com/camporahq/campora/internal/pkg/otp"
	"github.com/camporahq/campora/internal/pkg/router"
	"github.com/camporahq/campora/internal/pkg/session"
	"github.com/camporahq/campora/internal/pkg/storage"
	"github.com/camporahq/campora/internal/pkg/uid"
	"github.com/camporahq/campora/internal/pkg/validator"
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	uid       uid.NumberID
	oid       uid.StringID
	uuid      uid.StringID
	codes     otp.Generator

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	sessions  session.Manager
	mail      mail.Mail
	messaging messaging.Messaging
	storage   storage.Storage
	casbin    *casbin.Enforcer

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initDatabase()
	app.initCache()
	app.initSession()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
