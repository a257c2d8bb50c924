package cache

import (
	"context"
	"errors"
	"time"

	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/camporahq/campora/internal/pkg/instrument"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	pendingLoginPrefix = "login_pending:"
	oauthStatePrefix   = "oauth_state:"
)

// Cache holds the transient login flow state in Redis: pending-login slots
// keyed by hashed flow token, and single-use OAuth state values.
type Cache struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

func NewCache(client *redis.Client, ins instrument.Instrumentation) *Cache {
	return &Cache{client: client, ins: ins}
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("identity.outbound.cache").Start(ctx, name)
}

func (c *Cache) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (c *Cache) SavePendingLogin(ctx context.Context, flowKey, email string, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "SavePendingLogin")
	defer func() { c.endSpan(span, err) }()

	err = c.client.Set(ctx, pendingLoginPrefix+flowKey, email, ttl).Err()
	return err
}

func (c *Cache) GetPendingLogin(ctx context.Context, flowKey string) (_ string, err error) {
	ctx, span := c.startSpan(ctx, "GetPendingLogin")
	defer func() { c.endSpan(span, err) }()

	email, err := c.client.Get(ctx, pendingLoginPrefix+flowKey).Result()
	if errors.Is(err, redis.Nil) {
		err = goerror.ErrNotFound
		return "", err
	}
	if err != nil {
		return "", err
	}

	return email, nil
}

func (c *Cache) DeletePendingLogin(ctx context.Context, flowKey string) (err error) {
	ctx, span := c.startSpan(ctx, "DeletePendingLogin")
	defer func() { c.endSpan(span, err) }()

	err = c.client.Del(ctx, pendingLoginPrefix+flowKey).Err()
	return err
}

func (c *Cache) SaveOAuthState(ctx context.Context, state string, ttl time.Duration) (err error) {
	ctx, span := c.startSpan(ctx, "SaveOAuthState")
	defer func() { c.endSpan(span, err) }()

	err = c.client.Set(ctx, oauthStatePrefix+state, "1", ttl).Err()
	return err
}

// TakeOAuthState atomically consumes the state so it cannot be replayed.
func (c *Cache) TakeOAuthState(ctx context.Context, state string) (_ bool, err error) {
	ctx, span := c.startSpan(ctx, "TakeOAuthState")
	defer func() { c.endSpan(span, err) }()

	n, err := c.client.Del(ctx, oauthStatePrefix+state).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
