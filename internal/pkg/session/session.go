package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/camporahq/campora/internal/pkg/hash"
	"github.com/camporahq/campora/internal/pkg/uid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Auth is the identity bound to an authenticated request.
type Auth struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Manager defines the session lifecycle contract.
type Manager interface {
	// Establish creates a session for the identity and returns its token.
	Establish(ctx context.Context, auth Auth) (string, error)
	// Current resolves a token to its bound identity, or nil when the token
	// is missing, unknown or expired. It only errors on store failure.
	Current(ctx context.Context, token string) (*Auth, error)
	// Destroy removes the session binding. It is idempotent.
	Destroy(ctx context.Context, token string) error
}

// RedisManager implements Manager on top of a Redis client.
type RedisManager struct {
	client *redis.Client
	hmac   hash.Hash
	tokens uid.StringID
	ttl    time.Duration
}

// NewRedisManager constructs a RedisManager.
//
// tokens must produce unpredictable values; ttl bounds the session lifetime
// in the store.
func NewRedisManager(client *redis.Client, hmac hash.Hash, tokens uid.StringID, ttl time.Duration) *RedisManager {
	return &RedisManager{
		client: client,
		hmac:   hmac,
		tokens: tokens,
		ttl:    ttl,
	}
}

// Establish creates a session for the identity and returns its token.
func (m *RedisManager) Establish(ctx context.Context, auth Auth) (string, error) {
	token := m.tokens.Generate()

	key, err := m.key(token)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(auth)
	if err != nil {
		return "", err
	}

	if err := m.client.Set(ctx, key, payload, m.ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Current resolves a token to its bound identity.
func (m *RedisManager) Current(ctx context.Context, token string) (*Auth, error) {
	if token == "" {
		return nil, nil
	}

	key, err := m.key(token)
	if err != nil {
		return nil, err
	}

	payload, err := m.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var auth Auth
	if err := json.Unmarshal(payload, &auth); err != nil {
		return nil, err
	}

	return &auth, nil
}

// Destroy removes the session binding.
func (m *RedisManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	key, err := m.key(token)
	if err != nil {
		return err
	}

	return m.client.Del(ctx, key).Err()
}

func (m *RedisManager) key(token string) (string, error) {
	sum, err := m.hmac.Hash(token)
	if err != nil {
		return "", err
	}
	return keyPrefix + string(sum), nil
}
