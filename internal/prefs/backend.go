// Package prefs persists the last used typing configuration.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/verte-zerg/akshara/internal/store"
)

// BackendType names a preference storage driver.
type BackendType string

// Supported backends.
const (
	BackendMemory BackendType = "memory"
	BackendSQLite BackendType = "sqlite"
	BackendRedis  BackendType = "redis"
)

// Common errors for backend construction.
var (
	ErrInvalidConfig  = errors.New("invalid backend configuration")
	ErrInvalidBackend = errors.New("invalid backend type")
)

const redisKeyPrefix = "akshara:"

// Backend is a string key-value store.
type Backend interface {
	// Get returns the value for key. The boolean is false when the key is
	// not set; that is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ParseBackendType parses a backend name.
func ParseBackendType(name string) (BackendType, error) {
	switch t := BackendType(strings.ToLower(strings.TrimSpace(name))); t {
	case BackendMemory, BackendSQLite, BackendRedis:
		return t, nil
	case "":
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBackend, name)
	}
}

// Option configures a backend.
type Option func(*backendConfig)

type backendConfig struct {
	sqlite      *store.Store
	redisClient *redis.Client
}

// WithSQLiteStore sets the database used by the sqlite backend. The backend
// does not own the store and leaves it open on Close.
func WithSQLiteStore(s *store.Store) Option {
	return func(c *backendConfig) {
		c.sqlite = s
	}
}

// WithRedisClient sets the client used by the redis backend.
func WithRedisClient(client *redis.Client) Option {
	return func(c *backendConfig) {
		c.redisClient = client
	}
}

// NewBackend creates a backend of the given type.
func NewBackend(backendType BackendType, opts ...Option) (Backend, error) {
	config := &backendConfig{}
	for _, opt := range opts {
		opt(config)
	}

	switch backendType {
	case BackendMemory:
		return &memoryBackend{values: map[string]string{}}, nil
	case BackendSQLite:
		if config.sqlite == nil {
			return nil, ErrInvalidConfig
		}
		return &sqliteBackend{store: config.sqlite}, nil
	case BackendRedis:
		if config.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		return &redisBackend{client: config.redisClient}, nil
	default:
		return nil, ErrInvalidBackend
	}
}

type memoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

func (b *memoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *memoryBackend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
	return nil
}

func (b *memoryBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.values, key)
	return nil
}

func (b *memoryBackend) Close() error {
	return nil
}

type sqliteBackend struct {
	store *store.Store
}

func (b *sqliteBackend) Get(ctx context.Context, key string) (string, bool, error) {
	return b.store.GetPreference(ctx, key)
}

func (b *sqliteBackend) Set(ctx context.Context, key, value string) error {
	return b.store.SetPreference(ctx, key, value)
}

func (b *sqliteBackend) Delete(ctx context.Context, key string) error {
	return b.store.DeletePreference(ctx, key)
}

func (b *sqliteBackend) Close() error {
	return nil
}

type redisBackend struct {
	client *redis.Client
}

func (b *redisBackend) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := b.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (b *redisBackend) Set(ctx context.Context, key, value string) error {
	return b.client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (b *redisBackend) Delete(ctx context.Context, key string) error {
	return b.client.Del(ctx, redisKeyPrefix+key).Err()
}

func (b *redisBackend) Close() error {
	return b.client.Close()
}
