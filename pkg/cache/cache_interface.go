package cache

import (
	"context"
	"errors"
	"time"
)

// ErrBadValue wraps decode failures so callers can tell a corrupt stored
// value apart from a transport error.
var ErrBadValue = errors.New("cache: stored value cannot be decoded")

// Cache is the contract for the ephemeral key-value layer.
// Implementations: Redis (production), in-memory fakes (tests).
type Cache interface {
	// Get reads the value at key and unmarshals it into dest.
	// found = false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	// A zero TTL stores the key without expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Exists reports whether key is present and not expired.
	Exists(ctx context.Context, key string) (bool, error)

	// TTL returns the remaining lifetime of key.
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
