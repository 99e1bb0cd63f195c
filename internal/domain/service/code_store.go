package service

import (
	"context"
	"errors"
	"time"
)

// ErrCodeNotFound is returned by Get when no entry exists for the key.
var ErrCodeNotFound = errors.New("code not found")

// ErrCodeExpired is returned by Get when the entry outlived its TTL; the
// entry is removed as a side effect. Stores that delegate expiry to the
// backend (Redis) cannot tell the two cases apart and return ErrCodeNotFound.
var ErrCodeExpired = errors.New("code expired")

// CodeStore is a TTL key-value contract for one-time password-reset codes.
// Keys are case-folded email addresses. The in-process implementation loses
// entries on restart, which is acceptable here; multi-instance deployments
// configure the shared Redis implementation instead.
type CodeStore interface {
	// Put stores value under key, replacing any prior entry, expiring after ttl.
	Put(ctx context.Context, key, value string, ttl time.Duration) error

	// Get returns the live value for key, or ErrCodeNotFound/ErrCodeExpired.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
