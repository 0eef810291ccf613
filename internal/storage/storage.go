// Package storage is the persistence gateway: a durable key-value store
// with string keys and string values. The auth core only ever touches the
// two keys below; everything else about durability (driver, schema,
// migrations) is this package's business.
package storage

import (
	"context"
	"errors"
)

// Keys used by the auth core.
const (
	// KeyUsers holds the full user-registry snapshot as a JSON array.
	KeyUsers = "usuarios"
	// KeySession holds the currently active session token as plain text.
	KeySession = "sessao"
)

// ErrUnavailable wraps any failure of the underlying store. Callers match
// it with errors.Is and treat the operation as failed-safe; it must never
// take down the session state machine.
var ErrUnavailable = errors.New("local storage unavailable")

// Store is the gateway contract. Get returns ("", nil) for an absent key —
// absence is not an error. All operations may fail with ErrUnavailable.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
