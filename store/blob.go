// Package store provides the content-addressed blob storage that sits
// outside the identity engine proper (spec §6's "content-addressed
// storage" external collaborator): the engine computes an H, store
// persists and retrieves the bytes that hash to it.
package store

import (
	"context"
	"errors"

	"github.com/dacite/dacite/hash"
)

// ErrNotFound is returned by Get when no blob is stored under the given
// hash.
var ErrNotFound = errors.New("store: blob not found")

// Blob persists raw bytes addressed by their hash. Implementations do not
// verify that the supplied H actually matches the bytes being stored —
// that is the caller's responsibility, since computing it requires
// knowing the value's type (§2).
type Blob interface {
	Put(ctx context.Context, h hash.H, data []byte) error
	Get(ctx context.Context, h hash.H) ([]byte, error)
}
