// Package blobstore defines the interface used to persist generated PDFs in
// object storage and hand out short-lived download links for them.
package blobstore

import (
	"context"
	"time"
)

// Store is the abstraction for object storage backends. Keys are opaque
// slash-separated paths owned by the caller.
//
//go:generate mockgen -package mockblobstore -source=interface.go -destination=mock/mockblobstore.go *
type Store interface {
	// Put uploads a blob under the given key, replacing any previous object
	// stored there.
	Put(ctx context.Context, key, contentType string, body []byte) error
	// Get fetches the blob stored under key. A missing object returns an
	// error satisfying serrors.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// PresignGet returns a URL that downloads the object without further
	// authentication until expiry. When filename is non-empty the URL forces
	// a download under that name.
	PresignGet(ctx context.Context, key, filename string, expiry time.Duration) (string, error)
	// Remove deletes the object. Removing a missing object is not an error.
	Remove(ctx context.Context, key string) error
}
