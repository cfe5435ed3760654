package photostore

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("photo not found")

// PhotoStore holds the image bytes behind inspection photos. Photos are
// grouped under a prefix, one per inspection item, so an item's photos can
// be dropped together. Keys have the form "<prefix>/<name>" and are safe to
// embed in a URL path.
type PhotoStore interface {
	Save(ctx context.Context, prefix, mimeType string, r io.Reader) (storageKey string, err error)
	Get(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
	// DeletePrefix removes every photo saved under prefix. A prefix with no
	// photos is not an error.
	DeletePrefix(ctx context.Context, prefix string) error
}
