// Package local stores photos on the filesystem, one directory per prefix:
//
//	<root>/item_12/0b5c...e1.jpg
//
// Files are written to a hidden temporary name and renamed into place, so a
// reader never sees a partial photo.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/vbonduro/carcheck/internal/photostore"
)

// extensions lists the image types the upload pipeline produces.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var errInvalidKey = errors.New("invalid storage key")

type LocalPhotoStore struct {
	root string
}

func NewLocalPhotoStore(basePath string) (*LocalPhotoStore, error) {
	root, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photo directory: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create photo directory: %w", err)
	}
	return &LocalPhotoStore{root: root}, nil
}

func (s *LocalPhotoStore) Save(_ context.Context, prefix, mimeType string, r io.Reader) (string, error) {
	if !validSegment(prefix) {
		return "", fmt.Errorf("%w: prefix %q", errInvalidKey, prefix)
	}
	ext, ok := extensions[mimeType]
	if !ok {
		return "", fmt.Errorf("unsupported photo type %q", mimeType)
	}

	dir := filepath.Join(s.root, prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", prefix, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		discard(tmp)
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		discard(tmp)
		return "", fmt.Errorf("failed to close photo file: %w", err)
	}

	name := uuid.NewString() + ext
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		discard(tmp)
		return "", fmt.Errorf("failed to store photo file: %w", err)
	}
	return path.Join(prefix, name), nil
}

func (s *LocalPhotoStore) Get(_ context.Context, storageKey string) (io.ReadCloser, error) {
	p, err := s.resolve(storageKey)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, photostore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open photo file: %w", err)
	}
	return f, nil
}

// Delete removes one photo, and its prefix directory once that is empty.
func (s *LocalPhotoStore) Delete(_ context.Context, storageKey string) error {
	p, err := s.resolve(storageKey)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return photostore.ErrNotFound
		}
		return fmt.Errorf("failed to delete photo file: %w", err)
	}
	// Fails while other photos remain; that is expected.
	_ = os.Remove(filepath.Dir(p))
	return nil
}

func (s *LocalPhotoStore) DeletePrefix(_ context.Context, prefix string) error {
	if !validSegment(prefix) {
		return fmt.Errorf("%w: prefix %q", errInvalidKey, prefix)
	}
	if err := os.RemoveAll(filepath.Join(s.root, prefix)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", prefix, err)
	}
	return nil
}

// resolve maps "<prefix>/<name>" onto a file under root. Anything else,
// including traversal and temporary upload names, is rejected.
func (s *LocalPhotoStore) resolve(storageKey string) (string, error) {
	prefix, name, ok := strings.Cut(storageKey, "/")
	if !ok || !validSegment(prefix) || !validSegment(name) {
		return "", fmt.Errorf("%w: %q", errInvalidKey, storageKey)
	}
	return filepath.Join(s.root, prefix, name), nil
}

func validSegment(seg string) bool {
	return seg != "" && !strings.HasPrefix(seg, ".") && !strings.ContainsAny(seg, `/\`)
}

func discard(f *os.File) {
	_ = f.Close()
	if err := os.Remove(f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to remove partial photo file", "path", f.Name(), "error", err)
	}
}
