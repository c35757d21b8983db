package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotConfigured is returned when no object store credentials are set.
var ErrNotConfigured = errors.New("object storage is not configured")

// StoredObject describes an uploaded file.
type StoredObject struct {
	// ID is opaque; pass it back to Delete.
	ID     string
	URL    string
	Size   int64
	Format string
}

// StorageService defines the interface for storage operations.
type StorageService interface {
	Upload(ctx context.Context, file io.Reader, folder, filename string) (*StoredObject, error)
	Delete(ctx context.Context, id string) error
}

// UnconfiguredStorage rejects every call with ErrNotConfigured.
type UnconfiguredStorage struct{}

func (UnconfiguredStorage) Upload(context.Context, io.Reader, string, string) (*StoredObject, error) {
	return nil, ErrNotConfigured
}

func (UnconfiguredStorage) Delete(context.Context, string) error {
	return ErrNotConfigured
}
