package storage

import (
	"context"
	"io"
)

// UploadedImage identifies an image held by the storage backend.
type UploadedImage struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// ImageStore uploads and removes service images.
type ImageStore interface {
	UploadImage(ctx context.Context, file io.Reader, folder, name string) (*UploadedImage, error)
	DeleteImage(ctx context.Context, publicID string) error
}
