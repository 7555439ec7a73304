package storage

import (
	"context"
	"io"
)

// Storage is the external media-store capability: store bytes, return a
// public URL. Nothing in this system ever deletes a stored object, including
// product deletion.
type Storage interface {
	// Upload stores a file and returns the result with key and public URL.
	Upload(ctx context.Context, input *UploadInput) (*UploadResult, error)
}

// UploadInput holds the parameters for uploading a file.
type UploadInput struct {
	Key         string
	ContentType string
	Size        int64
	Data        io.Reader
}

// UploadResult holds the result of a successful upload.
type UploadResult struct {
	Key string
	URL string
}
