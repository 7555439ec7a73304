package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Jathavedas/memento-backend/internal/domain"
	"github.com/Jathavedas/memento-backend/internal/storage"
	apperrors "github.com/Jathavedas/memento-backend/pkg/errors"
)

// ImageUpload holds one file from a multipart create request.
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Data        io.Reader
}

// MediaRelay forwards uploaded image files to the external media store and
// collects the resulting public URLs, preserving input order.
type MediaRelay struct {
	storage storage.Storage
	folder  string
	logger  *slog.Logger
}

// NewMediaRelay creates a new media relay writing under the given logical folder.
func NewMediaRelay(store storage.Storage, folder string, logger *slog.Logger) *MediaRelay {
	return &MediaRelay{
		storage: store,
		folder:  folder,
		logger:  logger,
	}
}

// UploadAll relays every file to the media store and returns one public URL
// per file, in input order. Any failure fails the whole batch; objects already
// uploaded are not removed (there is no delete call anywhere in this system).
func (r *MediaRelay) UploadAll(ctx context.Context, uploads []ImageUpload) ([]string, error) {
	if len(uploads) == 0 {
		return nil, apperrors.InvalidInput("at least one image file is required")
	}
	if len(uploads) > domain.MaxImagesPerProduct {
		return nil, apperrors.InvalidInput(fmt.Sprintf("a maximum of %d images is allowed", domain.MaxImagesPerProduct))
	}

	urls := make([]string, 0, len(uploads))
	for _, u := range uploads {
		if !domain.IsAllowedImageContentType(u.ContentType) {
			return nil, apperrors.InvalidInput(fmt.Sprintf("content type %q is not allowed, must be jpg, jpeg, or png", u.ContentType))
		}

		key := fmt.Sprintf("%s/%s%s", r.folder, uuid.New().String(), extensionFor(u.ContentType))

		result, err := r.storage.Upload(ctx, &storage.UploadInput{
			Key:         key,
			ContentType: u.ContentType,
			Size:        u.Size,
			Data:        u.Data,
		})
		if err != nil {
			return nil, fmt.Errorf("upload image %s: %w", u.FileName, err)
		}

		r.logger.DebugContext(ctx, "image uploaded",
			slog.String("key", result.Key),
			slog.String("file_name", u.FileName),
			slog.Int64("size", u.Size),
		)

		urls = append(urls, result.URL)
	}

	return urls, nil
}

// extensionFor maps an allowed content type to a file extension.
func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	default:
		return ".jpg"
	}
}
