package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jathavedas/memento-backend/internal/domain"
	"github.com/Jathavedas/memento-backend/internal/storage"
	"github.com/Jathavedas/memento-backend/internal/storage/memory"
	apperrors "github.com/Jathavedas/memento-backend/pkg/errors"
)

// --- Mock Storage ---

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Upload(ctx context.Context, input *storage.UploadInput) (*storage.UploadResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

// --- Test helpers ---

func jpegUpload(name string) ImageUpload {
	return ImageUpload{
		FileName:    name,
		ContentType: "image/jpeg",
		Size:        128,
		Data:        strings.NewReader("fake-jpeg-bytes"),
	}
}

// --- Tests ---

func TestMediaRelay_UploadAll_Success(t *testing.T) {
	store := memory.New("http://localhost:3000/media")
	relay := NewMediaRelay(store, "products", newTestLogger())

	urls, err := relay.UploadAll(context.Background(), []ImageUpload{
		jpegUpload("front.jpg"),
		jpegUpload("back.jpg"),
	})

	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.Equal(t, 2, store.Len())
	for _, u := range urls {
		assert.True(t, strings.HasPrefix(u, "http://localhost:3000/media/products/"))
		assert.True(t, strings.HasSuffix(u, ".jpg"))
	}
	assert.NotEqual(t, urls[0], urls[1], "each upload gets its own key")
}

func TestMediaRelay_UploadAll_PNGExtension(t *testing.T) {
	store := memory.New("http://localhost:3000/media")
	relay := NewMediaRelay(store, "products", newTestLogger())

	urls, err := relay.UploadAll(context.Background(), []ImageUpload{
		{
			FileName:    "front.png",
			ContentType: "image/png",
			Size:        64,
			Data:        strings.NewReader("fake-png-bytes"),
		},
	})

	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.True(t, strings.HasSuffix(urls[0], ".png"))
}

func TestMediaRelay_UploadAll_NoFiles(t *testing.T) {
	store := memory.New("http://localhost:3000/media")
	relay := NewMediaRelay(store, "products", newTestLogger())

	_, err := relay.UploadAll(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, 0, store.Len())
}

func TestMediaRelay_UploadAll_TooManyFiles(t *testing.T) {
	store := memory.New("http://localhost:3000/media")
	relay := NewMediaRelay(store, "products", newTestLogger())

	uploads := make([]ImageUpload, domain.MaxImagesPerProduct+1)
	for i := range uploads {
		uploads[i] = jpegUpload("extra.jpg")
	}

	_, err := relay.UploadAll(context.Background(), uploads)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, 0, store.Len(), "nothing is relayed when the batch is oversized")
}

func TestMediaRelay_UploadAll_DisallowedContentType(t *testing.T) {
	store := memory.New("http://localhost:3000/media")
	relay := NewMediaRelay(store, "products", newTestLogger())

	_, err := relay.UploadAll(context.Background(), []ImageUpload{
		{
			FileName:    "doc.pdf",
			ContentType: "application/pdf",
			Size:        64,
			Data:        strings.NewReader("%PDF-1.4"),
		},
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, 0, store.Len())
}

func TestMediaRelay_UploadAll_UploadFailure_AbortsBatch(t *testing.T) {
	store := new(mockStorage)
	relay := NewMediaRelay(store, "products", newTestLogger())

	store.On("Upload", mock.Anything, mock.AnythingOfType("*storage.UploadInput")).
		Return(&storage.UploadResult{Key: "products/a.jpg", URL: "http://cdn/products/a.jpg"}, nil).Once()
	store.On("Upload", mock.Anything, mock.AnythingOfType("*storage.UploadInput")).
		Return(nil, errors.New("connection reset")).Once()

	_, err := relay.UploadAll(context.Background(), []ImageUpload{
		jpegUpload("a.jpg"),
		jpegUpload("b.jpg"),
		jpegUpload("c.jpg"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload image b.jpg")
	// Only the two calls expected above: the first object stays put, the
	// third file is never attempted.
	store.AssertExpectations(t)
	store.AssertNumberOfCalls(t, "Upload", 2)
}

func TestMediaRelay_UploadAll_KeysAreFolderScoped(t *testing.T) {
	store := new(mockStorage)
	relay := NewMediaRelay(store, "memento-products", newTestLogger())

	store.On("Upload", mock.Anything, mock.MatchedBy(func(in *storage.UploadInput) bool {
		return strings.HasPrefix(in.Key, "memento-products/") && in.ContentType == "image/jpeg"
	})).Return(&storage.UploadResult{Key: "memento-products/x.jpg", URL: "http://cdn/x.jpg"}, nil)

	urls, err := relay.UploadAll(context.Background(), []ImageUpload{jpegUpload("a.jpg")})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://cdn/x.jpg"}, urls)
	store.AssertExpectations(t)
}
