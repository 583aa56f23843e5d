package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"strings"
	"testing"

	"verdant/internal/config"
	"verdant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blobStoreStub is a stub for blob.Store.
type blobStoreStub struct {
	putFn func(context.Context, string, []byte, string) (string, error)
}

func (s *blobStoreStub) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return s.putFn(ctx, key, data, contentType)
}

// attachmentRepoStub is a stub for repository.AttachmentRepository.
type attachmentRepoStub struct {
	createFn      func(context.Context, *models.Attachment) error
	listByPlantFn func(context.Context, string) ([]*models.Attachment, error)
}

func (s *attachmentRepoStub) Create(ctx context.Context, a *models.Attachment) error {
	return s.createFn(ctx, a)
}
func (s *attachmentRepoStub) ListByPlant(ctx context.Context, plantID string) ([]*models.Attachment, error) {
	return s.listByPlantFn(ctx, plantID)
}

func noopBlobStore() *blobStoreStub {
	return &blobStoreStub{
		putFn: func(_ context.Context, key string, _ []byte, _ string) (string, error) {
			return "/media/plants/" + key, nil
		},
	}
}

func noopAttachmentRepo() *attachmentRepoStub {
	return &attachmentRepoStub{
		createFn:      func(_ context.Context, _ *models.Attachment) error { return nil },
		listByPlantFn: func(_ context.Context, _ string) ([]*models.Attachment, error) { return nil, nil },
	}
}

// pngPayload encodes a small solid-color PNG as base64.
func pngPayload(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 40, G: 120, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestAttachmentService_UploadFile_StoresAndReturnsURL(t *testing.T) {
	t.Parallel()

	var putKey, putContentType string
	store := noopBlobStore()
	store.putFn = func(_ context.Context, key string, data []byte, contentType string) (string, error) {
		putKey = key
		putContentType = contentType
		assert.NotEmpty(t, data)
		return "/media/plants/" + key, nil
	}
	svc := NewAttachmentService(store, noopAttachmentRepo(), nil)

	url, err := svc.UploadFile(context.Background(), 1, pngPayload(t))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(putKey, ".png"), "key should carry the decoded format's extension: %s", putKey)
	assert.Equal(t, "image/png", putContentType)
	assert.Equal(t, "/media/plants/"+putKey, url)
}

func TestAttachmentService_UploadFile_DeterministicKeyPerOwnerAndContent(t *testing.T) {
	t.Parallel()

	var keys []string
	store := noopBlobStore()
	store.putFn = func(_ context.Context, key string, _ []byte, _ string) (string, error) {
		keys = append(keys, key)
		return "/media/plants/" + key, nil
	}
	svc := NewAttachmentService(store, noopAttachmentRepo(), nil)

	payload := pngPayload(t)
	_, err := svc.UploadFile(context.Background(), 1, payload)
	require.NoError(t, err)
	_, err = svc.UploadFile(context.Background(), 1, payload)
	require.NoError(t, err)
	_, err = svc.UploadFile(context.Background(), 2, payload)
	require.NoError(t, err)

	require.Len(t, keys, 3)
	assert.Equal(t, keys[0], keys[1], "same owner and content should produce the same key")
	assert.NotEqual(t, keys[0], keys[2], "different owners should not share keys")
}

func TestAttachmentService_UploadFile_AcceptsDataURI(t *testing.T) {
	t.Parallel()

	svc := NewAttachmentService(noopBlobStore(), noopAttachmentRepo(), nil)

	url, err := svc.UploadFile(context.Background(), 1, "data:image/png;base64,"+pngPayload(t))
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestAttachmentService_UploadFile_RejectsBadPayloads(t *testing.T) {
	t.Parallel()

	svc := NewAttachmentService(noopBlobStore(), noopAttachmentRepo(), nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		payload string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"empty payload", ""},
		{"base64 but not an image", base64.StdEncoding.EncodeToString([]byte("just some text"))},
		{"malformed data uri", "data:image/png;base64"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.UploadFile(ctx, 1, tc.payload)
			assertErrorCode(t, err, models.CodeValidation)
		})
	}
}

func TestAttachmentService_UploadFile_EnforcesSizeLimit(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{UploadMaxSizeMB: 1}
	svc := NewAttachmentService(noopBlobStore(), noopAttachmentRepo(), cfg)

	// Uncompressible noise so the PNG stays above 1MB.
	img := image.NewRGBA(image.Rect(0, 0, 900, 900))
	rng := rand.New(rand.NewSource(1))
	for i := range img.Pix {
		img.Pix[i] = byte(rng.Intn(256))
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.Greater(t, buf.Len(), 1024*1024, "test image must exceed the 1MB cap")

	_, err := svc.UploadFile(context.Background(), 1, base64.StdEncoding.EncodeToString(buf.Bytes()))
	assertErrorCode(t, err, models.CodeValidation)
}

func TestAttachmentService_UploadFile_StoreFailureIsUploadError(t *testing.T) {
	t.Parallel()

	store := noopBlobStore()
	store.putFn = func(_ context.Context, _ string, _ []byte, _ string) (string, error) {
		return "", errors.New("bucket unreachable")
	}
	svc := NewAttachmentService(store, noopAttachmentRepo(), nil)

	_, err := svc.UploadFile(context.Background(), 1, pngPayload(t))
	assertErrorCode(t, err, models.CodeUploadFailed)
}

func TestAttachmentService_RecordAttachment(t *testing.T) {
	t.Parallel()

	var created *models.Attachment
	repo := noopAttachmentRepo()
	repo.createFn = func(_ context.Context, a *models.Attachment) error {
		created = a
		return nil
	}
	svc := NewAttachmentService(noopBlobStore(), repo, nil)

	err := svc.RecordAttachment(context.Background(),
		"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", "/media/plants/leaf.png", models.AttachmentPurposePlantPicture)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", created.PlantID)
	assert.Equal(t, "/media/plants/leaf.png", created.SourceURL)
	assert.Equal(t, models.AttachmentPurposePlantPicture, created.Purpose)
}
