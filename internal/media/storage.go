package media

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

const objectFolder = "artisan-assistant"

// Store uploads processed assets to a GCS bucket and hands back durable
// public URLs.
type Store struct {
	client *storage.Client
	bucket string
}

func NewStore(client *storage.Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// Upload writes the data under a fresh object name with a download token and
// returns the tokenized public URL.
func (s *Store) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	if s == nil || s.client == nil {
		return "", errors.New("storage client is not configured")
	}
	if s.bucket == "" {
		return "", errors.New("STORAGE_BUCKET is not set")
	}
	if len(data) == 0 {
		return "", errors.New("empty upload")
	}

	token := uuid.NewString()
	objectPath := fmt.Sprintf("%s/%s%s", objectFolder, uuid.NewString(), extensionFor(contentType))

	obj := s.client.Bucket(s.bucket).Object(objectPath)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": token,
	}
	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	escapedPath := url.PathEscape(objectPath)
	publicURL := fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		s.bucket, escapedPath, token)
	return publicURL, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
