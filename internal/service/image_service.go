package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/artisan-assistant/backend/internal/ai"
)

// ImageEnhancer turns raw product photo bytes into a durable URL of the
// enhanced asset. Any failure yields no URL.
type ImageEnhancer interface {
	Enhance(ctx context.Context, image []byte, mimeType, style string) (string, error)
}

type imageClient interface {
	Enhance(ctx context.Context, req ai.ImageEnhanceRequest) (*ai.ImageEnhanceResult, error)
}

type mediaStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

type imageEnhancer struct {
	client imageClient
	store  mediaStore
}

func NewImageEnhancer(client imageClient, store mediaStore) ImageEnhancer {
	return &imageEnhancer{client: client, store: store}
}

func (e *imageEnhancer) Enhance(ctx context.Context, image []byte, mimeType, style string) (string, error) {
	if len(image) == 0 {
		return "", errors.New("image is required")
	}

	res, err := e.client.Enhance(ctx, ai.ImageEnhanceRequest{
		Image:    image,
		MimeType: mimeType,
		Style:    style,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("image enhancement failed")
		return "", err
	}

	url, err := e.store.Upload(ctx, res.Image, res.MimeType)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("enhanced image upload failed")
		return "", err
	}

	log.Ctx(ctx).Info().
		Int("bytes", len(res.Image)).
		Int64("enhance_ms", res.ElapsedMs).
		Msg("image enhanced and stored")
	return url, nil
}
