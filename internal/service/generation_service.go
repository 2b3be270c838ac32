package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/artisan-assistant/backend/internal/ai"
)

var (
	// ErrImageEnhance marks a failure of the image enhancement call; the
	// copy generator is never invoked after it.
	ErrImageEnhance = errors.New("image enhancement failed")
	// ErrCopyGenerate marks a failure of the copy generation call.
	ErrCopyGenerate = errors.New("copy generation failed")
)

// CopyGenerator produces the raw marketing copy text for a product.
type CopyGenerator interface {
	Generate(ctx context.Context, productName, keywords string) (string, error)
}

// GenerationRequest carries one incoming generation call. It is constructed
// per request and discarded after use.
type GenerationRequest struct {
	ProductName string
	Keywords    string
	Style       string
	Image       []byte
	MimeType    string
}

// GenerationResult is the merged output of the two upstream calls.
type GenerationResult struct {
	EnhancedImageURL string        `json:"enhanced_image_url"`
	GeneratedText    ai.ParsedCopy `json:"generated_text"`
}

type GenerationService interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
}

type generationService struct {
	enhancer  ImageEnhancer
	generator CopyGenerator
}

func NewGenerationService(enhancer ImageEnhancer, generator CopyGenerator) GenerationService {
	return &generationService{enhancer: enhancer, generator: generator}
}

// Generate runs the two upstream calls strictly in sequence: enhancement
// first, copy generation second. Either failure short-circuits the request;
// a malformed copy reply never does, ParseCopy falls back to defaults.
func (s *generationService) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	url, err := s.enhancer.Enhance(ctx, req.Image, req.MimeType, req.Style)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageEnhance, err)
	}

	rawText, err := s.generator.Generate(ctx, req.ProductName, req.Keywords)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCopyGenerate, err)
	}

	return &GenerationResult{
		EnhancedImageURL: url,
		GeneratedText:    ai.ParseCopy(rawText),
	}, nil
}
