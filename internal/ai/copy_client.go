package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// CopyClient talks to the Gemini text API to produce marketing copy.
type CopyClient struct {
	apiKey string
	model  string
}

func NewCopyClient(apiKey, model string) *CopyClient {
	if model == "" {
		model = "gemini-2.5-pro"
	}
	return &CopyClient{apiKey: apiKey, model: model}
}

// Generate sends the copy prompt for the given product and returns the raw
// reply text. An empty reply is an error; the caller treats any error as a
// hard failure of the whole request.
func (c *CopyClient) Generate(ctx context.Context, productName, keywords string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("GEMINI_API_KEY is not set")
	}

	logger := log.Ctx(ctx)
	start := time.Now()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Error().Err(err).Msg("gemini client init failed")
		return "", err
	}

	prompt := BuildCopyPrompt(productName, keywords)
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	res, err := client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		logger.Error().Err(err).Str("model", c.model).Msg("gemini generate failed")
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	rawText := strings.TrimSpace(res.Text())
	if rawText == "" {
		logger.Error().Str("model", c.model).Msg("gemini returned an empty reply")
		return "", errors.New("gemini returned an empty reply")
	}

	logger.Info().
		Str("model", c.model).
		Int("reply_len", len(rawText)).
		Dur("duration", time.Since(start)).
		Msg("copy generated")
	return rawText, nil
}
