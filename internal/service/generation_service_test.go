package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeEnhancer struct {
	url    string
	err    error
	called bool
}

func (f *fakeEnhancer) Enhance(ctx context.Context, image []byte, mimeType, style string) (string, error) {
	f.called = true
	return f.url, f.err
}

type fakeGenerator struct {
	text   string
	err    error
	called bool
}

func (f *fakeGenerator) Generate(ctx context.Context, productName, keywords string) (string, error) {
	f.called = true
	return f.text, f.err
}

func TestGenerateSequence(t *testing.T) {
	enh := &fakeEnhancer{url: "https://cdn.example/x.jpg"}
	gen := &fakeGenerator{text: "**Product Description:** desc --- **Social Media Post:** post --- **Hashtags:** #a #b"}
	svc := NewGenerationService(enh, gen)

	res, err := svc.Generate(context.Background(), GenerationRequest{
		ProductName: "Lavender Soap",
		Keywords:    "handmade, organic",
		Image:       []byte("IMG"),
	})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/x.jpg", res.EnhancedImageURL)
	require.Equal(t, "desc", res.GeneratedText.Description)
	require.Equal(t, "post", res.GeneratedText.SocialPost)
	require.Equal(t, []string{"#a", "#b"}, res.GeneratedText.Hashtags)
}

func TestGenerateEnhanceFailureShortCircuits(t *testing.T) {
	enh := &fakeEnhancer{err: errors.New("boom")}
	gen := &fakeGenerator{text: "anything"}
	svc := NewGenerationService(enh, gen)

	_, err := svc.Generate(context.Background(), GenerationRequest{Image: []byte("IMG")})
	require.ErrorIs(t, err, ErrImageEnhance)
	require.False(t, gen.called, "generator must not run after enhancement failure")
}

func TestGenerateCopyFailure(t *testing.T) {
	enh := &fakeEnhancer{url: "https://cdn.example/x.jpg"}
	gen := &fakeGenerator{err: errors.New("empty reply")}
	svc := NewGenerationService(enh, gen)

	_, err := svc.Generate(context.Background(), GenerationRequest{Image: []byte("IMG")})
	require.ErrorIs(t, err, ErrCopyGenerate)
	require.True(t, enh.called)
}

func TestGenerateMalformedCopyStillSucceeds(t *testing.T) {
	enh := &fakeEnhancer{url: "https://cdn.example/x.jpg"}
	gen := &fakeGenerator{text: "no markers at all"}
	svc := NewGenerationService(enh, gen)

	res, err := svc.Generate(context.Background(), GenerationRequest{Image: []byte("IMG")})
	require.NoError(t, err)
	require.Equal(t, "Could not generate a full description.", res.GeneratedText.Description)
	require.Empty(t, res.GeneratedText.Hashtags)
}
