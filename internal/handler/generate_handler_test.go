package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/artisan-assistant/backend/internal/service"
)

type stubService struct {
	result  *service.GenerationResult
	err     error
	called  bool
	lastReq service.GenerationRequest
}

func (s *stubService) Generate(ctx context.Context, req service.GenerationRequest) (*service.GenerationResult, error) {
	s.called = true
	s.lastReq = req
	return s.result, s.err
}

func multipartRequest(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if image != nil {
		fw, err := w.CreateFormFile("image", "photo.jpg")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/generate", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestGenerateMissingImage(t *testing.T) {
	svc := &stubService{}
	h := NewGenerateHandler(svc, nil)

	req := multipartRequest(t, map[string]string{"product_name": "Mug"}, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.Generate(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"No image file provided"}`, rec.Body.String())
	require.False(t, svc.called, "no upstream call on missing image")
}

func TestGenerateEnhanceFailure(t *testing.T) {
	svc := &stubService{err: fmt.Errorf("%w: boom", service.ErrImageEnhance)}
	h := NewGenerateHandler(svc, nil)

	req := multipartRequest(t, nil, []byte("IMG"))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.Generate(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Failed to process image"}`, rec.Body.String())
}

func TestGenerateCopyFailure(t *testing.T) {
	svc := &stubService{err: fmt.Errorf("%w: empty reply", service.ErrCopyGenerate)}
	h := NewGenerateHandler(svc, nil)

	req := multipartRequest(t, nil, []byte("IMG"))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.Generate(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Failed to generate content"}`, rec.Body.String())
}

func TestGenerateSuccess(t *testing.T) {
	svc := &stubService{result: &service.GenerationResult{
		EnhancedImageURL: "https://cdn.example/x.jpg",
	}}
	svc.result.GeneratedText.Description = "A lavender soap."
	svc.result.GeneratedText.SocialPost = "New soap!"
	svc.result.GeneratedText.Hashtags = []string{"#soap", "#handmade"}
	h := NewGenerateHandler(svc, nil)

	req := multipartRequest(t, map[string]string{
		"product_name": "Lavender Soap",
		"keywords":     "handmade, organic",
	}, []byte("IMG"))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.Generate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		EnhancedImageURL string `json:"enhanced_image_url"`
		GeneratedText    struct {
			Description string   `json:"description"`
			SocialPost  string   `json:"social_post"`
			Hashtags    []string `json:"hashtags"`
		} `json:"generated_text"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "https://cdn.example/x.jpg", body.EnhancedImageURL)
	require.NotEmpty(t, body.GeneratedText.Hashtags)

	require.Equal(t, "Lavender Soap", svc.lastReq.ProductName)
	require.Equal(t, "handmade, organic", svc.lastReq.Keywords)
	require.Equal(t, []byte("IMG"), svc.lastReq.Image)
}

func TestGenerateDefaultsApplied(t *testing.T) {
	svc := &stubService{err: errors.New("stop here")}
	h := NewGenerateHandler(svc, nil)

	req := multipartRequest(t, nil, []byte("IMG"))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.Generate(c))
	require.Equal(t, "Handmade Product", svc.lastReq.ProductName)
	require.Equal(t, "unique, eco-friendly, made with love", svc.lastReq.Keywords)
}
