package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artisan-assistant/backend/internal/metrics"
	"github.com/artisan-assistant/backend/internal/service"
)

const (
	defaultProductName = "Handmade Product"
	defaultKeywords    = "unique, eco-friendly, made with love"
)

type GenerateHandler struct {
	svc service.GenerationService
	reg *metrics.Registry
}

func NewGenerateHandler(svc service.GenerationService, reg *metrics.Registry) *GenerateHandler {
	return &GenerateHandler{svc: svc, reg: reg}
}

// Generate handles POST /api/generate. The image file is required; name and
// keywords fall back to defaults so a bare photo still produces a listing.
func (h *GenerateHandler) Generate(c echo.Context) error {
	ctx := c.Request().Context()
	if h.reg != nil {
		h.reg.Inc(ctx, "generate_requests_total", nil, 1)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("No image file provided"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("No image file provided"))
	}
	defer file.Close()
	image, err := io.ReadAll(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("No image file provided"))
	}

	productName := c.FormValue("product_name")
	if productName == "" {
		productName = defaultProductName
	}
	keywords := c.FormValue("keywords")
	if keywords == "" {
		keywords = defaultKeywords
	}

	req := service.GenerationRequest{
		ProductName: productName,
		Keywords:    keywords,
		Style:       c.FormValue("style"),
		Image:       image,
		MimeType:    fileHeader.Header.Get("Content-Type"),
	}

	result, err := h.svc.Generate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageEnhance):
			h.countFailure(c, "enhance")
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to process image"))
		case errors.Is(err, service.ErrCopyGenerate):
			h.countFailure(c, "generate")
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to generate content"))
		default:
			h.countFailure(c, "internal")
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to generate content"))
		}
	}

	return c.JSON(http.StatusOK, result)
}

func (h *GenerateHandler) countFailure(c echo.Context, stage string) {
	if h.reg != nil {
		h.reg.Inc(c.Request().Context(), "generate_failures_total", map[string]string{"stage": stage}, 1)
	}
}
