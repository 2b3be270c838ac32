package server

import (
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/artisan-assistant/backend/internal/ai"
	"github.com/artisan-assistant/backend/internal/config"
	"github.com/artisan-assistant/backend/internal/handler"
	"github.com/artisan-assistant/backend/internal/media"
	"github.com/artisan-assistant/backend/internal/metrics"
	appmw "github.com/artisan-assistant/backend/internal/middleware"
	"github.com/artisan-assistant/backend/internal/service"
)

type Server struct {
	e     *echo.Echo
	sha   string
	build string
}

func New(cfg *config.Config, storageClient *storage.Client, sha, buildTime string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))

	reg := metrics.NewRegistry()
	e.Use(appmw.RequestLogger(reg))

	httpClient := &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}

	imageClient := ai.NewGeminiImageClient(cfg.GeminiAPIKey, cfg.GeminiImageModel, httpClient)
	store := media.NewStore(storageClient, cfg.StorageBucket)
	enhancer := service.NewImageEnhancer(imageClient, store)

	copyClient := ai.NewCopyClient(cfg.GeminiAPIKey, cfg.GeminiTextModel)

	genSvc := service.NewGenerationService(enhancer, copyClient)
	genHandler := handler.NewGenerateHandler(genSvc, reg)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})
	e.GET("/metrics", reg.EchoHandlerText)
	e.GET("/metrics.json", reg.EchoHandlerJSON)

	api := e.Group("/api")
	api.POST("/generate", genHandler.Generate)

	return &Server{e: e, sha: sha, build: buildTime}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
