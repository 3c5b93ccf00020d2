package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediastudio-backend/internal/artifact"
	"mediastudio-backend/internal/config"
	"mediastudio-backend/internal/handler"
	"mediastudio-backend/internal/provider"
	"mediastudio-backend/internal/service"
	"mediastudio-backend/internal/session"
	"mediastudio-backend/internal/store"
	"mediastudio-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./configs/config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	prov, err := provider.New(context.Background(), cfg)
	if err != nil {
		logger.Fatalf("Failed to init provider: %v", err)
	}

	writer, err := artifact.NewWriter(cfg.Storage.OutputDir)
	if err != nil {
		logger.Fatalf("Failed to init output directory: %v", err)
	}

	promptStore, err := store.NewPromptStore(cfg.Storage.DBPath)
	if err != nil {
		logger.Fatalf("Failed to init prompt store: %v", err)
	}

	generationService := service.NewGenerationService(prov, writer, session.NewStore(), cfg)

	router := setupRouter(cfg,
		handler.NewGenerationHandler(generationService),
		handler.NewPromptHandler(promptStore),
		handler.NewHealthHandler(cfg),
		writer.Dir(),
	)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Infof("server listening on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	if err := server.Close(); err != nil {
		logger.Errorf("server shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}

func setupRouter(cfg *config.Config, generation *handler.GenerationHandler, prompts *handler.PromptHandler, health *handler.HealthHandler, outputDir string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", health.Health)
	router.Static("/outputs", outputDir)

	api := router.Group("/api")
	{
		api.POST("/text-to-image", generation.TextToImage)
		api.POST("/image-to-image", generation.ImageToImage)
		api.POST("/text-to-video", generation.TextToVideo)
		api.POST("/image-to-video", generation.ImageToVideo)
		api.POST("/extend-video", generation.ExtendVideo)
		api.POST("/text-to-speech", generation.TextToSpeech)
		api.POST("/session/reset", generation.ResetSession)

		api.GET("/voices", handler.Voices)

		api.GET("/prompts", prompts.List)
		api.POST("/prompts", prompts.Create)
		api.PUT("/prompts/:id", prompts.Update)
		api.DELETE("/prompts/:id", prompts.Delete)
	}

	return router
}
