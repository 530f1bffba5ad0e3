package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/hrcerts/internal/api"
	"github.com/youruser/hrcerts/internal/config"
	"github.com/youruser/hrcerts/internal/export"
	"github.com/youruser/hrcerts/internal/hackerrank"
	imagepkg "github.com/youruser/hrcerts/internal/image"
	"github.com/youruser/hrcerts/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	gin.SetMode(cfg.Server.Mode)

	client := hackerrank.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, cfg.Upstream.UserAgent, log)
	assets := imagepkg.NewAssets(imagepkg.AssetConfig{
		TemplatePath: cfg.Render.TemplatePath,
		TemplateURL:  cfg.Render.TemplateURL,
		FontRegular:  cfg.Render.FontRegular,
		FontBold:     cfg.Render.FontBold,
	}, client)
	compositor := imagepkg.NewCompositor(assets)
	packager := export.NewPackager(client, compositor, cfg.Export.Concurrency, log)

	handler := api.NewHandler(client, compositor, packager, cfg.Render.DefaultQuality, log)
	router := api.NewRouter(handler, log)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Starting certificate server",
		zap.String("address", server.Addr),
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.Int("export_concurrency", cfg.Export.Concurrency))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
