package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/vbonduro/carcheck/internal/config"
	"github.com/vbonduro/carcheck/internal/db"
	"github.com/vbonduro/carcheck/internal/logging"
	"github.com/vbonduro/carcheck/internal/photoproc"
	"github.com/vbonduro/carcheck/internal/photostore/local"
	"github.com/vbonduro/carcheck/internal/service"
	"github.com/vbonduro/carcheck/internal/store"
	"github.com/vbonduro/carcheck/internal/vision"
	claudevision "github.com/vbonduro/carcheck/internal/vision/claude"
	ollamavision "github.com/vbonduro/carcheck/internal/vision/ollama"
	"github.com/vbonduro/carcheck/internal/web"
	"github.com/vbonduro/carcheck/internal/web/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	photoStg, err := local.NewLocalPhotoStore(cfg.PhotoPath)
	if err != nil {
		logger.Error("failed to initialize photo store", "error", err)
		return
	}

	inspectionService := service.NewInspectionService(
		store.NewInspectionStore(database),
		store.NewItemStore(database),
		store.NewPhotoStore(database),
		photoStg,
		photoproc.NewNormalizer(cfg.PhotoMaxDimension),
		newDamageAnalyzer(cfg, logger),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SeedDemo {
		if _, err := inspectionService.SeedDemo(ctx); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			return
		}
	}

	server := web.NewServer(inspectionService, templates.FS, database, logger)
	if err := server.ListenAndServe(ctx, cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
	}
}

// newDamageAnalyzer returns nil when no vision backend is configured.
func newDamageAnalyzer(cfg *config.Config, logger *slog.Logger) vision.DamageAnalyzer {
	switch cfg.VisionBackend {
	case config.VisionClaude:
		logger.Info("using Claude vision backend", "model", cfg.ClaudeModel)
		return claudevision.NewClaudeAnalyzer(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	case config.VisionOllama:
		logger.Info("using Ollama vision backend", "model", cfg.OllamaModel)
		return ollamavision.NewOllamaAnalyzer(cfg.OllamaHost, cfg.OllamaModel)
	default:
		logger.Info("defect suggestions disabled")
		return nil
	}
}
