package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/muskiz/beach-handball/brackets"
	"github.com/muskiz/beach-handball/config"
	"github.com/muskiz/beach-handball/handlers"
	"github.com/muskiz/beach-handball/models"
	"github.com/muskiz/beach-handball/repositories"
	api "github.com/muskiz/beach-handball/routes"
	"github.com/muskiz/beach-handball/services"
	"github.com/muskiz/beach-handball/storage"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("application failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}

func run(logger *slog.Logger) error {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.Bool("r2", cfg.R2Enabled()),
		slog.Bool("smtp", cfg.SMTPEnabled()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Файлы: Cloudflare R2, если настроен, иначе в памяти с раздачей через /media.
	var (
		uploader     storage.FileUploader
		mediaHandler *handlers.MediaHandler
	)
	if cfg.R2Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		base := strings.TrimRight(cfg.PublicURL, "/")
		if base == "" {
			base = fmt.Sprintf("http://localhost:%d", cfg.ServerPort)
		}
		memory := storage.NewMemoryUploader(base + "/media")
		uploader = memory
		mediaHandler = handlers.NewMediaHandler(memory)
		logger.Warn("R2 is not configured, uploads are kept in memory")
	}

	// Инициализация WebSocket Hub
	wsHub := brackets.NewHub(logger)

	// Инициализация репозиториев
	teamRepo := repositories.NewMemoryTeamRepository()
	matchRepo := repositories.NewMemoryMatchRepository()
	contentRepo := repositories.NewMemoryContentRepository(models.DefaultSiteContent(), cfg.Limits)
	logger.Info("repositories initialized")

	// Инициализация сервисов
	authService, err := services.NewAuthService(cfg.AdminPasswordHash, cfg.AdminPassword, logger)
	if err != nil {
		return err
	}
	notifier := services.NewNotifier(cfg, logger)
	standingsService := services.NewStandingsService(teamRepo, matchRepo, wsHub, logger)
	teamService := services.NewTeamService(teamRepo, matchRepo, contentRepo, uploader, notifier, standingsService, cfg.Fees, logger)
	matchService := services.NewMatchService(matchRepo, teamRepo, standingsService, wsHub, uploader, logger)
	contentService := services.NewContentService(contentRepo, logger)
	dashboardService := services.NewDashboardService(teamRepo, matchRepo, contentRepo)
	logger.Info("services initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Auth:      handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Team:      handlers.NewTeamHandler(teamService),
		Match:     handlers.NewMatchHandler(matchService),
		Standings: handlers.NewStandingsHandler(standingsService),
		Content:   handlers.NewContentHandler(contentService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, standingsService, cfg.CORSOrigins, logger),
	}, api.Options{
		JWTSecret:          cfg.JWTSecretKey,
		CORSOrigins:        cfg.CORSOrigins,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		TrustProxy:         cfg.TrustProxy,
		Media:              mediaHandler,
	})
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return wsHub.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// Ожидание сигнала завершения или падения сервера
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
		return nil
	})

	return g.Wait()
}
