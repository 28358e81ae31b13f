package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"art-gallery/internal/auth"
	"art-gallery/internal/cache"
	"art-gallery/internal/config"
	"art-gallery/internal/metrics"
	"art-gallery/internal/middlewares"
	"art-gallery/internal/services/images"
	"art-gallery/internal/services/review"
	"art-gallery/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	database    *storage.Database
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	if err := ensureAuthSecrets(cfg, logger); err != nil {
		cancel()
		return nil, err
	}

	flowSessions, err := auth.NewFlowSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	scheme, err := auth.NewScheme(ctx, cfg, flowSessions, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	var oidcFlow middlewares.OIDCFlowProvider
	if oidcScheme, ok := scheme.(*auth.OIDCScheme); ok {
		oidcFlow = oidcScheme
	}

	database, err := storage.NewDatabase(cfg.Storage, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	logger.Debug("running database migrations")
	if err := database.RunMigrations(); err != nil {
		cancel()
		return nil, err
	}
	logger.Debug("database migrations completed")

	artworkCache, err := cache.NewCacheProvider(cfg, logger)
	if err != nil {
		cancel()
		return nil, err
	}

	if redisCache, ok := artworkCache.(*cache.RedisCache); ok {
		if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
			collector := redisprometheus.NewCollector(metrics.Namespace, "cache", redisCache.Client())
			if err := prometheus.Register(collector); err != nil {
				logger.Debug("failed to register redis cache collector: already registered", "error", err)
			}
		}
	}

	var reviewer middlewares.ReviewProvider
	if cfg.Review != nil && cfg.Review.Enabled {
		reviewer = review.NewClient(*cfg.Review, logger)
	}

	var uploader middlewares.UploadProvider
	if cfg.Uploads != nil && cfg.Uploads.Enabled {
		uploader = images.NewUploader(*cfg.Uploads, logger)
	}

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, scheme, auth.NewCookieManager(cfg.Auth), flowSessions, oidcFlow, database, artworkCache, reviewer, uploader)

	router := setupRouter(appCtx)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: setupDebugRouter(),
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  httpServer,
		debugServer: debugServer,
		database:    database,
		cancel:      cancel,
	}, nil
}

// ensureAuthSecrets fills the credential gaps a fresh deployment ships with
// and warns loudly about every placeholder left in place.
func ensureAuthSecrets(cfg *config.Config, logger *slog.Logger) error {
	if cfg.Auth.Scheme != config.SchemeLocal {
		return nil
	}

	if cfg.Auth.AdminPasswordDigest == "" {
		digest, err := auth.HashPassword(config.DefaultAdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash default admin password: %w", err)
		}

		cfg.Auth.AdminPasswordDigest = digest
		logger.Warn("no admin password digest configured, using the default password; set GALLERY_ADMIN_PASSWORD_DIGEST before exposing this server")
	}

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("jwt secret is the built-in placeholder; set GALLERY_JWT_SECRET before exposing this server")
	}

	return nil
}

func (s *Server) Start() error {
	go func() {
		s.logger.Info("server started", "port", s.cfg.Server.Port, "scheme", s.appCtx.Auth.Name())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("debug server started", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("debug server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("shutting down server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("debug server forced to shutdown", "error", err)
		}
	}

	if err := s.database.Close(); err != nil {
		s.logger.Error("failed to close database", "error", err)
	}

	s.logger.Info("server exited")
	return nil
}
