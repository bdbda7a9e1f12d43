package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZoVoS/welsh-advanced/internal/api"
	"github.com/ZoVoS/welsh-advanced/internal/assets"
	"github.com/ZoVoS/welsh-advanced/internal/bot"
	"github.com/ZoVoS/welsh-advanced/internal/client"
	"github.com/ZoVoS/welsh-advanced/internal/config"
	"github.com/ZoVoS/welsh-advanced/internal/models"
	"github.com/ZoVoS/welsh-advanced/internal/repository"
	"github.com/ZoVoS/welsh-advanced/internal/service"
	"github.com/ZoVoS/welsh-advanced/internal/storage/cache"
	"github.com/ZoVoS/welsh-advanced/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

// setupProvider also returns the vocabulary editor of stores that can be
// changed; the http backend has none.
func setupProvider(cfg *config.Config, logger *zap.Logger) (service.ProviderI, *service.EditorS, func(), error) {
	switch cfg.Provider.Kind {
	case config.ProviderDB:
		conn, err := db.InitDB(cfg.DB)
		if err != nil {
			return nil, nil, nil, err
		}
		repos := repository.NewRepository(conn)
		editor := service.NewEditorService(repos.VocabularyR, nil, logger)
		return repos.VocabularyR, editor, func() { conn.Close() }, nil
	case config.ProviderHTTP:
		logger.Info("using vocabulary backend", zap.String("url", cfg.Provider.BaseURL))
		return client.NewBackendAPI(cfg.Provider.BaseURL, cfg.App.Timeout), nil, func() {}, nil
	default:
		logger.Info("using assets directory", zap.String("dir", cfg.Provider.AssetsDir))
		store := assets.NewStore(cfg.Provider.AssetsDir)
		return store, service.NewEditorService(store, store, logger), func() {}, nil
	}
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	provider, editor, closeProvider, err := setupProvider(cfg, logger)
	if err != nil {
		logger.Fatal("failed init provider", zap.Error(err))
	}
	defer closeProvider()

	services := service.InitServices(provider, logger)
	cache := cache.NewCache()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var server *http.Server
	if cfg.API.Enabled {
		opts := api.Options{
			AssetsDir:      cfg.Provider.AssetsDir,
			AllowedOrigins: cfg.API.AllowedOrigins,
			Timeout:        cfg.App.Timeout,
			MaxUpload:      cfg.API.MaxUpload,
		}
		if cfg.API.Admin && editor != nil {
			opts.Editor = editor
			logger.Warn("vocabulary management routes enabled", zap.Bool("media", editor.MediaSupported()))
		}

		server = &http.Server{
			Addr:              cfg.API.Addr,
			Handler:           api.NewRouter(provider, opts, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			logger.Info("api listening", zap.String("addr", cfg.API.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("api server failed", zap.Error(err))
				stop()
			}
		}()
	}

	handler, err := bot.NewTelegramAPI(cfg.BotToken, bot.Options{
		Env: cfg.Env,
		Timing: bot.Timing{
			Timeout:       cfg.App.Timeout,
			AdvanceDelay:  cfg.App.AdvanceDelay,
			AutoplayDelay: cfg.App.AutoplayDelay,
			TickInterval:  cfg.App.TickInterval,
		},
		Defaults: models.Settings{
			Mode:               models.ModeMixed,
			Difficulty:         cfg.Quiz.Difficulty,
			QuestionCount:      cfg.Quiz.QuestionCount,
			PreferPrimaryText:  cfg.Quiz.PreferPrimaryText,
			PreferPrimaryMedia: cfg.Quiz.PreferPrimaryMedia,
		},
		AssetsDir: cfg.Provider.AssetsDir,
		PublicURL: cfg.Provider.PublicURL,
	}, services, cache, logger)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start(ctx)

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("api shutdown", zap.Error(err))
		}
	}
}
