package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/config"
	apphttp "pehlione.com/catalogadmin/internal/http"
	"pehlione.com/catalogadmin/internal/logging"
	"pehlione.com/catalogadmin/internal/metrics"
	"pehlione.com/catalogadmin/internal/modules/auth"
	"pehlione.com/catalogadmin/internal/modules/catalog"
	"pehlione.com/catalogadmin/internal/modules/spuform"
	"pehlione.com/catalogadmin/internal/storage"
	"pehlione.com/catalogadmin/internal/tokenstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	logger, closeLog := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer closeLog()
	slog.SetDefault(logger)

	tokens, err := openTokenStore(cfg)
	if err != nil {
		logger.Error("token store", "err", err)
		os.Exit(1)
	}

	client := backend.NewClient(backend.Options{
		BaseURL: cfg.APIBaseURL(),
		Timeout: cfg.BackendTimeout,
		Tokens:  tokens,
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := storage.New(ctx, cfg.Storage, client)
	if err != nil {
		logger.Error("storage", "err", err)
		os.Exit(1)
	}
	var local *storage.Local
	if l, ok := st.Storage.(*storage.Local); ok {
		local = l
	}

	drafts := spuform.NewStore()
	metrics.RegisterOpenDrafts(drafts.Len)

	gin.SetMode(gin.ReleaseMode)
	r := apphttp.NewRouter(apphttp.Deps{
		Logger:       logger,
		Auth:         auth.NewService(client, tokens, logger),
		Catalog:      catalog.NewService(client),
		Forms:        spuform.NewService(client, drafts, logger),
		Storage:      st.Storage,
		LocalUploads: local,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("console_started",
			"addr", cfg.Addr,
			"backend", cfg.APIBaseURL(),
			"token_store", cfg.TokenStore,
			"storage", st.Driver,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}

func openTokenStore(cfg config.Config) (tokenstore.Store, error) {
	switch cfg.TokenStore {
	case "mysql":
		db, err := tokenstore.OpenMySQL(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		return tokenstore.NewGorm(db), nil
	case "sqlite":
		db, err := tokenstore.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := tokenstore.Migrate(db); err != nil {
			return nil, err
		}
		return tokenstore.NewGorm(db), nil
	default:
		return tokenstore.NewFile(cfg.TokenFile), nil
	}
}
