package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Skotchmaster/sleepsound/internal/config"
	"github.com/Skotchmaster/sleepsound/internal/events"
	"github.com/Skotchmaster/sleepsound/internal/httpserver"
	"github.com/Skotchmaster/sleepsound/internal/search"
	"github.com/Skotchmaster/sleepsound/internal/session"
	"github.com/Skotchmaster/sleepsound/internal/storage"
	pkgconfig "github.com/Skotchmaster/sleepsound/pkg/config"
	"github.com/Skotchmaster/sleepsound/pkg/db"
	"github.com/Skotchmaster/sleepsound/pkg/logging"
	loggingmw "github.com/Skotchmaster/sleepsound/pkg/middleware/logging"
	"github.com/Skotchmaster/sleepsound/pkg/middleware/ratelimit"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	pkgconfig.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, closeStore, err := openStore(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	var publisher events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers)
		logger.Info("kafka_enabled", "brokers", cfg.KafkaBrokers)
	}

	sess, err := session.New(context.Background(), session.Options{
		Store:            store,
		Publisher:        publisher,
		Branches:         cfg.Branches,
		CustomSizeDelay:  cfg.CustomSizeDelay,
		SearchDelay:      cfg.SearchDelay,
		CarouselInterval: cfg.CarouselInterval,
		Notify: func(st session.State) {
			logger.Debug("state_changed", "view", st.View, "cart_count", st.CartCount, "slide", st.Slide)
		},
	})
	if err != nil {
		log.Fatalf("session init error: %v", err)
	}

	searcher := openSearch(cfg, sess, logger)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(middleware.Secure())
	e.Use(middleware.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{Session: sess, Searcher: searcher},
		CartHandler:    &httpserver.CartHTTP{Session: sess},
		AccountHandler: &httpserver.AccountHTTP{Session: sess},
		AdminHandler:   &httpserver.AdminHTTP{Session: sess, JWTSecret: cfg.JWTSecret, TokenTTL: cfg.TokenTTL},
		JWTSecret:      cfg.JWTSecret,
		LoginLimiter:   ratelimit.PerMinute(cfg.LoginRatePerMinute),
	})

	go func() {
		logger.Info("server_starting", "port", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("server_stopping")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo_shutdown_error", "error", err)
	}

	sess.Close()
	if err := publisher.Close(); err != nil {
		logger.Warn("publisher_close_error", "error", err)
	}
	closeStore()

	logger.Info("server_stopped")
}

// openStore uses redis when REDIS_ADDR is set and the SQL database otherwise.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, func(), error) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return storage.NewRedisStore(client, cfg.ServiceName+":"), func() { _ = client.Close() }, nil
	}

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.NewGormStore(ctx, gdb)
	if err != nil {
		closeDB(gdb)
		return nil, nil, err
	}
	return store, func() { closeDB(gdb) }, nil
}

func closeDB(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// openSearch indexes the catalog into elasticsearch when ES_URL is set. Any
// failure falls back to in-process matching.
func openSearch(cfg config.Config, sess *session.Controller, logger *slog.Logger) search.Searcher {
	local := search.Local{Catalog: sess.Catalog}
	if cfg.ES.URL == "" {
		return local
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := search.NewClient(ctx, cfg.ES)
	if err != nil {
		logger.Warn("search_init_error", "reason", "falling back to local search", "error", err)
		return local
	}
	idx := search.NewESIndex(client, cfg.ESIndex)
	if err := idx.IndexProducts(ctx, sess.Catalog().Products()); err != nil {
		logger.Warn("search_index_error", "reason", "falling back to local search", "error", err)
		return local
	}
	logger.Info("search_enabled", "index", cfg.ESIndex)
	return idx
}
