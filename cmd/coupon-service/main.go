package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/Cheertaboi/basket-coupon-service/internal/api"
	"github.com/Cheertaboi/basket-coupon-service/internal/repository"
	"github.com/Cheertaboi/basket-coupon-service/internal/service"
	"github.com/Cheertaboi/basket-coupon-service/pkg/db"
)

const serviceName = "coupon-service"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level, err := zerolog.ParseLevel(db.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zlog.With().Str("service", serviceName).Logger()

	store, closeStore := openStore(logger)
	defer closeStore()

	addr := db.GetEnv("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(store, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("http server shutdown")
		}
		close(idleConnsClosed)
	}()

	logger.Info().Str("addr", addr).Msg("starting coupon-service")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("listen")
	}

	<-idleConnsClosed
	logger.Info().Msg("server stopped")
}

// openStore picks the coupon store from STORE_DRIVER.
func openStore(logger zerolog.Logger) (service.CouponStore, func()) {
	driver := db.GetEnv("STORE_DRIVER", "postgres")
	switch driver {
	case "memory":
		logger.Warn().Msg("using in-memory coupon store, data is lost on restart")
		return repository.NewMemoryCouponRepo(), func() {}
	case "postgres":
	default:
		logger.Fatal().Str("driver", driver).Msg("unknown STORE_DRIVER")
	}

	cfg, err := db.LoadPostgresConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("db config")
	}
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Migrate(ctx, conn); err != nil {
		_ = conn.Close()
		logger.Fatal().Err(err).Msg("db migrate")
	}

	return repository.NewCouponRepo(conn, cfg.LookupBatch), func() {
		if err := conn.Close(); err != nil {
			logger.Error().Err(err).Msg("db close")
		}
	}
}
