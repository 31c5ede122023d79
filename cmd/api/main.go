package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/table-reservation/internal/audit"
	"github.com/BruksfildServices01/table-reservation/internal/config"
	dbpkg "github.com/BruksfildServices01/table-reservation/internal/db"
	"github.com/BruksfildServices01/table-reservation/internal/events"
	"github.com/BruksfildServices01/table-reservation/internal/infra/archive"
	"github.com/BruksfildServices01/table-reservation/internal/infra/slotlock"
	"github.com/BruksfildServices01/table-reservation/internal/logger"
	"github.com/BruksfildServices01/table-reservation/internal/routes"
)

func main() {

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db := dbpkg.NewDB(cfg)

	// --------------------------------------------------
	// Events + audit
	// --------------------------------------------------
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.EventsEnabled() {
		publisher = events.NewAMQPPublisher(cfg.RabbitURL, cfg.EventsQueue)
		logger.Log.WithField("queue", cfg.EventsQueue).Info("publishing events to rabbitmq")
	}
	dispatcher := audit.NewDispatcher(audit.New(db), publisher)

	// --------------------------------------------------
	// Slot lock
	// --------------------------------------------------
	var locker slotlock.Locker = slotlock.NewLocalLocker(cfg.SlotLockWait)
	if cfg.RedisEnabled() {
		client := slotlock.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Log.WithError(err).Warn("redis unreachable, using in-process slot lock")
		} else {
			locker = slotlock.NewRedisLocker(client, cfg.SlotLockTTL, cfg.SlotLockWait)
			logger.Log.WithField("addr", cfg.RedisAddr).Info("using redis slot lock")
		}
	}

	// --------------------------------------------------
	// Export archive
	// --------------------------------------------------
	var archiver archive.Archiver
	if cfg.ExportEnabled() {
		archiver = archive.NewS3Archiver(archive.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, routes.Infra{
		Audit:    dispatcher,
		Locker:   locker,
		Archiver: archiver,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("server shutdown")
	}

	if err := dispatcher.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("audit dispatcher did not drain before shutdown")
	}
	_ = publisher.Close()
}
