package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	_ "github.com/rahmatrdn/go-product-compare/docs"
	"github.com/rahmatrdn/go-product-compare/internal/config"
	"github.com/rahmatrdn/go-product-compare/internal/event"
	"github.com/rahmatrdn/go-product-compare/internal/http/server"
	"github.com/rahmatrdn/go-product-compare/internal/job"
	"github.com/rahmatrdn/go-product-compare/internal/logger"
	"github.com/rahmatrdn/go-product-compare/internal/repository/shopify"
	"github.com/rahmatrdn/go-product-compare/internal/repository/store"
	"github.com/rahmatrdn/go-product-compare/internal/usecase"
	"go.uber.org/zap"
)

// @title                      Product Compare API
// @version                    1.0
// @description                Storefront compare lists, saved comparisons and comparison attribute settings for Shopify shops.
// @BasePath                   /
// @securityDefinitions.apikey SessionToken
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db, err := store.Open(cfg.Database)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	compareListRepo := store.NewCompareListRepository(db)
	comparisonSetRepo := store.NewComparisonSetRepository(db)
	comparisonConfigRepo := store.NewComparisonConfigRepository(db)
	shopSessionRepo := store.NewShopSessionRepository(db)

	shopifyClient := shopify.NewClient(shopify.ClientConfig{
		APIVersion: cfg.Shopify.APIVersion,
		Timeout:    cfg.Shopify.Timeout,
	}, zlog)

	publisher := newPublisher(cfg.AMQP, zlog)
	defer publisher.Close()

	// Usecases
	productUsecase := usecase.NewProductUsecase(shopSessionRepo, shopifyClient, cfg.Shopify.AccessToken)
	usecases := server.Usecases{
		CompareList:      usecase.NewCompareListUsecase(compareListRepo, productUsecase, publisher, zlog),
		ComparisonSet:    usecase.NewComparisonSetUsecase(comparisonSetRepo, publisher, zlog),
		ComparisonConfig: usecase.NewComparisonConfigUsecase(comparisonConfigRepo),
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		zlog.Fatal("failed to create scheduler", zap.Error(err))
	}
	sweeper := job.NewGuestListSweeper(compareListRepo, cfg.GuestList.TTL, zlog)
	if err := sweeper.Schedule(scheduler, cfg.GuestList.SweepCron); err != nil {
		zlog.Fatal("failed to schedule jobs", zap.Error(err))
	}
	scheduler.Start()

	app := server.New(cfg.Shopify, usecases, zlog)

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}
	if err := scheduler.Shutdown(); err != nil {
		zlog.Error("scheduler shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

// newPublisher connects to the broker when one is configured. Events are
// dropped otherwise, and also when the broker cannot be reached at startup.
func newPublisher(cfg config.AMQPConfig, zlog *zap.Logger) event.Publisher {
	if cfg.URL == "" {
		return event.NoopPublisher{}
	}
	pub, err := event.NewAMQPPublisher(cfg.URL, cfg.Exchange)
	if err != nil {
		zlog.Warn("event publishing disabled", zap.Error(err))
		return event.NoopPublisher{}
	}
	return pub
}
