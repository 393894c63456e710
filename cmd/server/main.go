package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/casuarinas/backend/pkg/config"
	"github.com/casuarinas/backend/pkg/discovery"
	"github.com/casuarinas/backend/pkg/models"
	"github.com/casuarinas/backend/pkg/repository"
	"github.com/casuarinas/backend/pkg/seed"
	"github.com/casuarinas/backend/pkg/server"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfg, err := config.Load(config.Path())
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := newLogger(&cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting casuarinas backend",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port))

	// Connect to MySQL
	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to MySQL", zap.Error(err))
	}

	// Auto migrate
	if err := db.AutoMigrate(&models.Product{}, &models.Client{}, &models.Order{}); err != nil {
		logger.Fatal("Failed to migrate", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to access database pool", zap.Error(err))
	}
	if cfg.MySQL.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	}
	if cfg.MySQL.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	}

	products := repository.NewGormProductRepository(db)
	clients := repository.NewGormClientRepository(db)
	orders := repository.NewGormOrderRepository(db)

	ctx := context.Background()

	// Redis product cache
	redisRepo := repository.NewRedisRepository(&cfg.Redis)
	defer redisRepo.Close()
	if err := redisRepo.Ping(ctx); err != nil {
		logger.Warn("Redis connection failed", zap.Error(err))
	} else {
		logger.Info("Redis connected successfully")
	}

	// MongoDB audit log
	mongoRepo, err := repository.NewMongoRepository(&cfg.MongoDB)
	if err != nil {
		logger.Warn("MongoDB connection failed, audit log disabled", zap.Error(err))
		mongoRepo = nil
	}

	// Seed starter catalog before accepting traffic
	if err := seed.Run(ctx, products, seed.Catalog(&cfg.Seed), logger); err != nil {
		logger.Fatal("Failed to seed products", zap.Error(err))
	}

	srv := server.New(cfg, logger, products, clients, orders, redisRepo, mongoRepo)
	srv.SetupRoutes()

	// Register in etcd; the API serves regardless
	instance := &discovery.Instance{
		Name: cfg.Server.Name,
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}
	registry, err := discovery.NewRegistry(&cfg.Etcd)
	if err != nil {
		logger.Warn("Failed to connect to etcd, skipping registration", zap.Error(err))
		registry = nil
	} else {
		defer registry.Close()
		if err := registry.Register(ctx, instance); err != nil {
			logger.Warn("Failed to register service", zap.Error(err))
		} else {
			logger.Info("Service registered in etcd",
				zap.String("name", cfg.Server.Name),
				zap.String("address", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)))
		}
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	if registry != nil {
		if err := registry.Deregister(ctx, instance); err != nil {
			logger.Error("Failed to deregister service", zap.Error(err))
		}
	}

	logger.Info("Service stopped")
}

func newLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if len(cfg.OutputPaths) > 0 {
		zcfg.OutputPaths = cfg.OutputPaths
	}
	return zcfg.Build()
}
