package main

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/Freeeeeet/reservation_service/internal/app"
	"github.com/Freeeeeet/reservation_service/internal/config"
	"github.com/Freeeeeet/reservation_service/internal/controller"
	"github.com/Freeeeeet/reservation_service/internal/service"
	"github.com/Freeeeeet/reservation_service/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	// Сначала пробуем Postgres, при любой неудаче молча падаем на
	// локальный файл - сервис должен подняться в любом случае
	backend := selectBackend(cfg, logger)

	logger.Info("Starting reservation service",
		zap.String("environment", cfg.Environment),
		zap.String("storage_mode", backend.Mode()),
		zap.String("addr", cfg.HTTPAddr),
	)

	// Один мьютекс на все записи: явная точка сериализации цикла
	// load -> mutate -> save
	var mu sync.Mutex

	ledger := service.NewLedger(backend, &mu, logger)
	admin := service.NewAdminGate(backend, &mu, logger)

	server := controller.NewServer(ledger, admin, cfg.StaticDir, logger)

	if err := http.ListenAndServe(cfg.HTTPAddr, server.Router()); err != nil {
		logger.Fatal("HTTP server stopped", zap.Error(err))
	}
}

// selectBackend выбирает хранилище: Postgres если задан DB_DSN и база
// доступна, иначе локальный файл
func selectBackend(cfg *config.Config, logger *zap.Logger) storage.Backend {
	if cfg.DBDSN == "" {
		return storage.NewFileBackend(cfg.DataFile, logger)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Warn("Postgres setup failed, falling back to local file", zap.Error(err))
		return storage.NewFileBackend(cfg.DataFile, logger)
	}

	pg := storage.NewPostgresBackend(pool, logger)
	if err := pg.Ping(ctx); err != nil {
		logger.Warn("Postgres is unreachable, falling back to local file", zap.Error(err))
		pool.Close()
		return storage.NewFileBackend(cfg.DataFile, logger)
	}

	migrator, err := app.NewMigrator(pool, "migrations")
	if err != nil {
		logger.Warn("Migrator setup failed, falling back to local file", zap.Error(err))
		pool.Close()
		return storage.NewFileBackend(cfg.DataFile, logger)
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		logger.Warn("Migrations failed, falling back to local file", zap.Error(err))
		pool.Close()
		return storage.NewFileBackend(cfg.DataFile, logger)
	}

	return pg
}
