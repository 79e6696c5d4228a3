package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Freeeeeet/reservation_service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresBackend хранит документ как JSON-блоб в единственной строке
// таблицы datastore. Таблица используется как удалённый файл: никакого
// помаппинга полей на колонки, только сериализованный документ целиком.
type PostgresBackend struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresBackend(pool *pgxpool.Pool, logger *zap.Logger) *PostgresBackend {
	return &PostgresBackend{pool: pool, logger: logger}
}

// Load читает блоб из таблицы. Любой сбой (нет строки, нет соединения,
// битый JSON) деградирует в дефолтный документ - сервис должен отвечать
// даже при сломанном хранилище.
func (b *PostgresBackend) Load(ctx context.Context) *model.Document {
	var raw string
	err := b.pool.QueryRow(ctx, `SELECT blob FROM datastore WHERE id = 1`).Scan(&raw)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			b.logger.Warn("Failed to read datastore row, using defaults", zap.Error(err))
		}
		return model.DefaultDocument()
	}

	if raw == "" {
		return model.DefaultDocument()
	}

	var doc model.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		b.logger.Warn("Datastore blob is not valid JSON, using defaults", zap.Error(err))
		return model.DefaultDocument()
	}

	doc.Normalize()
	return &doc
}

// Save перезаписывает блоб целиком
func (b *PostgresBackend) Save(ctx context.Context, doc *model.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	query := `
		INSERT INTO datastore (id, blob)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET blob = EXCLUDED.blob
	`

	if _, err := b.pool.Exec(ctx, query, string(raw)); err != nil {
		return fmt.Errorf("write datastore row: %w", err)
	}

	return nil
}

// Ping проверяет доступность базы при старте
func (b *PostgresBackend) Ping(ctx context.Context) error {
	return b.pool.Ping(ctx)
}

func (b *PostgresBackend) Mode() string {
	return "PostgreSQL"
}
