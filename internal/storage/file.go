package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Freeeeeet/reservation_service/internal/model"
	"go.uber.org/zap"
)

// FileBackend хранит документ в одном локальном JSON-файле
type FileBackend struct {
	path   string
	logger *zap.Logger
}

func NewFileBackend(path string, logger *zap.Logger) *FileBackend {
	return &FileBackend{path: path, logger: logger}
}

// Load читает документ из файла. Отсутствие файла или битый JSON
// не являются ошибкой - возвращается дефолтный документ.
func (b *FileBackend) Load(_ context.Context) *model.Document {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		if !os.IsNotExist(err) {
			b.logger.Warn("Failed to read data file, using defaults",
				zap.String("path", b.path),
				zap.Error(err),
			)
		}
		return model.DefaultDocument()
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		b.logger.Warn("Data file is not valid JSON, using defaults",
			zap.String("path", b.path),
			zap.Error(err),
		)
		return model.DefaultDocument()
	}

	doc.Normalize()
	return &doc
}

// Save заменяет содержимое файла целиком
func (b *FileBackend) Save(_ context.Context, doc *model.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if err := os.WriteFile(b.path, raw, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}

	return nil
}

func (b *FileBackend) Mode() string {
	return "Local File"
}
