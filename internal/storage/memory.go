package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Freeeeeet/reservation_service/internal/model"
)

// MemoryBackend хранилище в памяти для тестов. Документ гоняется через
// JSON чтобы тесты ловили случайное шаринг-состояние между операциями.
type MemoryBackend struct {
	mu   sync.Mutex
	raw  []byte
	fail error // если задано, Save возвращает эту ошибку
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(_ context.Context) *model.Document {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.raw == nil {
		return model.DefaultDocument()
	}

	var doc model.Document
	if err := json.Unmarshal(b.raw, &doc); err != nil {
		return model.DefaultDocument()
	}

	doc.Normalize()
	return &doc
}

func (b *MemoryBackend) Save(_ context.Context, doc *model.Document) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fail != nil {
		return b.fail
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	b.raw = raw
	return nil
}

func (b *MemoryBackend) Mode() string {
	return "In-Memory"
}

// FailSaves заставляет все последующие Save возвращать err
func (b *MemoryBackend) FailSaves(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail = err
}

// Corrupt записывает в хранилище заведомо нечитаемые данные
func (b *MemoryBackend) Corrupt() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.raw = []byte("{not json")
}
