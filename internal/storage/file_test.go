package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Freeeeeet/reservation_service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testDocument() *model.Document {
	doc := model.DefaultDocument()
	doc.Settings.AdminPassword = "s3cret"
	doc.Settings.Teachers = []model.TeacherConfig{
		{ID: "1", Name: "Ms.Novak", Interval: 10},
	}
	doc.Reservations["Ms.Novak"] = model.SlotMap{
		"16:30": {Name: "Jan", ID: "abc", Token: "tok-1"},
	}
	return doc
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reservations.json")
	backend := NewFileBackend(path, zap.NewNop())
	ctx := context.Background()

	doc := testDocument()
	require.NoError(t, backend.Save(ctx, doc))

	loaded := backend.Load(ctx)
	assert.Equal(t, doc, loaded)
}

func TestFileBackendMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	backend := NewFileBackend(path, zap.NewNop())

	loaded := backend.Load(context.Background())
	assert.Equal(t, model.DefaultDocument(), loaded)
}

func TestFileBackendCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reservations.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	backend := NewFileBackend(path, zap.NewNop())

	loaded := backend.Load(context.Background())
	assert.Equal(t, model.DefaultDocument(), loaded)
}

func TestFileBackendPartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reservations.json")
	// Документ без reservations - карты должны быть починены
	require.NoError(t, os.WriteFile(path, []byte(`{"settings":{"adminPassword":"x"}}`), 0o644))

	backend := NewFileBackend(path, zap.NewNop())

	loaded := backend.Load(context.Background())
	require.NotNil(t, loaded.Reservations)
	assert.NotNil(t, loaded.Settings.Teachers)
	assert.Equal(t, "x", loaded.Settings.AdminPassword)
}

func TestMemoryBackendRoundTrip(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	doc := testDocument()
	require.NoError(t, backend.Save(ctx, doc))

	loaded := backend.Load(ctx)
	assert.Equal(t, doc, loaded)

	// Мутация загруженной копии не трогает хранилище
	loaded.Reservations["Ms.Novak"]["16:30"].Name = "Petr"
	again := backend.Load(ctx)
	assert.Equal(t, "Jan", again.Reservations["Ms.Novak"]["16:30"].Name)
}

func TestMemoryBackendCorrupt(t *testing.T) {
	backend := NewMemoryBackend()
	backend.Corrupt()

	loaded := backend.Load(context.Background())
	assert.Equal(t, model.DefaultDocument(), loaded)
}
