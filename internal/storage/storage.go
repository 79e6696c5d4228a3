package storage

import (
	"context"

	"github.com/Freeeeeet/reservation_service/internal/model"
)

// Backend хранилище документа целиком: чтение и запись только всего
// документа, никаких частичных патчей.
//
// Load никогда не возвращает ошибку: при недоступном хранилище или
// нечитаемых данных отдаётся дефолтный документ, чтобы сервис оставался
// живым при любом состоянии бэкенда. Save наоборот обязан сообщать об
// ошибке — иначе клиент получит ложный успех.
type Backend interface {
	Load(ctx context.Context) *model.Document
	Save(ctx context.Context, doc *model.Document) error
	// Mode человекочитаемый режим хранения для /api/config
	Mode() string
}
