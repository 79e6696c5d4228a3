package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Freeeeeet/reservation_service/internal/model"
	"github.com/Freeeeeet/reservation_service/internal/storage"
	"go.uber.org/zap"
)

// MaxStudentNameLength лимит на отображаемое имя студента
const MaxStudentNameLength = 50

// ReserveResult результат создания новой брони. Token присутствует
// только здесь - единственный момент когда секрет покидает сервис.
type ReserveResult struct {
	ID    string
	Token string
}

// Ledger реализует протокол создания, изменения и отмены броней.
// Единственный писатель состояния броней.
//
// mu сериализует полный цикл load -> mutate -> save каждой операции:
// без него два конкурентных писателя могли бы прочитать один документ
// и последний save молча затёр бы эффект первого.
type Ledger struct {
	backend storage.Backend
	mu      *sync.Mutex
	logger  *zap.Logger
}

func NewLedger(backend storage.Backend, mu *sync.Mutex, logger *zap.Logger) *Ledger {
	return &Ledger{
		backend: backend,
		mu:      mu,
		logger:  logger,
	}
}

// Reserve создаёт, изменяет или отменяет бронь слота (teacher, time).
//
// Пустое studentName означает отмену: для занятого слота требуется
// совпадающий токен, отмена свободного слота - успешный no-op.
// Непустое studentName для занятого слота меняет только имя (токен и id
// сохраняются) и тоже требует совпадающий токен. Для свободного слота
// создаётся новая бронь и вызывающему один раз возвращается пара
// {id, token}.
//
// Проверка авторизации всегда предшествует мутации: неудавшаяся операция
// оставляет документ ровно таким каким он был.
func (l *Ledger) Reserve(ctx context.Context, teacher, slotTime, studentName, presentedToken string) (*ReserveResult, error) {
	if teacher == "" || slotTime == "" {
		return nil, fmt.Errorf("teacher and time are required: %w", ErrBadRequest)
	}
	if len(studentName) > MaxStudentNameLength {
		return nil, fmt.Errorf("student name too long: %w", ErrBadRequest)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	doc := l.backend.Load(ctx)
	slots := doc.Slots(teacher)
	current := slots[slotTime]

	var result *ReserveResult

	switch {
	case studentName == "":
		// Отмена. Свободный слот - идемпотентный успех без записи.
		if current == nil {
			return nil, nil
		}
		if current.Token != presentedToken {
			return nil, fmt.Errorf("cancel reservation: %w", ErrUnauthorized)
		}
		delete(slots, slotTime)

	case current != nil:
		// Слот занят - меняем имя, id и токен не трогаем
		if current.Token != presentedToken {
			return nil, fmt.Errorf("slot is taken: %w", ErrUnauthorized)
		}
		current.Name = studentName

	default:
		// Свободный слот - новая бронь со свежим секретом
		claim := &model.Claim{
			Name:  studentName,
			ID:    newClaimID(),
			Token: newClaimToken(),
		}
		slots[slotTime] = claim
		result = &ReserveResult{ID: claim.ID, Token: claim.Token}
	}

	if err := l.backend.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("persist document: %w", err)
	}

	l.logger.Info("Reservation updated",
		zap.String("teacher", teacher),
		zap.String("time", slotTime),
		zap.Bool("created", result != nil),
		zap.Bool("cancelled", studentName == ""),
	)

	return result, nil
}

// ListSafe возвращает все брони без токенов. Единственное публичное
// чтение состояния броней.
func (l *Ledger) ListSafe(ctx context.Context) map[string]map[string]model.SafeClaim {
	doc := l.backend.Load(ctx)

	safe := make(map[string]map[string]model.SafeClaim, len(doc.Reservations))
	for teacher, slots := range doc.Reservations {
		view := make(map[string]model.SafeClaim, len(slots))
		for slotTime, claim := range slots {
			if claim != nil {
				view[slotTime] = claim.SafeView()
			}
		}
		safe[teacher] = view
	}

	return safe
}

// Teachers возвращает текущий список преподавателей
func (l *Ledger) Teachers(ctx context.Context) []model.TeacherConfig {
	return l.backend.Load(ctx).Settings.Teachers
}

// StorageMode режим хранения для публичной конфигурации
func (l *Ledger) StorageMode() string {
	return l.backend.Mode()
}
