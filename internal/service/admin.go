package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Freeeeeet/reservation_service/internal/model"
	"github.com/Freeeeeet/reservation_service/internal/storage"
	"go.uber.org/zap"
)

// SessionProof статичный пропуск админской сессии. Сессий как таковых
// нет: совпадение этой строки - единственная проверка. Сознательно
// минимальная модель доверия, изолирована здесь чтобы замена на
// одноразовый случайный токен не трогала обработчики.
const SessionProof = "admin-session-ok"

// AdminGate привилегированные операции в обход проверки токенов.
// Делит мьютекс с Ledger - админские записи сериализуются вместе со
// студенческими.
type AdminGate struct {
	backend storage.Backend
	mu      *sync.Mutex
	logger  *zap.Logger
}

func NewAdminGate(backend storage.Backend, mu *sync.Mutex, logger *zap.Logger) *AdminGate {
	return &AdminGate{
		backend: backend,
		mu:      mu,
		logger:  logger,
	}
}

// Login сверяет пароль и выдаёт пропуск сессии
func (g *AdminGate) Login(ctx context.Context, password string) (string, error) {
	doc := g.backend.Load(ctx)

	if password != doc.AdminPassword() {
		g.logger.Warn("Admin login failed")
		return "", fmt.Errorf("admin login: %w", ErrUnauthorized)
	}

	return SessionProof, nil
}

// checkProof проверяет пропуск сессии
func (g *AdminGate) checkProof(proof string) error {
	if proof != SessionProof {
		return fmt.Errorf("invalid session proof: %w", ErrUnauthorized)
	}
	return nil
}

// ReplaceTeachers заменяет список преподавателей целиком. Для каждого
// преподавателя из нового списка гарантируется карта слотов; карты
// убранных из списка преподавателей не удаляются - историю броней
// молча не теряем.
func (g *AdminGate) ReplaceTeachers(ctx context.Context, proof string, teachers []model.TeacherConfig) error {
	if err := g.checkProof(proof); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.backend.Load(ctx)
	doc.Settings.Teachers = teachers

	for _, t := range teachers {
		doc.Slots(t.Name)
	}

	if err := g.backend.Save(ctx, doc); err != nil {
		return fmt.Errorf("persist document: %w", err)
	}

	g.logger.Info("Teacher roster replaced", zap.Int("teachers", len(teachers)))
	return nil
}

// ForceDelete удаляет бронь без проверки токена
func (g *AdminGate) ForceDelete(ctx context.Context, proof, teacher, slotTime string) error {
	if err := g.checkProof(proof); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	doc := g.backend.Load(ctx)
	slots := doc.Slots(teacher)

	if slots[slotTime] == nil {
		return fmt.Errorf("force delete %s %s: %w", teacher, slotTime, ErrNotFound)
	}

	delete(slots, slotTime)

	if err := g.backend.Save(ctx, doc); err != nil {
		return fmt.Errorf("persist document: %w", err)
	}

	g.logger.Info("Reservation force-deleted",
		zap.String("teacher", teacher),
		zap.String("time", slotTime),
	)
	return nil
}
