package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/petmais/PetMais-Backend/internal/domain"
	blockedDayRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/blockedday"
	bookingRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/booking"
	ruleRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/rule"
)

// UseCase use case расчета доступных слотов для записи
type UseCase struct {
	bookingRepo    BookingRepository
	ruleRepo       RuleRepository
	blockedDayRepo BlockedDayRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ruleRepo RuleRepository,
	blockedDayRepo BlockedDayRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		ruleRepo:       ruleRepo,
		blockedDayRepo: blockedDayRepo,
		logger:         logger,
	}
}

// Execute выполняет use case расчета доступных слотов
// Пустой список слотов считается валидным результатом (день заблокирован, правило
// отсутствует/неактивно или всё занято), а не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: store=%d, service=%d, date=%s",
		req.StoreID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем блокировки дня: собственные блокировки магазина плюс
	// глобальные. Любая блокировка закрывает весь день
	blocked, err := uc.blockedDayRepo.GetForDate(ctx, req.Date, req.StoreID)
	if err != nil {
		if errors.Is(err, blockedDayRepo.ErrUnavailable) {
			uc.logger.Error("GetAvailableSlots: blocked days lookup, store unavailable: %v", err)
			return nil, fmt.Errorf("%w: blocked days lookup: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to get blocked days: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked days: %v", ErrInternal, err)
	}
	if len(blocked) > 0 {
		uc.logger.Info("GetAvailableSlots: day %s is blocked for store=%d (%d records)",
			req.Date.Format(domain.DateFormat), req.StoreID, len(blocked))
		return &Response{Slots: []string{}}, nil
	}

	// 3. Получаем правило для пары магазин+услуга
	// Отсутствующее или неактивное правило означает просто "нет слотов"
	rule, err := uc.ruleRepo.GetServiceRule(ctx, req.StoreID, req.ServiceID)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			uc.logger.Info("GetAvailableSlots: no rule for store=%d, service=%d", req.StoreID, req.ServiceID)
			return &Response{Slots: []string{}}, nil
		}
		if errors.Is(err, ruleRepo.ErrUnavailable) {
			uc.logger.Error("GetAvailableSlots: rule lookup, store unavailable: %v", err)
			return nil, fmt.Errorf("%w: rule lookup: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to get rule: %v", err)
		return nil, fmt.Errorf("%w: failed to get rule: %v", ErrInternal, err)
	}
	if !rule.Active {
		uc.logger.Info("GetAvailableSlots: rule inactive for store=%d, service=%d", req.StoreID, req.ServiceID)
		return &Response{Slots: []string{}}, nil
	}

	// 4. Длительность слота с откатом на шаг сетки по умолчанию
	slotDuration := rule.SlotDuration()

	// 5. Получаем записи магазина, начинающиеся в запрошенный день (UTC)
	dayStart, dayEnd := dayWindow(req.Date)
	bookings, err := uc.bookingRepo.GetByStoreStartingBetween(ctx, req.StoreID, dayStart, dayEnd)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrUnavailable) {
			uc.logger.Error("GetAvailableSlots: bookings lookup, store unavailable: %v", err)
			return nil, fmt.Errorf("%w: bookings lookup: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Перебираем сетку дня и фильтруем по занятости
	slots := calculateAvailableSlots(req.Date, slotDuration, rule.Capacity, bookings)

	uc.logger.Info("GetAvailableSlots: %d slots available for store=%d, service=%d, date=%s",
		len(slots), req.StoreID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{Slots: slots}, nil
}
