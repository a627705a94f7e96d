package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petmais/PetMais-Backend/internal/domain"
	bookingRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/booking"
	ruleRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/rule"
	"github.com/petmais/PetMais-Backend/pkg/pgerr"
)

// UseCase use case создания записи на услугу
type UseCase struct {
	bookingRepo BookingRepository
	ruleRepo    RuleRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ruleRepo RuleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		ruleRepo:    ruleRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания записи
// Подсчёт занятости и вставка выполняются в одной SERIALIZABLE транзакции,
// чтобы конкурирующие запросы не могли продать ёмкость сверх лимита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%s, store=%d, service=%d, starts_at=%s",
		req.ClientID, req.StoreID, req.ServiceID, req.StartsAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность услуги
	// Неизвестная услуга считается внутренней ошибкой: фронтенд присылает ID
	// из каталога, их рассинхронизация означает проблему данных
	svc, err := uc.ruleRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrServiceNotFound) {
			uc.logger.Error("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, fmt.Errorf("%w: unknown service id=%d", ErrInternal, req.ServiceID)
		}
		if errors.Is(err, ruleRepo.ErrUnavailable) {
			uc.logger.Error("CreateBooking: service lookup, store unavailable: %v", err)
			return nil, fmt.Errorf("%w: service lookup: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Ёмкость из правила магазин+услуга
	// Здесь нет отката в "нет мест", запись без правила считается ошибкой данных.
	// Флаг ativo намеренно не проверяется, поведение исторически
	// отличается от калькулятора слотов
	rule, err := uc.ruleRepo.GetServiceRule(ctx, req.StoreID, req.ServiceID)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			uc.logger.Error("CreateBooking: no rule for store=%d, service=%d", req.StoreID, req.ServiceID)
			return nil, fmt.Errorf("%w: no rule for store=%d, service=%d", ErrInternal, req.StoreID, req.ServiceID)
		}
		if errors.Is(err, ruleRepo.ErrUnavailable) {
			uc.logger.Error("CreateBooking: rule lookup, store unavailable: %v", err)
			return nil, fmt.Errorf("%w: rule lookup: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("CreateBooking: failed to get rule: %v", err)
		return nil, fmt.Errorf("%w: failed to get rule: %v", ErrInternal, err)
	}

	// 4. Переводим интервал в UTC
	// Конец записи фиксируется один раз: start + длительность услуги
	startUTC := req.StartsAt.UTC()
	endUTC := startUTC.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	var result *domain.Booking

	// 5. Проверка занятости и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		count, err := uc.bookingRepo.CountOverlapping(txCtx, req.StoreID, startUTC, endUTC)
		if err != nil {
			// Конфликт сериализации уходит наверх без обёртки,
			// менеджер транзакций повторяет всю транзакцию
			if pgerr.IsSerializationFailure(err) {
				return err
			}
			if errors.Is(err, bookingRepo.ErrUnavailable) {
				uc.logger.Error("CreateBooking: conflict count, store unavailable: %v", err)
				return fmt.Errorf("%w: conflict count: %v", ErrStoreUnavailable, err)
			}
			uc.logger.Error("CreateBooking: failed to count overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to count overlapping bookings: %v", ErrInternal, err)
		}

		// При capacity = N допустимо count = 0..N-1
		if count >= rule.Capacity {
			uc.logger.Warn("CreateBooking: slot %s not available, %d/%d spots taken",
				req.StartsAt.Format(domain.TimeFormat), count, rule.Capacity)
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, req.StartsAt.Format(domain.TimeFormat))
		}

		uc.logger.Info("CreateBooking: slot available, %d/%d spots taken", count, rule.Capacity)

		booking := &domain.Booking{
			ClientID:    req.ClientID,
			PetID:       req.PetID,
			StoreID:     req.StoreID,
			ServiceID:   req.ServiceID,
			StartsAt:    startUTC,
			EndsAt:      endUTC,
			Status:      domain.StatusConfirmed,
			ClientNotes: req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if pgerr.IsSerializationFailure(err) {
				return err
			}
			if errors.Is(err, bookingRepo.ErrUnavailable) {
				uc.logger.Error("CreateBooking: insert, store unavailable: %v", err)
				return fmt.Errorf("%w: insert: %v", ErrStoreUnavailable, err)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return fromDomain(result), nil
}
