package get_available_slots

import (
	"context"
	"time"

	"github.com/petmais/PetMais-Backend/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// GetByStoreStartingBetween получает неотменённые записи магазина,
	// начинающиеся в интервале [from, to)
	GetByStoreStartingBetween(ctx context.Context, storeID int64, from, to time.Time) ([]*domain.Booking, error)
}

// RuleRepository интерфейс репозитория правил оказания услуг
type RuleRepository interface {
	GetServiceRule(ctx context.Context, storeID, serviceID int64) (*domain.ServiceRule, error)
}

// BlockedDayRepository интерфейс репозитория заблокированных дней
type BlockedDayRepository interface {
	GetForDate(ctx context.Context, date time.Time, storeID int64) ([]*domain.BlockedDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
