package create_booking

import (
	"context"
	"time"

	"github.com/petmais/PetMais-Backend/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// CountOverlapping подсчитывает неотменённые записи магазина,
	// пересекающиеся с полуоткрытым интервалом [start, end)
	CountOverlapping(ctx context.Context, storeID int64, start, end time.Time) (int, error)
}

// RuleRepository интерфейс репозитория услуг и правил
type RuleRepository interface {
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
	GetServiceRule(ctx context.Context, storeID, serviceID int64) (*domain.ServiceRule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
