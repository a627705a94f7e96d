package catalog

import (
	"context"

	"github.com/petmais/PetMais-Backend/internal/domain"
)

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	ListPromoted(ctx context.Context, limit uint64) ([]*domain.Product, error)
	ListNewest(ctx context.Context, limit uint64) ([]*domain.Product, error)
	ListByStockDesc(ctx context.Context, limit uint64) ([]*domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
