package list_best_sellers

import (
	"context"

	"github.com/petmais/PetMais-Backend/internal/service/catalog/models"
)

type CatalogService interface {
	GetBestSellers(ctx context.Context) ([]*models.ProductResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
