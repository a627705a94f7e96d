package catalog

import (
	"context"
	"errors"
	"fmt"

	productRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/product"
	"github.com/petmais/PetMais-Backend/internal/service/catalog/models"
)

// Лимиты витрин, исторически заданы фронтендом
const (
	showcaseLimit    = 8
	bestSellersLimit = 12
)

// Service сервис витрин интернет-магазина
// Чистые отсортированные чтения, никакой бизнес-логики поверх репозитория
type Service struct {
	productRepo ProductRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса витрин
func NewService(productRepo ProductRepository, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetOffers получает витрину акций: товары с промо-ценой, сначала новые
func (s *Service) GetOffers(ctx context.Context) ([]*models.ProductResponse, error) {
	products, err := s.productRepo.ListPromoted(ctx, showcaseLimit)
	if err != nil {
		return nil, s.wrapRepoErr("GetOffers", err)
	}

	s.logger.Info("GetOffers: fetched %d products", len(products))
	return models.FromDomainProductList(products), nil
}

// GetNewArrivals получает витрину новинок
func (s *Service) GetNewArrivals(ctx context.Context) ([]*models.ProductResponse, error) {
	products, err := s.productRepo.ListNewest(ctx, showcaseLimit)
	if err != nil {
		return nil, s.wrapRepoErr("GetNewArrivals", err)
	}

	s.logger.Info("GetNewArrivals: fetched %d products", len(products))
	return models.FromDomainProductList(products), nil
}

// GetBestSellers получает витрину "самые продаваемые"
// Продажи не учитываются, сортировка идёт по остатку на складе:
// историческое поведение, сохранено для совместимости
func (s *Service) GetBestSellers(ctx context.Context) ([]*models.ProductResponse, error) {
	products, err := s.productRepo.ListByStockDesc(ctx, bestSellersLimit)
	if err != nil {
		return nil, s.wrapRepoErr("GetBestSellers", err)
	}

	s.logger.Info("GetBestSellers: fetched %d products", len(products))
	return models.FromDomainProductList(products), nil
}

// GetRecommended получает витрину рекомендаций
// Персонализации нет, отдаются новинки
func (s *Service) GetRecommended(ctx context.Context) ([]*models.ProductResponse, error) {
	products, err := s.productRepo.ListNewest(ctx, showcaseLimit)
	if err != nil {
		return nil, s.wrapRepoErr("GetRecommended", err)
	}

	s.logger.Info("GetRecommended: fetched %d products", len(products))
	return models.FromDomainProductList(products), nil
}

func (s *Service) wrapRepoErr(op string, err error) error {
	if errors.Is(err, productRepo.ErrUnavailable) {
		s.logger.Error("%s: store unavailable: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
