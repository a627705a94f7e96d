package models

import (
	"time"

	"github.com/petmais/PetMais-Backend/internal/domain"
)

// ProductResponse витринная модель товара
// Имена полей JSON совпадают с колонками таблицы produtos, так их
// исторически читает фронтенд
type ProductResponse struct {
	ID            int64    `json:"id_produto"`
	Name          string   `json:"nome_produto"`
	ImageURL      *string  `json:"url_imagem"`
	Price         float64  `json:"preco"`
	PromoPrice    *float64 `json:"preco_promocional"`
	StockQuantity int      `json:"quantidade_estoque"`
	RegisteredAt  string   `json:"data_cadastro"`
}

// FromDomainProduct конвертирует доменную модель товара в витринную
func FromDomainProduct(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		ImageURL:      p.ImageURL,
		Price:         p.Price,
		PromoPrice:    p.PromoPrice,
		StockQuantity: p.StockQuantity,
		RegisteredAt:  p.RegisteredAt.Format(time.RFC3339),
	}
}

// FromDomainProductList конвертирует список товаров
func FromDomainProductList(products []*domain.Product) []*ProductResponse {
	result := make([]*ProductResponse, len(products))
	for i, p := range products {
		result[i] = FromDomainProduct(p)
	}
	return result
}
