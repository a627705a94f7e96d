package domain

import "time"

// Product товар интернет-магазина (produto)
type Product struct {
	ID            int64
	Name          string
	ImageURL      *string
	Price         float64
	PromoPrice    *float64
	StockQuantity int
	RegisteredAt  time.Time
}

// HasPromo возвращает true, если у товара задана промо-цена
func (p *Product) HasPromo() bool {
	return p.PromoPrice != nil
}
