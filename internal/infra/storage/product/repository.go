package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/petmais/PetMais-Backend/internal/domain"
	"github.com/petmais/PetMais-Backend/pkg/dbmetrics"
	"github.com/petmais/PetMais-Backend/pkg/pgerr"
	"github.com/petmais/PetMais-Backend/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с товарами (таблица produtos)
// Витринные выборки это чистые отсортированные чтения без бизнес-логики
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория товаров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListPromoted получает товары с промо-ценой, сначала новые
func (r *Repository) ListPromoted(ctx context.Context, limit uint64) ([]*domain.Product, error) {
	selectBuilder := r.selectProducts().
		Where(squirrel.NotEq{"preco_promocional": nil}).
		OrderBy("data_cadastro DESC").
		Limit(limit)

	return r.list(ctx, "ListPromoted", selectBuilder)
}

// ListNewest получает товары по дате добавления, сначала новые
func (r *Repository) ListNewest(ctx context.Context, limit uint64) ([]*domain.Product, error) {
	selectBuilder := r.selectProducts().
		OrderBy("data_cadastro DESC").
		Limit(limit)

	return r.list(ctx, "ListNewest", selectBuilder)
}

// ListByStockDesc получает товары по убыванию остатка на складе
// Исторически используется как витрина "самые продаваемые"
func (r *Repository) ListByStockDesc(ctx context.Context, limit uint64) ([]*domain.Product, error) {
	selectBuilder := r.selectProducts().
		OrderBy("quantidade_estoque DESC").
		Limit(limit)

	return r.list(ctx, "ListByStockDesc", selectBuilder)
}

func (r *Repository) selectProducts() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id_produto",
		"nome_produto",
		"url_imagem",
		"preco",
		"preco_promocional",
		"quantidade_estoque",
		"data_cadastro",
	).From("produtos")
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %s - execute query: %v", ErrUnavailable, op, err)
		}
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		var registeredAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.ImageURL,
			&p.Price,
			&p.PromoPrice,
			&p.StockQuantity,
			&registeredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		p.RegisteredAt = registeredAt.Time
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return products, nil
}
