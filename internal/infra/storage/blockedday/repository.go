package blockedday

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/petmais/PetMais-Backend/internal/domain"
	"github.com/petmais/PetMais-Backend/pkg/dbmetrics"
	"github.com/petmais/PetMais-Backend/pkg/pgerr"
	"github.com/petmais/PetMais-Backend/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с заблокированными днями
// (таблица dias_bloqueados)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заблокированных дней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetForDate получает блокировки на дату, действующие для магазина:
// блокировки самого магазина плюс глобальные (id_loja IS NULL)
// Наличие хотя бы одной блокировки делает весь день недоступным
func (r *Repository) GetForDate(ctx context.Context, date time.Time, storeID int64) ([]*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id_bloqueio",
		"data_bloqueada",
		"id_loja",
		"motivo",
	).
		From("dias_bloqueados").
		Where(squirrel.Eq{"data_bloqueada": date.Format(domain.DateFormat)}).
		Where(squirrel.Or{
			squirrel.Eq{"id_loja": storeID},
			squirrel.Eq{"id_loja": nil},
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if pgerr.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: GetForDate - execute query: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("%w: GetForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]*domain.BlockedDay, 0)
	for rows.Next() {
		var d domain.BlockedDay
		var date sql.NullTime

		if err := rows.Scan(&d.ID, &date, &d.StoreID, &d.Reason); err != nil {
			return nil, fmt.Errorf("%w: GetForDate - scan row: %v", ErrScanRow, err)
		}

		d.Date = date.Time
		days = append(days, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetForDate - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}
