package booking

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

// Repository репозиторий для работы с записями (таблица agendamentos)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись
// Если в контексте передана активная транзакция (через context.Value),
// использует её: usecase создания записи выполняет проверку занятости
// и вставку в одной SERIALIZABLE транзакции
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("agendamentos").
		Columns(
			"id_cliente",
			"id_pet",
			"id_loja",
			"id_servico",
			"data_hora_inicio",
			"data_hora_fim",
			"status",
			"observacoes_cliente",
		).
		Values(
			b.ClientID,
			b.PetID,
			b.StoreID,
			b.ServiceID,
			b.StartsAt,
			b.EndsAt,
			b.Status,
			b.ClientNotes,
		).
		Suffix("RETURNING id_agendamento, criado_em").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, wrapExecErr("Create - execute insert", err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByStoreStartingBetween получает неотменённые записи магазина,
// начинающиеся в интервале [from, to). Используется калькулятором
// доступных слотов для выборки записей на календарный день (UTC)
func (r *Repository) GetByStoreStartingBetween(ctx context.Context, storeID int64, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id_agendamento",
		"id_cliente",
		"id_pet",
		"id_loja",
		"id_servico",
		"data_hora_inicio",
		"data_hora_fim",
		"status",
		"observacoes_cliente",
		"criado_em",
	).
		From("agendamentos").
		Where(squirrel.Eq{"id_loja": storeID}).
		Where(squirrel.GtOrEq{"data_hora_inicio": from}).
		Where(squirrel.Lt{"data_hora_inicio": to}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("data_hora_inicio ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStoreStartingBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecErr("GetByStoreStartingBetween - execute query", err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountOverlapping подсчитывает неотменённые записи магазина,
// пересекающиеся с полуоткрытым интервалом [start, end):
// data_hora_inicio < end AND data_hora_fim > start
//
// Внутри транзакции добавляет FOR UPDATE, чтобы конкурирующие
// создания записи на пересекающийся интервал сериализовались
func (r *Repository) CountOverlapping(ctx context.Context, storeID int64, start, end time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id_agendamento").
		From("agendamentos").
		Where(squirrel.Eq{"id_loja": storeID}).
		Where(squirrel.Lt{"data_hora_inicio": end}).
		Where(squirrel.Gt{"data_hora_fim": start}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, wrapExecErr("CountOverlapping - execute query", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	// Конфликт сериализации может всплыть и на итерации по результату
	if err := rows.Err(); err != nil {
		return 0, wrapExecErr("CountOverlapping - rows error", err)
	}

	return count, nil
}

// scanBookings сканирует результаты запроса в слайс записей
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.ClientID,
			&b.PetID,
			&b.StoreID,
			&b.ServiceID,
			&b.StartsAt,
			&b.EndsAt,
			&b.Status,
			&b.ClientNotes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func wrapExecErr(op string, err error) error {
	if pgerr.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %v", pgerr.ErrSerialization, op, err)
	}
	if pgerr.IsUnavailable(err) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
