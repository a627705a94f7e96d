package rule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/petmais/PetMais-Backend/internal/domain"
	"github.com/petmais/PetMais-Backend/pkg/dbmetrics"
	"github.com/petmais/PetMais-Backend/pkg/pgerr"
	"github.com/petmais/PetMais-Backend/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с услугами и правилами их оказания
// (таблицы servicos и servicos_loja_regras)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetServiceRule получает правило оказания услуги в магазине вместе
// с длительностью услуги (join на servicos)
func (r *Repository) GetServiceRule(ctx context.Context, storeID, serviceID int64) (*domain.ServiceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id_loja",
		"r.id_servico",
		"r.ativo",
		"r.capacidade_simultanea",
		"s.duracao_media_minutos",
	).
		From("servicos_loja_regras r").
		Join("servicos s ON s.id_servico = r.id_servico").
		Where(squirrel.Eq{"r.id_loja": storeID}).
		Where(squirrel.Eq{"r.id_servico": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceRule - build select query: %v", ErrBuildQuery, err)
	}

	var rule domain.ServiceRule
	var duration sql.NullInt64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.StoreID,
		&rule.ServiceID,
		&rule.Active,
		&rule.Capacity,
		&duration,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, wrapExecErr("GetServiceRule - scan rule", err)
	}

	rule.DurationMinutes = int(duration.Int64)

	return &rule, nil
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id_servico",
		"nome_servico",
		"duracao_media_minutos",
	).
		From("servicos").
		Where(squirrel.Eq{"id_servico": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	var duration sql.NullInt64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&duration,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, wrapExecErr("GetService - scan service", err)
	}

	svc.DurationMinutes = int(duration.Int64)

	return &svc, nil
}

func wrapExecErr(op string, err error) error {
	if pgerr.IsUnavailable(err) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}
