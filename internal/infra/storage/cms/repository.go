package cms

import (
	"context"
	"database/sql"
	"encoding/json"
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

// Repository репозиторий для работы с CMS-контентом (таблица conteudo_cms)
// Хранилище ключ-значение: имя компонента -> JSON
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория CMS-контента
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByName получает компонент по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.CMSComponent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"nome_componente",
		"conteudo_json",
		"atualizado_em",
	).
		From("conteudo_cms").
		Where(squirrel.Eq{"nome_componente": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	var component domain.CMSComponent
	var content []byte
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&component.Name,
		&content,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrComponentNotFound
	}
	if err != nil {
		if pgerr.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: GetByName - scan component: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("%w: GetByName - scan component: %v", ErrScanRow, err)
	}

	component.Content = json.RawMessage(content)
	component.UpdatedAt = updatedAt.Time

	return &component, nil
}

// Upsert сохраняет компонент: обновляет существующий или вставляет новый
// (ON CONFLICT по nome_componente)
func (r *Repository) Upsert(ctx context.Context, name string, content json.RawMessage) (*domain.CMSComponent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("conteudo_cms").
		Columns("nome_componente", "conteudo_json", "atualizado_em").
		Values(name, []byte(content), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (nome_componente) DO UPDATE SET conteudo_json = EXCLUDED.conteudo_json, atualizado_em = NOW()").
		Suffix("RETURNING atualizado_em").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err != nil {
		if pgerr.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return &domain.CMSComponent{
		Name:      name,
		Content:   content,
		UpdatedAt: updatedAt.Time,
	}, nil
}
