package cms

import (
	"context"
	"encoding/json"

	"github.com/petmais/PetMais-Backend/internal/domain"
)

// ComponentRepository интерфейс репозитория CMS-контента
type ComponentRepository interface {
	GetByName(ctx context.Context, name string) (*domain.CMSComponent, error)
	Upsert(ctx context.Context, name string, content json.RawMessage) (*domain.CMSComponent, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
