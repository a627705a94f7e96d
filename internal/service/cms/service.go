package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	cmsRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/cms"
)

// Service сервис CMS-контента
// Хранилище ключ-значение для именованных JSON-блоков, которые редактирует
// админка и читает фронтенд
type Service struct {
	componentRepo ComponentRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса CMS-контента
func NewService(componentRepo ComponentRepository, logger Logger) *Service {
	return &Service{
		componentRepo: componentRepo,
		logger:        logger,
	}
}

// GetComponent получает JSON-контент компонента по имени
func (s *Service) GetComponent(ctx context.Context, name string) (json.RawMessage, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: component name is required", ErrInvalidInput)
	}

	component, err := s.componentRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, cmsRepo.ErrComponentNotFound) {
			s.logger.Info("GetComponent: component %q not found", name)
			return nil, ErrComponentNotFound
		}
		return nil, s.wrapRepoErr("GetComponent", err)
	}

	s.logger.Info("GetComponent: fetched component %q", name)
	return component.Content, nil
}

// SaveComponent сохраняет JSON-контент компонента (upsert по имени)
// Контент не интерпретируется, проверяется только что это валидный JSON
func (s *Service) SaveComponent(ctx context.Context, name string, content json.RawMessage) (json.RawMessage, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: component name is required", ErrInvalidInput)
	}
	if len(content) == 0 || !json.Valid(content) {
		return nil, fmt.Errorf("%w: content must be valid JSON", ErrInvalidInput)
	}

	component, err := s.componentRepo.Upsert(ctx, name, content)
	if err != nil {
		return nil, s.wrapRepoErr("SaveComponent", err)
	}

	s.logger.Info("SaveComponent: saved component %q", name)
	return component.Content, nil
}

func (s *Service) wrapRepoErr(op string, err error) error {
	if errors.Is(err, cmsRepo.ErrUnavailable) {
		s.logger.Error("%s: store unavailable: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
