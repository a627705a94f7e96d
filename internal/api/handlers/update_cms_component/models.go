package update_cms_component

import (
	"encoding/json"
	"fmt"
)

// UpdatedResponse обёртка ответа на успешное сохранение компонента
type UpdatedResponse struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// NewUpdatedResponse формирует ответ в историческом формате
func NewUpdatedResponse(name string, content json.RawMessage) *UpdatedResponse {
	return &UpdatedResponse{
		Message: fmt.Sprintf("Componente '%s' atualizado com sucesso!", name),
		Data:    content,
	}
}
