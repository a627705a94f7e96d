package domain

import (
	"encoding/json"
	"time"
)

// CMSComponent именованный JSON-блок контента (conteudo_cms)
// Контент хранится как есть, сервис его не интерпретирует
type CMSComponent struct {
	Name      string
	Content   json.RawMessage
	UpdatedAt time.Time
}
