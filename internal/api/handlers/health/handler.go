package health

import (
	"context"
	"net/http"

	"github.com/petmais/PetMais-Backend/internal/api/handlers"
)

// Pinger проверяет доступность базы данных
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

// HealthResponse модель ответа проверки состояния API
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /api/
// Возвращает 200, когда база данных отвечает на пинг, иначе 503
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.logger.Error("GET /api/ - Database ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "API Funcionando",
			Database: "FALHA",
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "API Funcionando",
		Database: "OK",
	})
}
