package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/petmais/PetMais-Backend/internal/api/handlers"
	getAvailableSlots "github.com/petmais/PetMais-Backend/internal/usecase/get_available_slots"
)

// Сообщения сохранены на португальском для совместимости с фронтендом
const (
	msgInvalidParams    = "Parâmetros inválidos."
	msgStoreUnavailable = "Erro interno: Conexão com banco de dados indisponível."
	msgInternalError    = "Erro interno ao calcular horários."
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/horarios-disponiveis
// Query params: loja_id (required), servico_id (required), data (required, YYYY-MM-DD)
// Ответ: JSON-массив строк "HH:MM", возможно пустой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	storeIDStr := query.Get("loja_id")
	serviceIDStr := query.Get("servico_id")
	dateStr := query.Get("data")

	if storeIDStr == "" || serviceIDStr == "" || dateStr == "" {
		h.logger.Warn("GET /horarios-disponiveis - Missing required params: loja_id=%q, servico_id=%q, data=%q",
			storeIDStr, serviceIDStr, dateStr)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(storeIDStr, serviceIDStr, dateStr)
	if err != nil {
		h.logger.Warn("GET /horarios-disponiveis - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /horarios-disponiveis - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Error("GET /horarios-disponiveis - Store unavailable: %v", err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /horarios-disponiveis - Failed to calculate slots: store_id=%d, service_id=%d, error=%v",
				useCaseReq.StoreID, useCaseReq.ServiceID, err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	h.logger.Info("GET /horarios-disponiveis - %d slots returned: store_id=%d, service_id=%d",
		len(result.Slots), useCaseReq.StoreID, useCaseReq.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, result.Slots)
}
