package create_booking

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/petmais/PetMais-Backend/internal/api/handlers"
	"github.com/petmais/PetMais-Backend/internal/domain"
	createBooking "github.com/petmais/PetMais-Backend/internal/usecase/create_booking"
)

// Сообщения сохранены на португальском для совместимости с фронтендом
const (
	msgEmptyBody        = "Sem corpo JSON."
	msgStoreUnavailable = "Erro DB indisponível."
	msgInternalError    = "Erro interno ao agendar."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/agendar
// Принимает JSON с полями id_cliente, id_loja, id_servico, data_hora_inicio
// (обязательные), id_pet и observacoes_cliente (опциональные)
// Конфликт по вместимости и ошибки валидации дают 409, только отсутствие
// тела запроса даёт 400
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest

	if err := handlers.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, handlers.ErrEmptyBody) {
			h.logger.Warn("POST /agendar - Empty request body")
			handlers.RespondBadRequest(w, msgEmptyBody)
			return
		}
		h.logger.Warn("POST /agendar - Malformed JSON: %v", err)
		handlers.RespondBadRequest(w, msgEmptyBody)
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		h.logger.Warn("POST /agendar - Missing fields: %s", strings.Join(missing, ", "))
		handlers.RespondConflict(w, MissingFieldsMessage(missing))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /agendar - Invalid request: %v", err)
		handlers.RespondConflict(w, fmt.Sprintf("Formato de data/hora inválido: %s", *req.StartsAt))
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /agendar - Slot taken: store_id=%d, service_id=%d, starts_at=%s",
				useCaseReq.StoreID, useCaseReq.ServiceID, useCaseReq.StartsAt)
			handlers.RespondConflict(w, fmt.Sprintf("Horário %s não mais disponível.",
				useCaseReq.StartsAt.Format(domain.TimeFormat)))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /agendar - Validation failed: %v", err)
			handlers.RespondConflict(w, fmt.Sprintf("Dados inválidos: %v", err))

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Error("POST /agendar - Store unavailable: %v", err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /agendar - Failed to create booking: store_id=%d, service_id=%d, error=%v",
				useCaseReq.StoreID, useCaseReq.ServiceID, err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	h.logger.Info("POST /agendar - Booking created: id=%d, store_id=%d, service_id=%d",
		result.ID, result.StoreID, result.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
