package update_cms_component

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/petmais/PetMais-Backend/internal/api/handlers"
	"github.com/petmais/PetMais-Backend/internal/service/cms"
)

// Сообщения сохранены на португальском для совместимости с фронтендом
const (
	msgEmptyBody        = "Sem corpo JSON para atualização."
	msgStoreUnavailable = "DB indisponível."
	msgInternalError    = "Falha ao atualizar conteúdo CMS."
)

type Handler struct {
	cmsService CMSService
	logger     Logger
}

func NewHandler(cmsService CMSService, logger Logger) *Handler {
	return &Handler{
		cmsService: cmsService,
		logger:     logger,
	}
}

// Handle PUT /api/cms/componente/{nome_componente}
// Тело запроса: произвольный JSON-блок, сохраняемый как есть (upsert)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["nome_componente"]

	content, err := readBody(r)
	if err != nil || len(content) == 0 || !json.Valid(content) {
		h.logger.Warn("PUT /cms/componente - Missing or invalid JSON body for component %q", name)
		handlers.RespondBadRequest(w, msgEmptyBody)
		return
	}

	saved, err := h.cmsService.SaveComponent(r.Context(), name, content)
	if err != nil {
		switch {
		case errors.Is(err, cms.ErrInvalidInput):
			h.logger.Warn("PUT /cms/componente - Invalid content for component %q: %v", name, err)
			handlers.RespondBadRequest(w, msgEmptyBody)

		case errors.Is(err, cms.ErrStoreUnavailable):
			h.logger.Error("PUT /cms/componente - Store unavailable: %v", err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /cms/componente - Failed to save component %q: %v", name, err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	h.logger.Info("PUT /cms/componente - Component %q updated", name)
	handlers.RespondJSON(w, http.StatusOK, NewUpdatedResponse(name, saved))
}

func readBody(r *http.Request) (json.RawMessage, error) {
	if r.Body == nil {
		return nil, handlers.ErrEmptyBody
	}
	return io.ReadAll(r.Body)
}
