package get_cms_component

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/petmais/PetMais-Backend/internal/api/handlers"
	"github.com/petmais/PetMais-Backend/internal/service/cms"
)

// Сообщения сохранены на португальском для совместимости с фронтендом
const (
	msgStoreUnavailable = "DB indisponível."
	msgInternalError    = "Falha ao buscar conteúdo CMS."
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

// Handle GET /api/cms/componente/{nome_componente}
// Отдаёт сохранённый JSON-блок как есть
// Для неизвестного компонента возвращается 404 с пустым объектом,
// фронтенд трактует его как "контент ещё не настроен"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["nome_componente"]

	content, err := h.cmsService.GetComponent(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, cms.ErrComponentNotFound):
			handlers.RespondJSON(w, http.StatusNotFound, struct{}{})

		case errors.Is(err, cms.ErrStoreUnavailable):
			h.logger.Error("GET /cms/componente - Store unavailable: %v", err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /cms/componente - Failed to fetch component %q: %v", name, err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, content)
}
