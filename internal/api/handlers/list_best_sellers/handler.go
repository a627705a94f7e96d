package list_best_sellers

import (
	"errors"
	"net/http"

	"github.com/petmais/PetMais-Backend/internal/api/handlers"
	"github.com/petmais/PetMais-Backend/internal/service/catalog"
)

// Сообщения сохранены на португальском для совместимости с фронтендом
const (
	msgStoreUnavailable = "DB indisponível."
	msgInternalError    = "Falha ao carregar mais vendidos."
)

type Handler struct {
	catalogService CatalogService
	logger         Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Handle GET /api/ecommerce/mais-vendidos
// Возвращает JSON-массив товаров, отсортированных по остатку на складе
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.GetBestSellers(r.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrStoreUnavailable) {
			h.logger.Error("GET /ecommerce/mais-vendidos - Store unavailable: %v", err)
			handlers.RespondUnavailable(w, msgStoreUnavailable)
			return
		}
		h.logger.Error("GET /ecommerce/mais-vendidos - Failed to fetch best sellers: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, products)
}
