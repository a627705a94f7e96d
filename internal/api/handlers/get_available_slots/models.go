package get_available_slots

import (
	"strconv"
	"time"

	"github.com/petmais/PetMais-Backend/internal/domain"
	getAvailableSlots "github.com/petmais/PetMais-Backend/internal/usecase/get_available_slots"
)

// ToUseCaseRequest создает запрос use case из query-параметров
// Фронтенд передает loja_id, servico_id и data=YYYY-MM-DD
func ToUseCaseRequest(storeIDStr, serviceIDStr, dateStr string) (*getAvailableSlots.Request, error) {
	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		return nil, err
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StoreID:   storeID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
