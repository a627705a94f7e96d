package create_booking

import (
	"time"

	"github.com/petmais/PetMais-Backend/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID  string    // ID клиента (непрозрачный идентификатор)
	PetID     *int64    // ID питомца (опционально)
	StoreID   int64     // ID магазина
	ServiceID int64     // ID услуги
	StartsAt  time.Time // Локальное время начала со смещением
	Notes     *string   // Заметки клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64
	ClientID  string
	PetID     *int64
	StoreID   int64
	ServiceID int64
	StartsAt  time.Time // UTC
	EndsAt    time.Time // UTC
	Status    string
	Notes     *string
	CreatedAt time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID,
		ClientID:  b.ClientID,
		PetID:     b.PetID,
		StoreID:   b.StoreID,
		ServiceID: b.ServiceID,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		Status:    string(b.Status),
		Notes:     b.ClientNotes,
		CreatedAt: b.CreatedAt,
	}
}
