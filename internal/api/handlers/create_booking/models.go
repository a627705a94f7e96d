package create_booking

import (
	"fmt"
	"strings"
	"time"

	createBooking "github.com/petmais/PetMais-Backend/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP-модель запроса на создание записи
// Обязательные поля объявлены указателями, чтобы отличать отсутствующее
// поле от нулевого значения и назвать пропущенные поля в ответе
type CreateBookingRequest struct {
	ClientID  *string `json:"id_cliente"`
	PetID     *int64  `json:"id_pet,omitempty"`
	StoreID   *int64  `json:"id_loja"`
	ServiceID *int64  `json:"id_servico"`
	StartsAt  *string `json:"data_hora_inicio"` // ISO-8601 со смещением
	Notes     *string `json:"observacoes_cliente,omitempty"`
}

// MissingFields возвращает имена отсутствующих обязательных полей JSON
func (r *CreateBookingRequest) MissingFields() []string {
	missing := make([]string, 0)
	if r.ClientID == nil || *r.ClientID == "" {
		missing = append(missing, "id_cliente")
	}
	if r.StoreID == nil {
		missing = append(missing, "id_loja")
	}
	if r.ServiceID == nil {
		missing = append(missing, "id_servico")
	}
	if r.StartsAt == nil || *r.StartsAt == "" {
		missing = append(missing, "data_hora_inicio")
	}
	return missing
}

// ToUseCaseRequest конвертирует HTTP-запрос в модель use case
// data_hora_inicio обязан содержать смещение (RFC 3339), иначе перевод
// в UTC был бы молчаливой догадкой о зоне клиента
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startsAt, err := time.Parse(time.RFC3339, *r.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("invalid data_hora_inicio: %v", err)
	}

	return &createBooking.Request{
		ClientID:  *r.ClientID,
		PetID:     r.PetID,
		StoreID:   *r.StoreID,
		ServiceID: *r.ServiceID,
		StartsAt:  startsAt,
		Notes:     r.Notes,
	}, nil
}

// MissingFieldsMessage формирует текст ошибки в историческом формате
func MissingFieldsMessage(fields []string) string {
	return fmt.Sprintf("Dados incompletos. Campos faltando: %s", strings.Join(fields, ", "))
}

// BookingResponse HTTP-модель созданной записи
// Имена полей JSON совпадают с колонками таблицы agendamentos
type BookingResponse struct {
	ID        int64   `json:"id_agendamento"`
	ClientID  string  `json:"id_cliente"`
	PetID     *int64  `json:"id_pet"`
	StoreID   int64   `json:"id_loja"`
	ServiceID int64   `json:"id_servico"`
	StartsAt  string  `json:"data_hora_inicio"`
	EndsAt    string  `json:"data_hora_fim"`
	Status    string  `json:"status"`
	Notes     *string `json:"observacoes_cliente"`
	CreatedAt string  `json:"criado_em"`
}

// CreatedResponse обёртка ответа 201
type CreatedResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"agendamento"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-модель
func FromUseCaseResponse(resp *createBooking.Response) *CreatedResponse {
	return &CreatedResponse{
		Message: "Agendamento criado!",
		Booking: BookingResponse{
			ID:        resp.ID,
			ClientID:  resp.ClientID,
			PetID:     resp.PetID,
			StoreID:   resp.StoreID,
			ServiceID: resp.ServiceID,
			StartsAt:  resp.StartsAt.Format(time.RFC3339),
			EndsAt:    resp.EndsAt.Format(time.RFC3339),
			Status:    resp.Status,
			Notes:     resp.Notes,
			CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
