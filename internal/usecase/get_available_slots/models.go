package get_available_slots

import "time"

// Request модель запроса на расчет доступных слотов
type Request struct {
	StoreID   int64     // ID магазина (loja)
	ServiceID int64     // ID услуги (servico)
	Date      time.Time // Дата без времени
}

// Response модель ответа со списком доступных слотов
// Slots отсортированы по возрастанию, формат "HH:MM"
type Response struct {
	Slots []string
}
