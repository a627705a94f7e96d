package domain

// Service услуга (servico): стрижка, ветеринария, day care и т.д.
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
}

// ServiceRule правило оказания услуги в конкретном магазине
// (servicos_loja_regras): активность и допустимое количество
// одновременных записей
type ServiceRule struct {
	StoreID   int64
	ServiceID int64
	Active    bool
	Capacity  int
	// DurationMinutes длительность услуги из таблицы servicos
	DurationMinutes int
}

// SlotDuration возвращает длительность слота в минутах
// Если длительность услуги не задана или некорректна, используется
// шаг сетки по умолчанию
func (r *ServiceRule) SlotDuration() int {
	if r.DurationMinutes <= 0 {
		return DefaultSlotDurationMinutes
	}
	return r.DurationMinutes
}
