package domain

// Рабочий день и сетка слотов
// Часы работы фиксированы для всех магазинов, индивидуальных расписаний нет
const (
	DayOpenHour  = 9
	DayCloseHour = 18

	// DefaultSlotDurationMinutes длительность слота, если у услуги
	// не задана длительность
	DefaultSlotDurationMinutes = 30

	// SlotStepMinutes шаг перебора кандидатов по сетке дня
	SlotStepMinutes = 30
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
