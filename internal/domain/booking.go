package domain

import "time"

// BookingStatus статус записи на услугу
// Значения хранятся в БД на португальском, так их пишет фронтенд и так
// они исторически лежат в таблице agendamentos
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmado"
	StatusCancelled BookingStatus = "cancelado"
)

// Booking запись клиента на услугу (agendamento)
// StartsAt и EndsAt хранятся в UTC, EndsAt = StartsAt + длительность услуги
// на момент создания и никогда не пересчитывается
type Booking struct {
	ID        int64
	ClientID  string
	PetID     *int64
	StoreID   int64
	ServiceID int64
	StartsAt  time.Time
	EndsAt    time.Time
	Status    BookingStatus

	ClientNotes *string

	CreatedAt time.Time
}

// IsCancelled возвращает true, если запись отменена
// Отменённые записи не участвуют в подсчёте занятости
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Overlaps проверяет пересечение записи с полуоткрытым интервалом [start, end)
// Граничные случаи (конец одного совпадает с началом другого) пересечением
// не считаются
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartsAt.Before(end) && b.EndsAt.After(start)
}
