package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/petmais/PetMais-Backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(startHour, startMin, endHour, endMin int) *domain.Booking {
	day := date(2026, time.March, 10)
	return &domain.Booking{
		StartsAt: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		EndsAt:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
		Status:   domain.StatusConfirmed,
	}
}

func TestCalculateAvailableSlots_EmptyDay(t *testing.T) {
	day := date(2026, time.March, 10)

	slots := calculateAvailableSlots(day, 30, 1, nil)

	// Сетка 09:00..17:30 с шагом 30 минут даёт 18 кандидатов
	assert.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:30", slots[17])
}

func TestCalculateAvailableSlots_LongServiceTruncatesTail(t *testing.T) {
	day := date(2026, time.March, 10)

	slots := calculateAvailableSlots(day, 60, 1, nil)

	// Последний час услуги должен уместиться до 18:00, поэтому последний
	// кандидат 17:00. Перебор останавливается на первом выходе за закрытие
	assert.Len(t, slots, 17)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:00", slots[16])
}

func TestCalculateAvailableSlots_CapacityOne(t *testing.T) {
	day := date(2026, time.March, 10)
	bookings := []*domain.Booking{booking(10, 0, 11, 0)}

	slots := calculateAvailableSlots(day, 30, 1, bookings)

	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	// Граничащие слоты свободны: пересечение полуоткрытое
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "11:00")
	assert.Len(t, slots, 16)
}

func TestCalculateAvailableSlots_CapacityTwo(t *testing.T) {
	day := date(2026, time.March, 10)
	bookings := []*domain.Booking{booking(10, 0, 11, 0)}

	// Одна запись при ёмкости 2 никого не вытесняет
	slots := calculateAvailableSlots(day, 60, 2, bookings)

	assert.Contains(t, slots, "10:00")
	assert.Contains(t, slots, "10:30")
	assert.Len(t, slots, 17)

	// Вторая пересекающаяся запись выбирает ёмкость
	bookings = append(bookings, booking(10, 30, 11, 30))
	slots = calculateAvailableSlots(day, 60, 2, bookings)

	assert.NotContains(t, slots, "10:30")
	// 10:00-11:00 пересекается с обеими записями
	assert.NotContains(t, slots, "10:00")
	// 09:30-10:30 пересекается только с записью 10:00-11:00
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "11:00")
}

func TestCalculateAvailableSlots_CancelledBookingIgnored(t *testing.T) {
	day := date(2026, time.March, 10)
	cancelled := booking(10, 0, 11, 0)
	cancelled.Status = domain.StatusCancelled

	slots := calculateAvailableSlots(day, 30, 1, []*domain.Booking{cancelled})

	assert.Contains(t, slots, "10:00")
	assert.Len(t, slots, 18)
}

func TestCountOverlappingBookings_StripsOffset(t *testing.T) {
	day := date(2026, time.March, 10)
	zone := time.FixedZone("BRT", -3*60*60)

	// 13:00 UTC хранится как 10:00-03:00, после приведения к UTC-стенке
	// запись занимает 13:00-13:30
	b := &domain.Booking{
		StartsAt: time.Date(2026, time.March, 10, 10, 0, 0, 0, zone),
		EndsAt:   time.Date(2026, time.March, 10, 10, 30, 0, 0, zone),
		Status:   domain.StatusConfirmed,
	}

	slotStart := day.Add(13 * time.Hour)
	slotEnd := slotStart.Add(30 * time.Minute)
	assert.Equal(t, 1, countOverlappingBookings(slotStart, slotEnd, []*domain.Booking{b}))

	slotStart = day.Add(10 * time.Hour)
	slotEnd = slotStart.Add(30 * time.Minute)
	assert.Equal(t, 0, countOverlappingBookings(slotStart, slotEnd, []*domain.Booking{b}))
}

func TestDayWindow(t *testing.T) {
	from, to := dayWindow(date(2026, time.March, 10))

	assert.Equal(t, date(2026, time.March, 10), from)
	assert.Equal(t, date(2026, time.March, 11), to)
}
