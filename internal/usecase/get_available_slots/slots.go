package get_available_slots

import (
	"time"

	"github.com/petmais/PetMais-Backend/internal/domain"
)

// dayWindow возвращает границы календарного дня в UTC: [00:00, +24h)
// По этим границам выбираются записи, начинающиеся в запрошенный день
func dayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// calculateAvailableSlots перебирает кандидатов по сетке дня и оставляет те,
// где количество пересекающихся записей строго меньше ёмкости
//
// Кандидаты начинаются с открытия (09:00) и идут с фиксированным шагом сетки
// (30 минут) независимо от длительности услуги. Как только конец очередного
// слота выходит за время закрытия (18:00), перебор прекращается полностью:
// более короткий хвост дня не рассматривается
func calculateAvailableSlots(
	date time.Time,
	slotDuration int,
	capacity int,
	bookings []*domain.Booking,
) []string {
	dayOpen := time.Date(date.Year(), date.Month(), date.Day(), domain.DayOpenHour, 0, 0, 0, time.UTC)
	dayClose := time.Date(date.Year(), date.Month(), date.Day(), domain.DayCloseHour, 0, 0, 0, time.UTC)

	available := make([]string, 0)

	for cur := dayOpen; cur.Before(dayClose); cur = cur.Add(time.Duration(domain.SlotStepMinutes) * time.Minute) {
		slotEnd := cur.Add(time.Duration(slotDuration) * time.Minute)
		if slotEnd.After(dayClose) {
			break
		}

		if countOverlappingBookings(cur, slotEnd, bookings) < capacity {
			available = append(available, cur.Format(domain.TimeFormat))
		}
	}

	return available
}

// countOverlappingBookings подсчитывает записи, пересекающиеся со слотом
// [slotStart, slotEnd) по правилу полуоткрытых интервалов: пересечение есть,
// только если начало записи СТРОГО раньше конца слота И конец записи СТРОГО
// позже начала слота. Граничащие интервалы пересечением не считаются
//
// Сравнение идёт по "наивному" времени: у таймстемпов записей отбрасывается
// смещение (они приводятся к UTC-стенке), кандидаты слотов строятся без зоны.
// Это повторяет историческое поведение и корректно, пока сервер и хранилище
// работают в UTC
func countOverlappingBookings(slotStart, slotEnd time.Time, bookings []*domain.Booking) int {
	count := 0

	for _, b := range bookings {
		// Отменённые записи не занимают место
		if b.IsCancelled() {
			continue
		}

		bookingStart := stripOffset(b.StartsAt)
		bookingEnd := stripOffset(b.EndsAt)

		if bookingStart.Before(slotEnd) && bookingEnd.After(slotStart) {
			count++
		}
	}

	return count
}

// stripOffset приводит таймстемп к UTC-стенке без смещения
func stripOffset(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), u.Nanosecond(), time.UTC)
}
