package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmais/PetMais-Backend/internal/domain"
	blockedDayRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/blockedday"
	bookingRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/booking"
	ruleRepo "github.com/petmais/PetMais-Backend/internal/infra/storage/rule"
	"github.com/petmais/PetMais-Backend/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByStoreStartingBetween(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeRuleRepo struct {
	rule *domain.ServiceRule
	err  error
}

func (f *fakeRuleRepo) GetServiceRule(_ context.Context, _, _ int64) (*domain.ServiceRule, error) {
	return f.rule, f.err
}

type fakeBlockedDayRepo struct {
	blocked []*domain.BlockedDay
	err     error
}

func (f *fakeBlockedDayRepo) GetForDate(_ context.Context, _ time.Time, _ int64) ([]*domain.BlockedDay, error) {
	return f.blocked, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		StoreID:   1,
		ServiceID: 2,
		Date:      time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestExecute_FullDayWhenNoBookings(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeRuleRepo{rule: &domain.ServiceRule{StoreID: 1, ServiceID: 2, Active: true, Capacity: 1, DurationMinutes: 30}},
		&fakeBlockedDayRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 18)
	assert.Equal(t, "09:00", resp.Slots[0])
}

func TestExecute_BlockedDayGivesEmptySlots(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeRuleRepo{rule: &domain.ServiceRule{Active: true, Capacity: 1, DurationMinutes: 30}},
		&fakeBlockedDayRepo{blocked: []*domain.BlockedDay{
			{ID: 7, Date: validRequest().Date, Reason: ptr.Ptr("feriado")},
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_MissingRuleGivesEmptySlots(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeRuleRepo{err: ruleRepo.ErrRuleNotFound},
		&fakeBlockedDayRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InactiveRuleGivesEmptySlots(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeRuleRepo{rule: &domain.ServiceRule{Active: false, Capacity: 1, DurationMinutes: 30}},
		&fakeBlockedDayRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ZeroDurationFallsBackToGridStep(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeRuleRepo{rule: &domain.ServiceRule{Active: true, Capacity: 1, DurationMinutes: 0}},
		&fakeBlockedDayRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	// Откат на 30 минут даёт полную сетку дня
	assert.Len(t, resp.Slots, 18)
}

func TestExecute_BookedSlotExcluded(t *testing.T) {
	day := validRequest().Date
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{
			{
				StartsAt: day.Add(10 * time.Hour),
				EndsAt:   day.Add(10*time.Hour + 30*time.Minute),
				Status:   domain.StatusConfirmed,
			},
		}},
		&fakeRuleRepo{rule: &domain.ServiceRule{Active: true, Capacity: 1, DurationMinutes: 30}},
		&fakeBlockedDayRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, "10:00")
	assert.Contains(t, resp.Slots, "09:30")
	assert.Contains(t, resp.Slots, "10:30")
}

func TestExecute_ValidationFails(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRuleRepo{}, &fakeBlockedDayRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StoreID: 0, ServiceID: 2, Date: validRequest().Date})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	tests := []struct {
		name string
		uc   *UseCase
	}{
		{
			name: "blocked days lookup",
			uc: NewUseCase(
				&fakeBookingRepo{},
				&fakeRuleRepo{},
				&fakeBlockedDayRepo{err: blockedDayRepo.ErrUnavailable},
				nopLogger{},
			),
		},
		{
			name: "rule lookup",
			uc: NewUseCase(
				&fakeBookingRepo{},
				&fakeRuleRepo{err: ruleRepo.ErrUnavailable},
				&fakeBlockedDayRepo{},
				nopLogger{},
			),
		},
		{
			name: "bookings lookup",
			uc: NewUseCase(
				&fakeBookingRepo{err: bookingRepo.ErrUnavailable},
				&fakeRuleRepo{rule: &domain.ServiceRule{Active: true, Capacity: 1, DurationMinutes: 30}},
				&fakeBlockedDayRepo{},
				nopLogger{},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.uc.Execute(context.Background(), validRequest())
			require.ErrorIs(t, err, ErrStoreUnavailable)
		})
	}
}
