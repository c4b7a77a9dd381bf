package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonique/booking-service/internal/domain"
	scheduleRepo "github.com/salonique/booking-service/internal/infra/storage/schedule"
	"github.com/salonique/booking-service/internal/integrations/catalogservice"
	"github.com/salonique/booking-service/pkg/ptr"
	"github.com/salonique/booking-service/pkg/types"
)

type bookingRepoStub struct {
	bookings []*domain.Booking
}

func (s *bookingRepoStub) GetByProfessionalWithFilter(context.Context, domain.ProfessionalBookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, nil
}

type scheduleRepoStub struct {
	day *domain.WeeklySchedule
	err error
}

func (s *scheduleRepoStub) GetByProfessionalAndDay(context.Context, int64, domain.Weekday) (*domain.WeeklySchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.day, nil
}

type blockerRepoStub struct {
	blockers []*domain.TimeBlocker
}

func (s *blockerRepoStub) GetByProfessionalAndPeriod(context.Context, int64, time.Time, time.Time) ([]*domain.TimeBlocker, error) {
	return s.blockers, nil
}

type catalogStub struct {
	professional *catalogservice.Professional
	service      *catalogservice.Service
	professionalErr error
	serviceErr      error
}

func (s *catalogStub) GetProfessional(context.Context, int64) (*catalogservice.Professional, error) {
	if s.professionalErr != nil {
		return nil, s.professionalErr
	}
	return s.professional, nil
}

func (s *catalogStub) GetService(context.Context, int64) (*catalogservice.Service, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	return s.service, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultCatalog() *catalogStub {
	return &catalogStub{
		professional: &catalogservice.Professional{ID: 1, VendorID: 10, IsActive: true},
		service:      &catalogservice.Service{ID: 2, VendorID: 10, Name: "Стрижка", DurationMinutes: 60, Price: 1500},
	}
}

func workingMonday() *domain.WeeklySchedule {
	return &domain.WeeklySchedule{
		ProfessionalID: 1,
		DayOfWeek:      domain.WeekdayMonday,
		IsAvailable:    true,
		StartTime:      ptr.Ptr(types.TimeString("09:00")),
		EndTime:        ptr.Ptr(types.TimeString("17:00")),
	}
}

// Понедельник
var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestExecute_FullyOpenDay(t *testing.T) {
	uc := NewUseCase(&bookingRepoStub{}, &scheduleRepoStub{day: workingMonday()}, &blockerRepoStub{}, defaultCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 2, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, resp.Slots, 85)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[84].StartTime)
}

func TestExecute_BookingAndBlockerShrinkSlots(t *testing.T) {
	bookings := &bookingRepoStub{bookings: []*domain.Booking{
		{Status: domain.BookingStatusConfirmed, StartTime: "10:00", EndTime: "11:00"},
	}}
	blockers := &blockerRepoStub{blockers: []*domain.TimeBlocker{
		{Date: testDate, StartTime: ptr.Ptr(types.TimeString("14:00")), EndTime: ptr.Ptr(types.TimeString("15:00"))},
	}}

	uc := NewUseCase(bookings, &scheduleRepoStub{day: workingMonday()}, blockers, defaultCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 2, Date: testDate})
	require.NoError(t, err)

	starts := make(map[types.TimeString]bool)
	for _, slot := range resp.Slots {
		starts[slot.StartTime] = true
	}

	assert.True(t, starts["09:00"])
	assert.True(t, starts["11:00"])
	assert.True(t, starts["15:00"])
	assert.False(t, starts["09:30"])
	assert.False(t, starts["10:00"])
	assert.False(t, starts["13:30"])
	assert.False(t, starts["14:00"])
}

func TestExecute_NoScheduleMeansNoSlots(t *testing.T) {
	uc := NewUseCase(&bookingRepoStub{}, &scheduleRepoStub{err: scheduleRepo.ErrScheduleNotFound}, &blockerRepoStub{}, defaultCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 2, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedDay(t *testing.T) {
	closed := &domain.WeeklySchedule{ProfessionalID: 1, DayOfWeek: domain.WeekdayMonday, IsAvailable: false}
	uc := NewUseCase(&bookingRepoStub{}, &scheduleRepoStub{day: closed}, &blockerRepoStub{}, defaultCatalog(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 2, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_VendorMismatch(t *testing.T) {
	catalog := defaultCatalog()
	catalog.service.VendorID = 99

	uc := NewUseCase(&bookingRepoStub{}, &scheduleRepoStub{day: workingMonday()}, &blockerRepoStub{}, catalog, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 2, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceMismatch)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	catalog := defaultCatalog()
	catalog.professionalErr = catalogservice.ErrProfessionalNotFound

	uc := NewUseCase(&bookingRepoStub{}, &scheduleRepoStub{day: workingMonday()}, &blockerRepoStub{}, catalog, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 2, Date: testDate})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&bookingRepoStub{}, &scheduleRepoStub{}, &blockerRepoStub{}, defaultCatalog(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 0, ServiceID: 2, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
