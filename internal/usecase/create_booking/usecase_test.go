package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonique/booking-service/internal/domain"
	"github.com/salonique/booking-service/internal/integrations/catalogservice"
	"github.com/salonique/booking-service/pkg/ptr"
	"github.com/salonique/booking-service/pkg/types"
)

type bookingRepoStub struct {
	existing []*domain.Booking
	created  *domain.Booking
}

func (s *bookingRepoStub) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 42
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	s.created = booking
	return booking, nil
}

func (s *bookingRepoStub) GetByProfessionalWithFilter(context.Context, domain.ProfessionalBookingsFilter) ([]*domain.Booking, error) {
	return s.existing, nil
}

type scheduleRepoStub struct {
	day *domain.WeeklySchedule
}

func (s *scheduleRepoStub) GetByProfessionalAndDay(context.Context, int64, domain.Weekday) (*domain.WeeklySchedule, error) {
	return s.day, nil
}

type blockerRepoStub struct {
	blockers []*domain.TimeBlocker
}

func (s *blockerRepoStub) GetByProfessionalAndPeriod(context.Context, int64, time.Time, time.Time) ([]*domain.TimeBlocker, error) {
	return s.blockers, nil
}

type catalogStub struct {
	customerErr error
}

func (s *catalogStub) GetProfessional(_ context.Context, id int64) (*catalogservice.Professional, error) {
	return &catalogservice.Professional{ID: id, VendorID: 10, IsActive: true}, nil
}

func (s *catalogStub) GetService(_ context.Context, id int64) (*catalogservice.Service, error) {
	return &catalogservice.Service{ID: id, VendorID: 10, Name: "Маникюр", DurationMinutes: 60, Price: 2000}, nil
}

func (s *catalogStub) GetCustomerWithGracefulDegradation(_ context.Context, id int64) (*catalogservice.Customer, error) {
	if s.customerErr != nil {
		return nil, s.customerErr
	}
	return &catalogservice.Customer{ID: id, Name: "Ольга"}, nil
}

type txManagerStub struct{}

func (txManagerStub) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник
var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func workingMonday() *domain.WeeklySchedule {
	return &domain.WeeklySchedule{
		ProfessionalID: 1,
		DayOfWeek:      domain.WeekdayMonday,
		IsAvailable:    true,
		StartTime:      ptr.Ptr(types.TimeString("09:00")),
		EndTime:        ptr.Ptr(types.TimeString("17:00")),
	}
}

func newTestUseCase(repo *bookingRepoStub, blockers []*domain.TimeBlocker, catalog *catalogStub) *UseCase {
	uc := NewUseCase(repo, &scheduleRepoStub{day: workingMonday()}, &blockerRepoStub{blockers: blockers}, catalog, txManagerStub{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerID:     5,
		ProfessionalID: 1,
		ServiceID:      2,
		Date:           testDate,
		StartTime:      "10:00",
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &bookingRepoStub{}
	resp, err := newTestUseCase(repo, nil, &catalogStub{}).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.EqualValues(t, 42, resp.ID)
	assert.Equal(t, string(domain.BookingStatusPending), resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, "Маникюр", resp.ServiceName)
	assert.Equal(t, 2000.0, resp.Price)
	assert.Equal(t, "Ольга", resp.CustomerName)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.BookingStatusPending, repo.created.Status)
}

func TestExecute_OverlappingBookingRejected(t *testing.T) {
	repo := &bookingRepoStub{existing: []*domain.Booking{
		{Status: domain.BookingStatusConfirmed, StartTime: "10:30", EndTime: "11:30"},
	}}

	_, err := newTestUseCase(repo, nil, &catalogStub{}).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_AdjacentBookingAccepted(t *testing.T) {
	repo := &bookingRepoStub{existing: []*domain.Booking{
		{Status: domain.BookingStatusConfirmed, StartTime: "09:00", EndTime: "10:00"},
	}}

	_, err := newTestUseCase(repo, nil, &catalogStub{}).Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_BlockedSlotRejected(t *testing.T) {
	blockers := []*domain.TimeBlocker{
		{Date: testDate, StartTime: ptr.Ptr(types.TimeString("10:30")), EndTime: ptr.Ptr(types.TimeString("11:30"))},
	}

	_, err := newTestUseCase(&bookingRepoStub{}, blockers, &catalogStub{}).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PastDateRejected(t *testing.T) {
	req := validRequest()
	req.Date = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	_, err := newTestUseCase(&bookingRepoStub{}, nil, &catalogStub{}).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_PastTimeTodayRejected(t *testing.T) {
	uc := newTestUseCase(&bookingRepoStub{}, nil, &catalogStub{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_UnalignedStartRejected(t *testing.T) {
	// 10:07 не лежит на пятиминутной сетке кандидатов
	req := validRequest()
	req.StartTime = "10:07"

	_, err := newTestUseCase(&bookingRepoStub{}, nil, &catalogStub{}).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CatalogDegradationKeepsBooking(t *testing.T) {
	repo := &bookingRepoStub{}
	catalog := &catalogStub{customerErr: catalogservice.ErrServiceDegraded}

	resp, err := newTestUseCase(repo, nil, catalog).Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "", resp.CustomerName)
}

func TestExecute_UnknownCustomerRejected(t *testing.T) {
	catalog := &catalogStub{customerErr: catalogservice.ErrCustomerNotFound}

	_, err := newTestUseCase(&bookingRepoStub{}, nil, catalog).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
