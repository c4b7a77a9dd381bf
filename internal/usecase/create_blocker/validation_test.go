package create_blocker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/salonique/booking-service/pkg/ptr"
	"github.com/salonique/booking-service/pkg/types"
)

func validRequest() *Request {
	return &Request{
		UserID:         1,
		ProfessionalID: 1,
		StartDate:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateRequest_AllDayRange(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequest_DateRangeOrder(t *testing.T) {
	req := validRequest()
	req.StartDate = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	req.EndDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, validateRequest(req), ErrDateRangeOrder)
}

func TestValidateRequest_SingleDayInvertedTimes(t *testing.T) {
	req := validRequest()
	req.EndDate = req.StartDate
	req.StartTime = ptr.Ptr(types.TimeString("14:00"))
	req.EndTime = ptr.Ptr(types.TimeString("12:00"))

	assert.ErrorIs(t, validateRequest(req), ErrTimeOrder)
}

func TestValidateRequest_MultiDayInvertedTimesAccepted(t *testing.T) {
	// Для многодневного диапазона порядок времен не проверяется
	req := validRequest()
	req.StartTime = ptr.Ptr(types.TimeString("14:00"))
	req.EndTime = ptr.Ptr(types.TimeString("12:00"))

	assert.NoError(t, validateRequest(req))
}

func TestValidateRequest_RangeOrderCheckedBeforeTimeOrder(t *testing.T) {
	// Обе проверки провалены — диапазон дат проверяется первым
	req := validRequest()
	req.StartDate = time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	req.EndDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	req.StartTime = ptr.Ptr(types.TimeString("14:00"))
	req.EndTime = ptr.Ptr(types.TimeString("12:00"))

	assert.ErrorIs(t, validateRequest(req), ErrDateRangeOrder)
}

func TestValidateRequest_OnlyOneTimeRejected(t *testing.T) {
	req := validRequest()
	req.StartTime = ptr.Ptr(types.TimeString("12:00"))

	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_ReasonTooLong(t *testing.T) {
	req := validRequest()
	long := make([]rune, 256)
	for i := range long {
		long[i] = 'x'
	}
	req.Reason = ptr.Ptr(string(long))

	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}
