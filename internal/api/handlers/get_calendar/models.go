package get_calendar

import (
	"strconv"
	"strings"
	"time"

	"github.com/salonique/booking-service/internal/domain"
	getCalendar "github.com/salonique/booking-service/internal/usecase/get_calendar"
)

// ToUseCaseRequest создает запрос use case из query параметров.
// professionalIds передаются через запятую: "1,2,3".
func ToUseCaseRequest(viewStr, dateStr, professionalIDsStr string) (*getCalendar.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	var professionalIDs []int64
	for _, part := range strings.Split(professionalIDsStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		professionalIDs = append(professionalIDs, id)
	}

	return &getCalendar.Request{
		View:            getCalendar.View(viewStr),
		Date:            date,
		ProfessionalIDs: professionalIDs,
	}, nil
}
