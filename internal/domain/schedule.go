package domain

import (
	"time"

	"github.com/salonique/booking-service/pkg/types"
)

// Weekday represents a day of week in the weekly schedule
type Weekday string

const (
	WeekdayMonday    Weekday = "monday"
	WeekdayTuesday   Weekday = "tuesday"
	WeekdayWednesday Weekday = "wednesday"
	WeekdayThursday  Weekday = "thursday"
	WeekdayFriday    Weekday = "friday"
	WeekdaySaturday  Weekday = "saturday"
	WeekdaySunday    Weekday = "sunday"
)

// AllWeekdays дни недели в порядке отображения (с понедельника)
var AllWeekdays = []Weekday{
	WeekdayMonday,
	WeekdayTuesday,
	WeekdayWednesday,
	WeekdayThursday,
	WeekdayFriday,
	WeekdaySaturday,
	WeekdaySunday,
}

// WeekdayFromTime возвращает Weekday для указанной даты
func WeekdayFromTime(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return WeekdayMonday
	case time.Tuesday:
		return WeekdayTuesday
	case time.Wednesday:
		return WeekdayWednesday
	case time.Thursday:
		return WeekdayThursday
	case time.Friday:
		return WeekdayFriday
	case time.Saturday:
		return WeekdaySaturday
	default:
		return WeekdaySunday
	}
}

// IsValid проверяет корректность значения дня недели
func (d Weekday) IsValid() bool {
	switch d {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday, WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return true
	default:
		return false
	}
}

// WeeklySchedule represents one weekday row of a professional's recurring schedule
// У профессионала ровно семь строк, по одной на день недели
// Строки создаются при инициализации расписания и никогда не удаляются, только переключаются
type WeeklySchedule struct {
	ID             int64
	ProfessionalID int64
	DayOfWeek      Weekday
	IsAvailable    bool
	// Времена имеют смысл только при IsAvailable = true
	// Инвариант на запись: IsAvailable = true ⇒ StartTime < EndTime
	StartTime *types.TimeString
	EndTime   *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasWorkingHours проверяет, что день открыт и рабочие часы заданы
func (s *WeeklySchedule) HasWorkingHours() bool {
	return s.IsAvailable && s.StartTime != nil && s.EndTime != nil
}

// CoversTick проверяет, что тик попадает в рабочие часы [StartTime, EndTime)
func (s *WeeklySchedule) CoversTick(tick types.TimeString) bool {
	if !s.HasWorkingHours() {
		return false
	}
	return !tick.IsBefore(*s.StartTime) && tick.IsBefore(*s.EndTime)
}

// DefaultWeek возвращает дефолтное недельное расписание:
// понедельник–пятница 09:00–17:00, суббота и воскресенье закрыты
func DefaultWeek(professionalID int64) []*WeeklySchedule {
	start := types.TimeString(DefaultWorkStartTime)
	end := types.TimeString(DefaultWorkEndTime)

	week := make([]*WeeklySchedule, 0, len(AllWeekdays))
	for _, day := range AllWeekdays {
		row := &WeeklySchedule{
			ProfessionalID: professionalID,
			DayOfWeek:      day,
		}
		if day != WeekdaySaturday && day != WeekdaySunday {
			row.IsAvailable = true
			row.StartTime = &start
			row.EndTime = &end
		}
		week = append(week, row)
	}

	return week
}
