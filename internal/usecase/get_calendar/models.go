package get_calendar

import (
	"time"

	"github.com/salonique/booking-service/internal/domain"
)

// View вид календаря
type View string

const (
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Request модель запроса календарной сетки
type Request struct {
	View            View      // week или month
	Date            time.Time // Любая дата внутри недели или месяца
	ProfessionalIDs []int64   // Мастера, попадающие в сетку
}

// Response модель ответа — заполняется ровно одно из представлений
type Response struct {
	View  View       `json:"view"`
	Week  *WeekView  `json:"week,omitempty"`
	Month *MonthView `json:"month,omitempty"`
}

// WeekView недельная сетка с тиками по 15 минут
type WeekView struct {
	StartDate     string             `json:"startDate"` // Воскресенье, "2026-03-01"
	EndDate       string             `json:"endDate"`   // Суббота
	Professionals []ProfessionalWeek `json:"professionals"`
}

// ProfessionalWeek неделя одного мастера
type ProfessionalWeek struct {
	ProfessionalID int64     `json:"professionalId"`
	Name           string    `json:"name"`
	Days           []WeekDay `json:"days"` // 7 дней, начиная с понедельника
}

// WeekDay день недельной сетки
type WeekDay struct {
	Date  string `json:"date"`
	Ticks []Tick `json:"ticks"`
}

// Tick ячейка сетки на 15 минут.
// Working и Blocked независимы: тик может быть заблокирован вне рабочих часов.
// Запись отображается на первом тике, последующие тики помечены Covered.
type Tick struct {
	Time    string       `json:"time"` // "06:00"
	Working bool         `json:"working"`
	Blocked bool         `json:"blocked"`
	Covered bool         `json:"covered,omitempty"`
	Booking *BookingCell `json:"booking,omitempty"`
}

// BookingCell запись на первом тике её интервала
type BookingCell struct {
	BookingID    int64  `json:"bookingId"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
	ServiceName  string `json:"serviceName"`
	CustomerName string `json:"customerName"`
	SpanTicks    int    `json:"spanTicks"`
}

// MonthView месячная сетка
type MonthView struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Days  []*MonthDay `json:"days"` // nil в начале — выравнивание на воскресенье
}

// MonthDay день месячной сетки
type MonthDay struct {
	Date          string                 `json:"date"`
	Available     bool                   `json:"available"`
	TotalBookings int                    `json:"totalBookings"`
	Professionals []ProfessionalDayCount `json:"professionals"` // Не больше трех
	Overflow      int                    `json:"overflow,omitempty"`
}

// ProfessionalDayCount число записей мастера за день
type ProfessionalDayCount struct {
	ProfessionalID int64  `json:"professionalId"`
	Name           string `json:"name"`
	Count          int    `json:"count"`
}

// professionalData данные одного мастера, собранные для проекции
type professionalData struct {
	ID       int64
	Name     string
	Schedule map[domain.Weekday]*domain.WeeklySchedule
	Blockers map[string][]*domain.TimeBlocker // ключ — дата в формате DateFormat
	Bookings map[string][]*domain.Booking
}
