package domain

import (
	"time"

	"github.com/salonique/booking-service/pkg/types"
)

// TimeBlocker represents a time-off exception overriding the weekly schedule
// Диапазоны дат материализуются в отдельные строки, по одной на день
type TimeBlocker struct {
	ID             int64
	ProfessionalID int64
	Date           time.Time
	// Оба времени отсутствуют ⇒ блокировка на весь день
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string

	CreatedAt time.Time
}

// IsAllDay проверяет, закрывает ли блокировка весь день
func (b *TimeBlocker) IsAllDay() bool {
	return b.StartTime == nil && b.EndTime == nil
}

// Blocks проверяет, блокирует ли запись полуинтервал [start, end)
// Блокировка на весь день блокирует любой интервал
func (b *TimeBlocker) Blocks(start, end types.TimeString) bool {
	if b.IsAllDay() {
		return true
	}
	if b.StartTime == nil || b.EndTime == nil {
		return false
	}
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}

// CoversTick проверяет, что тик попадает в блокировку
func (b *TimeBlocker) CoversTick(tick types.TimeString) bool {
	if b.IsAllDay() {
		return true
	}
	if b.StartTime == nil || b.EndTime == nil {
		return false
	}
	return !tick.IsBefore(*b.StartTime) && tick.IsBefore(*b.EndTime)
}

// BlockerGroup визуальная группа соседних блокировок с одинаковой конфигурацией
// Производное представление для отображения, в БД не хранится
type BlockerGroup struct {
	StartDate time.Time
	EndDate   time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Reason    *string
	// IDs строк, вошедших в группу — используются при групповом удалении
	BlockerIDs []int64
}

// Days возвращает число дней в группе
func (g *BlockerGroup) Days() int {
	return len(g.BlockerIDs)
}

// GroupBlockers сворачивает строки блокировок в визуальные диапазоны.
// Строки сортируются по дате; запись продолжает текущую группу, только если
// её дата ровно на день позже конца группы И время/причина совпадают,
// иначе начинается новая группа.
func GroupBlockers(blockers []*TimeBlocker) []BlockerGroup {
	if len(blockers) == 0 {
		return []BlockerGroup{}
	}

	sorted := make([]*TimeBlocker, len(blockers))
	copy(sorted, blockers)
	sortBlockersByDate(sorted)

	groups := make([]BlockerGroup, 0)
	var current *BlockerGroup

	for _, blocker := range sorted {
		if current != nil && sameConfig(current, blocker) && isNextDay(current.EndDate, blocker.Date) {
			current.EndDate = blocker.Date
			current.BlockerIDs = append(current.BlockerIDs, blocker.ID)
			continue
		}

		if current != nil {
			groups = append(groups, *current)
		}
		current = &BlockerGroup{
			StartDate:  blocker.Date,
			EndDate:    blocker.Date,
			StartTime:  blocker.StartTime,
			EndTime:    blocker.EndTime,
			Reason:     blocker.Reason,
			BlockerIDs: []int64{blocker.ID},
		}
	}

	groups = append(groups, *current)
	return groups
}

func sortBlockersByDate(blockers []*TimeBlocker) {
	// Вставками: списки блокировок короткие, стабильность важна для одинаковых дат
	for i := 1; i < len(blockers); i++ {
		for j := i; j > 0 && blockers[j].Date.Before(blockers[j-1].Date); j-- {
			blockers[j], blockers[j-1] = blockers[j-1], blockers[j]
		}
	}
}

func sameConfig(group *BlockerGroup, blocker *TimeBlocker) bool {
	return equalTimePtr(group.StartTime, blocker.StartTime) &&
		equalTimePtr(group.EndTime, blocker.EndTime) &&
		equalStringPtr(group.Reason, blocker.Reason)
}

func equalTimePtr(a, b *types.TimeString) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func isNextDay(prev, next time.Time) bool {
	return truncateToDay(prev).AddDate(0, 0, 1).Equal(truncateToDay(next))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DatesBetween возвращает упорядоченный список дат от start до end включительно.
// Каждая дата — новое значение, исходные аргументы не мутируются.
func DatesBetween(start, end time.Time) []time.Time {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	if endDay.Before(startDay) {
		return []time.Time{}
	}

	dates := make([]time.Time, 0)
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
