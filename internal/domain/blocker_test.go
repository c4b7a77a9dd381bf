package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonique/booking-service/pkg/ptr"
	"github.com/salonique/booking-service/pkg/types"
)

func day(dayOfMonth int) time.Time {
	return time.Date(2026, 3, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func TestGroupBlockers_ConsecutiveDaysMerge(t *testing.T) {
	reason := ptr.Ptr("отпуск")
	blockers := []*TimeBlocker{
		{ID: 1, Date: day(10), Reason: reason},
		{ID: 2, Date: day(11), Reason: reason},
		{ID: 3, Date: day(12), Reason: reason},
	}

	groups := GroupBlockers(blockers)
	require.Len(t, groups, 1)
	assert.Equal(t, day(10), groups[0].StartDate)
	assert.Equal(t, day(12), groups[0].EndDate)
	assert.Equal(t, []int64{1, 2, 3}, groups[0].BlockerIDs)
	assert.Equal(t, 3, groups[0].Days())
}

func TestGroupBlockers_GapSplits(t *testing.T) {
	blockers := []*TimeBlocker{
		{ID: 1, Date: day(10)},
		{ID: 2, Date: day(12)},
	}

	groups := GroupBlockers(blockers)
	require.Len(t, groups, 2)
	assert.Equal(t, []int64{1}, groups[0].BlockerIDs)
	assert.Equal(t, []int64{2}, groups[1].BlockerIDs)
}

func TestGroupBlockers_DifferentTimesSplit(t *testing.T) {
	blockers := []*TimeBlocker{
		{ID: 1, Date: day(10), StartTime: ptr.Ptr(types.TimeString("12:00")), EndTime: ptr.Ptr(types.TimeString("14:00"))},
		{ID: 2, Date: day(11), StartTime: ptr.Ptr(types.TimeString("13:00")), EndTime: ptr.Ptr(types.TimeString("14:00"))},
	}

	groups := GroupBlockers(blockers)
	require.Len(t, groups, 2)
}

func TestGroupBlockers_DifferentReasonsSplit(t *testing.T) {
	blockers := []*TimeBlocker{
		{ID: 1, Date: day(10), Reason: ptr.Ptr("отпуск")},
		{ID: 2, Date: day(11), Reason: ptr.Ptr("обучение")},
	}

	groups := GroupBlockers(blockers)
	require.Len(t, groups, 2)
}

func TestGroupBlockers_NilAndValueReasonSplit(t *testing.T) {
	blockers := []*TimeBlocker{
		{ID: 1, Date: day(10)},
		{ID: 2, Date: day(11), Reason: ptr.Ptr("отпуск")},
	}

	groups := GroupBlockers(blockers)
	require.Len(t, groups, 2)
}

func TestGroupBlockers_UnsortedInput(t *testing.T) {
	blockers := []*TimeBlocker{
		{ID: 3, Date: day(12)},
		{ID: 1, Date: day(10)},
		{ID: 2, Date: day(11)},
	}

	groups := GroupBlockers(blockers)
	require.Len(t, groups, 1)
	assert.Equal(t, []int64{1, 2, 3}, groups[0].BlockerIDs)
}

func TestGroupBlockers_Empty(t *testing.T) {
	groups := GroupBlockers(nil)
	assert.Empty(t, groups)
}

func TestTimeBlocker_Blocks(t *testing.T) {
	partial := &TimeBlocker{
		StartTime: ptr.Ptr(types.TimeString("12:00")),
		EndTime:   ptr.Ptr(types.TimeString("14:00")),
	}

	assert.True(t, partial.Blocks("12:00", "13:00"))
	assert.True(t, partial.Blocks("13:30", "15:00"))
	assert.True(t, partial.Blocks("11:00", "12:05"))
	// Полуинтервалы: касание границ не блокирует
	assert.False(t, partial.Blocks("11:00", "12:00"))
	assert.False(t, partial.Blocks("14:00", "15:00"))

	allDay := &TimeBlocker{}
	assert.True(t, allDay.IsAllDay())
	assert.True(t, allDay.Blocks("09:00", "09:30"))
}

func TestDatesBetween(t *testing.T) {
	dates := DatesBetween(day(10), day(12))
	require.Len(t, dates, 3)
	assert.Equal(t, day(10), dates[0])
	assert.Equal(t, day(12), dates[2])

	dates = DatesBetween(day(10), day(10))
	require.Len(t, dates, 1)

	dates = DatesBetween(day(12), day(10))
	assert.Empty(t, dates)
}
