package summary

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"newsdigest/sdk/news"
)

// 2026-08-26 is a Wednesday; its week starts Monday 2026-08-24.
var wednesday = time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC)

func TestCurrentWeekStart(t *testing.T) {
	assert.Equal(t, "2026-08-24", CurrentWeekStart(wednesday))

	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-24", CurrentWeekStart(monday))

	sunday := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-24", CurrentWeekStart(sunday))
}

func TestFilterStartDatesWeekly(t *testing.T) {
	all := []string{
		"2026-08-24", // current week, dropped
		"2026-08-17", // Monday, kept
		"2026-08-19", // Wednesday, dropped
		"2026-08-10", // Monday, kept
		"not-a-date", // dropped
	}
	got := FilterStartDates(all, news.PeriodWeekly, wednesday)
	assert.Equal(t, []string{CurrentWeekLabel, "2026-08-17", "2026-08-10"}, got)
}

func TestFilterStartDatesDaily(t *testing.T) {
	all := []string{"2026-08-26", "2026-08-25", "2026-08-24"}
	got := FilterStartDates(all, news.PeriodDaily, wednesday)
	assert.Equal(t, []string{TodayLabel, "2026-08-25", "2026-08-24"}, got)
}

func TestResolveStartDate(t *testing.T) {
	assert.Equal(t, "2026-08-24", ResolveStartDate(CurrentWeekLabel, wednesday))
	assert.Equal(t, "2026-08-26", ResolveStartDate(TodayLabel, wednesday))
	assert.Equal(t, "2026-08-17", ResolveStartDate("2026-08-17", wednesday))
}

// The sentinel must resolve with the clock at submit time, not at render
// time: a session crossing midnight picks up the new anchor.
func TestSentinelResolvesAtSubmitTime(t *testing.T) {
	var fetched []news.Selector
	m := New(func(seq int, sel news.Selector) tea.Cmd {
		fetched = append(fetched, sel)
		return nil
	}, nilExpand, nilFeedback)

	now := wednesday
	m.SetClock(func() time.Time { return now })
	m.Seed(nil, &news.SummaryOptions{
		Chunking:              news.ChunkingAggregateDaily,
		PreferenceApplication: news.ApplyPreference,
		PeriodType:            news.PeriodDaily,
	}, []string{"2026-08-25"})

	m, _ = m.submit()
	now = now.Add(24 * time.Hour)
	m, _ = m.submit()

	assert.Equal(t, "2026-08-26", fetched[0].StartDate)
	assert.Equal(t, "2026-08-27", fetched[1].StartDate)
}
