package summary

import (
	"time"

	"newsdigest/sdk/news"
)

// Sentinel start-date labels. They resolve to the computed anchor date at
// submit time, never earlier.
const (
	CurrentWeekLabel = "Current Week"
	TodayLabel       = "Today"
)

const dateLayout = "2006-01-02"

// CurrentWeekStart returns the Monday of now's week as YYYY-MM-DD.
func CurrentWeekStart(now time.Time) string {
	offset := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		offset = 6
	}
	return now.AddDate(0, 0, -offset).Format(dateLayout)
}

// TodayStr returns now's date as YYYY-MM-DD.
func TodayStr(now time.Time) string {
	return now.Format(dateLayout)
}

// FilterStartDates narrows the server's available start dates by period
// type: weekly keeps only Mondays and drops the current week, daily drops
// today. The matching sentinel label is prepended as the first choice.
func FilterStartDates(all []string, period news.PeriodType, now time.Time) []string {
	switch period {
	case news.PeriodWeekly:
		currentWeek := CurrentWeekStart(now)
		choices := []string{CurrentWeekLabel}
		for _, date := range all {
			d, err := time.Parse(dateLayout, date)
			if err != nil {
				continue
			}
			if d.Weekday() == time.Monday && date != currentWeek {
				choices = append(choices, date)
			}
		}
		return choices
	case news.PeriodDaily:
		today := TodayStr(now)
		choices := []string{TodayLabel}
		for _, date := range all {
			if date != today {
				choices = append(choices, date)
			}
		}
		return choices
	default:
		return nil
	}
}

// ResolveStartDate maps a sentinel label to its anchor date; any other
// label is already a concrete date.
func ResolveStartDate(label string, now time.Time) string {
	switch label {
	case CurrentWeekLabel:
		return CurrentWeekStart(now)
	case TodayLabel:
		return TodayStr(now)
	default:
		return label
	}
}

var chunkingChoices = []news.ChunkingStrategy{
	news.ChunkingAggregateDaily,
	news.ChunkingEmbeddingClustering,
}

var preferenceChoices = []news.PreferenceApplication{
	news.ApplyPreference,
	news.NoPreference,
}

var periodChoices = []news.PeriodType{
	news.PeriodWeekly,
	news.PeriodDaily,
}

func chunkingLabel(c news.ChunkingStrategy) string {
	if c == news.ChunkingEmbeddingClustering {
		return "Cluster by Content"
	}
	return "Aggregate Daily"
}

func preferenceLabel(p news.PreferenceApplication) string {
	if p == news.NoPreference {
		return "No Preference"
	}
	return "Use Preference"
}

func periodLabel(p news.PeriodType) string {
	if p == news.PeriodDaily {
		return "Daily"
	}
	return "Weekly"
}
