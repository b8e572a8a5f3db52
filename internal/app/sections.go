package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"newsdigest/internal/components/sidebar"
	"newsdigest/sdk/news"
)

// Sidebar action IDs. Period rows use the "period:<id>" form.
const (
	actionSummary     = "summary"
	actionPreference  = "preference"
	actionResearch    = "research"
	actionUploadFeeds = "upload_rss"

	periodPrefix = "period:"
)

// buildSections derives the whole sidebar from the snapshot, the current
// mode and the selected period. Selection is recomputed here on every
// rebuild; no row remembers being selected.
func buildSections(snapshot *news.InitSnapshot, mode Mode, selectedPeriodID int) []sidebar.Section {
	menu := sidebar.Section{
		Title: "Menu",
		Items: []sidebar.Item{
			{
				Label:    "Latest summary",
				ID:       actionSummary,
				Selected: mode == ModeSummary && selectedPeriodID == 0,
			},
			{
				Label:    "News preference",
				ID:       actionPreference,
				Selected: mode == ModeCreatePreference || mode == ModeEditPreference,
			},
			{
				Label:    "News research",
				ID:       actionResearch,
				Selected: mode == ModeNewsResearch,
			},
			{
				Label:    "RSS feeds",
				ID:       actionUploadFeeds,
				Selected: mode == ModeCollectRSSFeeds,
			},
		},
	}

	sections := []sidebar.Section{menu}
	if snapshot == nil || len(snapshot.Periods) == 0 {
		return sections
	}

	past := sidebar.Section{Title: "Past summaries"}
	for _, p := range snapshot.Periods {
		past.Items = append(past.Items, sidebar.Item{
			Label:    periodLabel(p),
			ID:       periodPrefix + strconv.Itoa(p.ID),
			Selected: mode == ModeSummary && selectedPeriodID == p.ID,
		})
	}
	return append(sections, past)
}

func periodLabel(p news.SummaryPeriod) string {
	start := time.Unix(p.StartDateTimestamp, 0).UTC()
	end := time.Unix(p.EndDateTimestamp, 0).UTC()
	if start.Equal(end) || start.AddDate(0, 0, 1).After(end) {
		return start.Format("Jan 2, 2006")
	}
	return fmt.Sprintf("%s – %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}

// periodID parses a period row ID, returning 0 for non-period rows.
func periodID(id string) int {
	raw, ok := strings.CutPrefix(id, periodPrefix)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// periodStartDate returns the anchor date of a period as YYYY-MM-DD.
func periodStartDate(p news.SummaryPeriod) string {
	return time.Unix(p.StartDateTimestamp, 0).UTC().Format("2006-01-02")
}
