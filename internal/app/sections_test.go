package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdigest/internal/components/sidebar"
	"newsdigest/sdk/news"
)

func snapshotWithPeriods() *news.InitSnapshot {
	return &news.InitSnapshot{
		Mode: news.ServerModeShowSummary,
		Periods: []news.SummaryPeriod{
			{ID: 7, StartDateTimestamp: 1787529600, EndDateTimestamp: 1788134400},
			{ID: 8, StartDateTimestamp: 1788134400, EndDateTimestamp: 1788739200},
		},
	}
}

func sidebarSelect(id string) sidebar.SelectMsg {
	return sidebar.SelectMsg{ID: id}
}

func selectedIDs(sections []sidebar.Section) []string {
	var ids []string
	for _, s := range sections {
		for _, it := range s.Items {
			if it.Selected {
				ids = append(ids, it.ID)
			}
		}
	}
	return ids
}

func TestSelectionDerivedFromMode(t *testing.T) {
	snap := snapshotWithPeriods()

	sections := buildSections(snap, ModeSummary, 0)
	assert.Equal(t, []string{actionSummary}, selectedIDs(sections))

	sections = buildSections(snap, ModeNewsResearch, 0)
	assert.Equal(t, []string{actionResearch}, selectedIDs(sections))

	sections = buildSections(snap, ModeEditPreference, 0)
	assert.Equal(t, []string{actionPreference}, selectedIDs(sections))

	sections = buildSections(snap, ModeCreatePreference, 0)
	assert.Equal(t, []string{actionPreference}, selectedIDs(sections))

	sections = buildSections(snap, ModeCollectRSSFeeds, 0)
	assert.Equal(t, []string{actionUploadFeeds}, selectedIDs(sections))
}

func TestPeriodSelectionExclusive(t *testing.T) {
	snap := snapshotWithPeriods()
	sections := buildSections(snap, ModeSummary, 8)

	// Exactly one row selected: the period, not the latest-summary row.
	assert.Equal(t, []string{periodPrefix + "8"}, selectedIDs(sections))
}

func TestPeriodSelectionIgnoredOutsideSummaryMode(t *testing.T) {
	snap := snapshotWithPeriods()
	sections := buildSections(snap, ModeNewsResearch, 8)
	assert.Equal(t, []string{actionResearch}, selectedIDs(sections))
}

func TestNilSnapshotOmitsPeriods(t *testing.T) {
	sections := buildSections(nil, ModeCollectRSSFeeds, 0)
	require.Len(t, sections, 1)
	assert.Equal(t, "Menu", sections[0].Title)
}

func TestPeriodIDParsing(t *testing.T) {
	assert.Equal(t, 8, periodID("period:8"))
	assert.Equal(t, 0, periodID("research"))
	assert.Equal(t, 0, periodID("period:x"))
}

func TestPeriodStartDate(t *testing.T) {
	p := news.SummaryPeriod{StartDateTimestamp: 1787529600}
	assert.Equal(t, "2026-08-24", periodStartDate(p))
}
