package summary

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdigest/sdk/news"
)

func sampleItems() []news.SummaryItem {
	return []news.SummaryItem{
		{ID: 4, Category: "World", Title: "w2", DisplayOrder: 5},
		{ID: 1, Category: "Tech", Title: "t1", DisplayOrder: 1},
		{ID: 3, Category: "World", Title: "w1", DisplayOrder: 3},
		{ID: 2, Category: "Tech", Title: "t2", DisplayOrder: 2},
	}
}

func TestCategorizeOrdering(t *testing.T) {
	cats := Categorize(sampleItems())
	require.Len(t, cats, 2)

	// Categories ordered by their smallest display order.
	assert.Equal(t, "Tech", cats[0].Name)
	assert.Equal(t, "World", cats[1].Name)

	// Items within a category ordered by display order.
	assert.Equal(t, "t1", cats[0].Items[0].Title)
	assert.Equal(t, "t2", cats[0].Items[1].Title)
	assert.Equal(t, "w1", cats[1].Items[0].Title)
	assert.Equal(t, "w2", cats[1].Items[1].Title)
}

func TestCategorizeEmpty(t *testing.T) {
	assert.Empty(t, Categorize(nil))
}

func TestExpandFetchedAtMostOnce(t *testing.T) {
	it := Item{SummaryItem: news.SummaryItem{ID: 1, Content: "short"}}

	// First click fetches.
	assert.Equal(t, actionFetch, it.toggle())
	assert.True(t, it.loading)

	// Clicks while loading do nothing.
	assert.Equal(t, actionNone, it.toggle())

	it.applyExpanded(news.SummaryItem{ID: 1, Content: "short", ExpandedContent: "long"})
	assert.True(t, it.expandedShown)
	assert.Equal(t, "long", it.ExpandedContent)

	// Afterwards toggling is purely local.
	assert.Equal(t, actionCollapsed, it.toggle())
	assert.False(t, it.expandedShown)
	assert.Equal(t, actionShown, it.toggle())
	assert.True(t, it.expandedShown)
	assert.Equal(t, "long", it.ExpandedContent)
}

func TestExpandFailureIsRetryable(t *testing.T) {
	it := Item{SummaryItem: news.SummaryItem{ID: 1}}

	require.Equal(t, actionFetch, it.toggle())
	it.expandFailed()
	assert.False(t, it.loading)
	assert.False(t, it.expandedShown)

	// The next click fetches again instead of showing stale state.
	assert.Equal(t, actionFetch, it.toggle())
}

func TestLoadedMsgReplacesListAndState(t *testing.T) {
	m := New(nilFetch, nilExpand, nilFeedback)
	m.Seed(sampleItems(), nil, nil)

	// Expand one item, then replace the list: expansion state must not
	// survive the replacement.
	it := m.itemByID(1)
	require.NotNil(t, it)
	require.Equal(t, actionFetch, it.toggle())
	it.applyExpanded(news.SummaryItem{ID: 1, ExpandedContent: "long"})

	sel := news.Selector{StartDate: "2026-08-17"}
	m, _ = m.Update(LoadedMsg{Selector: sel, Items: sampleItems()})

	fresh := m.itemByID(1)
	require.NotNil(t, fresh)
	assert.False(t, fresh.expandedShown)
	assert.False(t, fresh.expandRequested)
	require.NotNil(t, m.lastSelector)
	assert.Equal(t, "2026-08-17", m.lastSelector.StartDate)
}

func TestLoadedMsgEmptyClearsSelector(t *testing.T) {
	m := New(nilFetch, nilExpand, nilFeedback)
	m.Seed(sampleItems(), nil, nil)
	require.NotNil(t, m.lastSelector)

	m, _ = m.Update(LoadedMsg{Selector: news.Selector{StartDate: "2026-08-17"}})
	assert.Nil(t, m.lastSelector)
	assert.True(t, m.Empty())
}

// A reply from a superseded fetch must be dropped even when it lands after
// the newer fetch's reply: the list shows the last fetch issued, not the
// last reply to arrive.
func TestSupersededLoadReplyDropped(t *testing.T) {
	var seqs []int
	m := New(func(seq int, sel news.Selector) tea.Cmd {
		seqs = append(seqs, seq)
		return nil
	}, nilExpand, nilFeedback)

	first := news.Selector{StartDate: "2026-08-10"}
	second := news.Selector{StartDate: "2026-08-17"}
	m.Load(first)
	m.Load(second)
	require.Len(t, seqs, 2)

	m, _ = m.Update(LoadedMsg{Seq: seqs[1], Selector: second, Items: sampleItems()})
	m, _ = m.Update(LoadedMsg{Seq: seqs[0], Selector: first, Items: []news.SummaryItem{
		{ID: 99, Title: "old fetch", Category: "World"},
	}})

	require.NotNil(t, m.lastSelector)
	assert.Equal(t, "2026-08-17", m.lastSelector.StartDate)
	assert.Nil(t, m.itemByID(99))
	assert.False(t, m.fetching)
}

func TestSupersededLoadFailureDropped(t *testing.T) {
	var seqs []int
	m := New(func(seq int, sel news.Selector) tea.Cmd {
		seqs = append(seqs, seq)
		return nil
	}, nilExpand, nilFeedback)

	m.Load(news.Selector{StartDate: "2026-08-10"})
	m.Load(news.Selector{StartDate: "2026-08-17"})

	m, _ = m.Update(LoadFailedMsg{Seq: seqs[0], Detail: "timed out"})
	assert.True(t, m.fetching, "stale failure must not cancel the live fetch")
	assert.Empty(t, m.Err())

	m, _ = m.Update(LoadFailedMsg{Seq: seqs[1], Detail: "backend down"})
	assert.False(t, m.fetching)
	assert.Equal(t, "backend down", m.Err())
}

// A failed like/dislike surfaces its detail without touching fetch state:
// a load in flight keeps loading.
func TestFeedbackFailureLeavesFetchAlone(t *testing.T) {
	m := New(nilFetch, nilExpand, nilFeedback)
	m.Seed(sampleItems(), nil, nil)
	m.Load(news.Selector{StartDate: "2026-08-17"})
	require.True(t, m.fetching)

	m, _ = m.Update(FeedbackFailedMsg{Detail: "feedback rejected"})
	assert.True(t, m.fetching)
	assert.Equal(t, "feedback rejected", m.Err())
}

func TestExpandFailedMsgSurfacesDetail(t *testing.T) {
	m := New(nilFetch, nilExpand, nilFeedback)
	m.Seed(sampleItems(), nil, nil)

	it := m.itemByID(1)
	require.Equal(t, actionFetch, it.toggle())

	m, _ = m.Update(ExpandFailedMsg{ID: 1, Detail: "expansion unavailable"})
	assert.Equal(t, "expansion unavailable", m.Err())
	assert.False(t, m.itemByID(1).loading)
}

func nilFetch(int, news.Selector) tea.Cmd                     { return nil }
func nilExpand(int) tea.Cmd                                   { return nil }
func nilFeedback(news.Selector, news.LikeDislikeAction) tea.Cmd { return nil }
