package summary

import (
	"sort"

	"newsdigest/sdk/news"
)

// Item wraps a summary entry with its client-side expansion state. The
// triple (expandRequested, expandedShown, loading) is a small state
// machine: Collapsed -> Loading -> ExpandedShown on first expand, plain
// local toggling afterwards.
type Item struct {
	news.SummaryItem
	expandRequested bool
	expandedShown   bool
	loading         bool
}

// Category is a titled, ordered group of items.
type Category struct {
	Name  string
	Items []Item
}

// Categorize partitions items by category. Categories are ordered by the
// minimum display order among their members; items within a category by
// display order ascending. Called anew whenever the underlying list is
// replaced — expansion state never survives a replacement.
func Categorize(items []news.SummaryItem) []Category {
	byName := make(map[string][]Item)
	var order []string
	for _, item := range items {
		if _, seen := byName[item.Category]; !seen {
			order = append(order, item.Category)
		}
		byName[item.Category] = append(byName[item.Category], Item{SummaryItem: item})
	}

	categories := make([]Category, 0, len(order))
	for _, name := range order {
		group := byName[name]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].DisplayOrder < group[j].DisplayOrder
		})
		categories = append(categories, Category{Name: name, Items: group})
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Items[0].DisplayOrder < categories[j].Items[0].DisplayOrder
	})
	return categories
}

type itemAction int

const (
	actionNone itemAction = iota
	actionCollapsed
	actionShown
	actionFetch
)

// toggle advances the item's expansion state machine on a click. actionFetch
// means the caller must issue the expand request; everything else is local.
func (it *Item) toggle() itemAction {
	switch {
	case it.loading:
		return actionNone
	case it.expandedShown:
		it.expandedShown = false
		return actionCollapsed
	case it.expandRequested:
		it.expandedShown = true
		return actionShown
	default:
		it.loading = true
		return actionFetch
	}
}

// applyExpanded records a successful expand fetch. The expansion is fetched
// at most once per list generation; later toggles stay local.
func (it *Item) applyExpanded(full news.SummaryItem) {
	it.ExpandedContent = full.ExpandedContent
	if full.Content != "" {
		it.Content = full.Content
	}
	it.loading = false
	it.expandRequested = true
	it.expandedShown = true
}

// expandFailed returns the item to Collapsed. expandRequested stays false
// so the next click retries the fetch.
func (it *Item) expandFailed() {
	it.loading = false
	it.expandedShown = false
}
