package feeds

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdigest/sdk/news"
)

func newTestModel() Model {
	return New(
		func(string, bool) tea.Cmd { return nil },
		func() tea.Cmd { return nil },
		func(news.RSSFeed) tea.Cmd { return nil },
		func(int) tea.Cmd { return nil },
	)
}

func TestUploadRequiresSelection(t *testing.T) {
	m := newTestModel()
	m, _ = m.startUpload(false)
	assert.NotEmpty(t, m.uploadErr)
	assert.False(t, m.uploading)
}

func TestUploadRejectsNonOPML(t *testing.T) {
	m := newTestModel()
	m.selected = "/tmp/feeds.xml"
	m, _ = m.startUpload(false)
	assert.Equal(t, "Please select a valid .opml file", m.uploadErr)
	assert.False(t, m.uploading)
}

func TestUploadAcceptsOPML(t *testing.T) {
	m := newTestModel()
	m.selected = "/tmp/feeds.opml"
	m, cmd := m.startUpload(false)
	assert.Empty(t, m.uploadErr)
	assert.True(t, m.uploading)
	assert.NotNil(t, cmd)
}

func TestUseDefaultSkipsSelection(t *testing.T) {
	m := newTestModel()
	m, _ = m.startUpload(true)
	assert.Empty(t, m.uploadErr)
	assert.True(t, m.uploading)
}

func TestFormRequiresBothFields(t *testing.T) {
	m := newTestModel()
	m.titleInput.SetValue("Only title")
	m, _ = m.submitForm()
	assert.NotEmpty(t, m.addErr)

	m.urlInput.SetValue("https://example.com/rss")
	m, _ = m.submitForm()
	assert.Empty(t, m.addErr)
	assert.True(t, m.uploading)
}

func TestScopedErrorsAreIndependent(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(UploadFailedMsg{Detail: "bad opml"})
	m, _ = m.Update(DeleteFailedMsg{Detail: "feed in use"})
	m, _ = m.Update(LoadFailedMsg{Detail: "backend down"})

	assert.Equal(t, "bad opml", m.uploadErr)
	assert.Equal(t, "feed in use", m.deleteErr)
	assert.Equal(t, "backend down", m.fetchErr)
	assert.Empty(t, m.addErr)
}

func TestDeletedRemovesFeed(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(LoadedMsg{Feeds: []news.RSSFeed{
		{ID: 1, Title: "a"}, {ID: 2, Title: "b"}, {ID: 3, Title: "c"},
	}})
	m.listCursor = 2

	m, _ = m.Update(DeletedMsg{ID: 2})
	require.Len(t, m.feeds, 2)
	assert.Equal(t, 1, m.feeds[0].ID)
	assert.Equal(t, 3, m.feeds[1].ID)
	assert.Equal(t, 1, m.listCursor)
}

func TestSubscribedAppendsAndClearsForm(t *testing.T) {
	m := newTestModel()
	m.titleInput.SetValue("Example")
	m.urlInput.SetValue("https://example.com/rss")
	m, _ = m.submitForm()

	m, _ = m.Update(SubscribedMsg{Feed: news.RSSFeed{ID: 9, Title: "Example"}})
	require.Len(t, m.feeds, 1)
	assert.Equal(t, 9, m.feeds[0].ID)
	assert.Empty(t, m.titleInput.Value())
	assert.Empty(t, m.urlInput.Value())
	assert.False(t, m.uploading)
}

func TestUploadedReloadsList(t *testing.T) {
	called := false
	m := New(
		func(string, bool) tea.Cmd { return nil },
		func() tea.Cmd { called = true; return nil },
		func(news.RSSFeed) tea.Cmd { return nil },
		func(int) tea.Cmd { return nil },
	)
	m.uploading = true
	m, _ = m.Update(UploadedMsg{})
	assert.True(t, called)
	assert.False(t, m.uploading)
	assert.Empty(t, m.uploadErr)
}
