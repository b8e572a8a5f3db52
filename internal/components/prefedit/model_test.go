package prefedit

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func newTestModel(saved *string) Model {
	return New(
		func() tea.Cmd { return nil },
		func(text string) tea.Cmd {
			if saved != nil {
				*saved = text
			}
			return nil
		},
	)
}

func ctrlS() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyCtrlS}
}

func TestLoadedFillsEditor(t *testing.T) {
	m := newTestModel(nil)
	m, _ = m.Update(LoadedMsg{Text: "tech and science"})
	assert.False(t, m.loading)
	assert.Equal(t, "tech and science", m.editor.Value())
}

func TestSaveRejectsEmpty(t *testing.T) {
	m := newTestModel(nil)
	m, _ = m.Update(LoadedMsg{Text: ""})
	m, _ = m.Update(ctrlS())
	assert.NotEmpty(t, m.errText)
	assert.False(t, m.saving)
}

func TestSaveSendsTrimmedText(t *testing.T) {
	var saved string
	m := newTestModel(&saved)
	m, _ = m.Update(LoadedMsg{Text: "  tech news  "})
	m, _ = m.Update(ctrlS())
	assert.True(t, m.saving)
	assert.Equal(t, "tech news", saved)
}

func TestSaveFailureKeepsText(t *testing.T) {
	m := newTestModel(nil)
	m, _ = m.Update(LoadedMsg{Text: "tech news"})
	m, _ = m.Update(ctrlS())
	m, _ = m.Update(SaveFailedMsg{Detail: "backend down"})

	assert.False(t, m.saving)
	assert.Equal(t, "backend down", m.errText)
	assert.Equal(t, "tech news", m.editor.Value())
}

func TestSavedShowsNotice(t *testing.T) {
	m := newTestModel(nil)
	m, _ = m.Update(LoadedMsg{Text: "tech news"})
	m, _ = m.Update(ctrlS())
	m, _ = m.Update(SavedMsg{})
	assert.False(t, m.saving)
	assert.Equal(t, "Preference saved", m.notice)
}

func TestInputBlockedWhileSaving(t *testing.T) {
	m := newTestModel(nil)
	m, _ = m.Update(LoadedMsg{Text: "tech news"})
	m, _ = m.Update(ctrlS())

	m, cmd := m.Update(ctrlS())
	assert.Nil(t, cmd)
	assert.True(t, m.saving)
}
