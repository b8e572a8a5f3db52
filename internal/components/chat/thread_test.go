package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdigest/sdk/news"
)

func history() []news.ChatMessage {
	return []news.ChatMessage{
		{ThreadID: "t1", MessageID: "m1", Content: "hello", Author: news.AuthorAI},
		{ThreadID: "t1", MessageID: "m2", ParentMessageID: "m1", Content: "hi", Author: news.AuthorUser},
		{ThreadID: "t1", MessageID: "m3", ParentMessageID: "m2", Content: "how can I help", Author: news.AuthorAI},
	}
}

func TestNewThreadMarksHistory(t *testing.T) {
	th := NewThread(history())
	for _, msg := range th.Messages() {
		assert.True(t, msg.IsInitData)
	}
	assert.Equal(t, "t1", th.ThreadID())
	assert.Equal(t, "m3", th.LastMessageID())
}

func TestSubmitChainsParent(t *testing.T) {
	th := NewThread(history())
	msg, ok := th.Submit("sounds good")
	require.True(t, ok)

	assert.Equal(t, "m3", msg.ParentMessageID)
	assert.Equal(t, news.AuthorUser, msg.Author)
	assert.False(t, msg.IsInitData)
	assert.True(t, th.InFlight())
}

func TestSubmitRefusedWhileInFlight(t *testing.T) {
	th := NewThread(nil)
	_, ok := th.Submit("first")
	require.True(t, ok)

	_, ok = th.Submit("second")
	assert.False(t, ok)
	assert.Equal(t, 1, th.Len())
}

func TestSubmitRefusesBlank(t *testing.T) {
	th := NewThread(nil)
	_, ok := th.Submit("   ")
	assert.False(t, ok)
	assert.Equal(t, 0, th.Len())
}

func TestConfirmPatchesIDs(t *testing.T) {
	th := NewThread(nil)
	_, ok := th.Submit("question")
	require.True(t, ok)

	th.Confirm("srv-1", "thread-9")
	assert.False(t, th.InFlight())

	msgs := th.Messages()
	assert.Equal(t, "srv-1", msgs[0].MessageID)
	assert.Equal(t, "thread-9", msgs[0].ThreadID)
}

func TestRollbackRestoresExactState(t *testing.T) {
	th := NewThread(history())
	before := len(th.Messages())

	_, ok := th.Submit("doomed")
	require.True(t, ok)

	restored := th.Rollback()
	assert.Equal(t, "doomed", restored)
	assert.Equal(t, before, th.Len())
	assert.False(t, th.InFlight())
	assert.Equal(t, "m3", th.LastMessageID())

	// A new submission works again after rollback.
	_, ok = th.Submit("retry")
	assert.True(t, ok)
}

func TestAppendAIAfterConfirm(t *testing.T) {
	th := NewThread(nil)
	_, ok := th.Submit("question")
	require.True(t, ok)

	th.Confirm("u1", "t1")
	th.AppendAI(news.ChatMessage{ThreadID: "t1", MessageID: "a1", ParentMessageID: "u1",
		Content: "answer", Author: news.AuthorAI})

	assert.Equal(t, 2, th.Len())
	assert.Equal(t, "answer", th.LastAIContent())
	assert.Equal(t, "a1", th.LastMessageID())
}

func TestLastAIContentSkipsUserTail(t *testing.T) {
	th := NewThread(history())
	assert.Equal(t, "how can I help", th.LastAIContent())

	_, ok := th.Submit("user turn")
	require.True(t, ok)
	assert.Equal(t, "how can I help", th.LastAIContent())
}
