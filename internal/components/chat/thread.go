package chat

import (
	"strings"

	"newsdigest/sdk/news"
)

// Thread materializes a parent-pointer message chain as a flat list in
// root-to-leaf order. New turns are always appended at the tail, and at
// most one unconfirmed user message may exist at a time.
type Thread struct {
	messages []news.ChatMessage
	pending  bool
}

// NewThread seeds a thread from history. Every seeded message is marked as
// init data so it never gets the reveal effect.
func NewThread(history []news.ChatMessage) Thread {
	msgs := make([]news.ChatMessage, len(history))
	for i, m := range history {
		m.IsInitData = true
		msgs[i] = m
	}
	return Thread{messages: msgs}
}

// Messages returns the message list in root-to-leaf order.
func (t *Thread) Messages() []news.ChatMessage {
	return t.messages
}

// Len returns the number of messages.
func (t *Thread) Len() int {
	return len(t.messages)
}

// InFlight reports whether an unconfirmed user message is outstanding.
func (t *Thread) InFlight() bool {
	return t.pending
}

// ThreadID returns the thread ID, empty for a fresh thread.
func (t *Thread) ThreadID() string {
	if len(t.messages) == 0 {
		return ""
	}
	return t.messages[0].ThreadID
}

// LastMessageID returns the tail message's ID, empty for a fresh thread.
func (t *Thread) LastMessageID() string {
	if len(t.messages) == 0 {
		return ""
	}
	return t.messages[len(t.messages)-1].MessageID
}

// LastAIContent returns the content of the most recent AI message.
func (t *Thread) LastAIContent() string {
	for i := len(t.messages) - 1; i >= 0; i-- {
		if t.messages[i].Author == news.AuthorAI {
			return t.messages[i].Content
		}
	}
	return ""
}

// Submit appends an optimistic user message parented to the current tail.
// It refuses blank input and refuses while a submission is outstanding.
func (t *Thread) Submit(text string) (news.ChatMessage, bool) {
	if strings.TrimSpace(text) == "" || t.pending {
		return news.ChatMessage{}, false
	}
	msg := news.ChatMessage{
		ThreadID:        t.ThreadID(),
		ParentMessageID: t.LastMessageID(),
		Content:         text,
		Author:          news.AuthorUser,
	}
	t.messages = append(t.messages, msg)
	t.pending = true
	return msg, true
}

// Confirm patches the outstanding user message with its server-assigned IDs.
func (t *Thread) Confirm(messageID, threadID string) {
	if !t.pending || len(t.messages) == 0 {
		return
	}
	last := &t.messages[len(t.messages)-1]
	if messageID != "" {
		last.MessageID = messageID
	}
	if threadID != "" {
		last.ThreadID = threadID
	}
	t.pending = false
}

// AppendAI appends a confirmed AI reply at the tail.
func (t *Thread) AppendAI(msg news.ChatMessage) {
	t.messages = append(t.messages, msg)
}

// Rollback removes the outstanding user message and returns its content so
// the input can be restored. The list is left exactly as it was before the
// failed Submit.
func (t *Thread) Rollback() string {
	if !t.pending || len(t.messages) == 0 {
		return ""
	}
	content := t.messages[len(t.messages)-1].Content
	t.messages = t.messages[:len(t.messages)-1]
	t.pending = false
	return content
}
