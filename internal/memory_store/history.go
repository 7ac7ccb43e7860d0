package memory_store

import (
	"github.com/mwhitfield/sentiment_chatbot/internal/sentiment"
)

// Entry is one completed exchange. Entries are immutable once appended.
type Entry struct {
	UserText  string
	BotText   string
	Sentiment sentiment.Label
}

// History is the append-only sequence of exchanges for one session.
type History struct {
	entries []Entry
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// Append records a completed exchange.
func (h *History) Append(entry Entry) {
	h.entries = append(h.entries, entry)
}

// Len returns the number of recorded exchanges.
func (h *History) Len() int { return len(h.entries) }

// Last returns up to n most recent entries, oldest first.
func (h *History) Last(n int) []Entry {
	if n <= 0 || len(h.entries) == 0 {
		return nil
	}
	if n > len(h.entries) {
		n = len(h.entries)
	}
	return h.entries[len(h.entries)-n:]
}

// All returns every entry, oldest first. The returned slice is shared;
// callers must not mutate it.
func (h *History) All() []Entry { return h.entries }

// UserMessages returns all user texts, oldest first.
func (h *History) UserMessages() []string {
	messages := make([]string, len(h.entries))
	for i, entry := range h.entries {
		messages[i] = entry.UserText
	}
	return messages
}

// SentimentLabels returns the per-message labels, oldest first.
func (h *History) SentimentLabels() []sentiment.Label {
	labels := make([]sentiment.Label, len(h.entries))
	for i, entry := range h.entries {
		labels[i] = entry.Sentiment
	}
	return labels
}
