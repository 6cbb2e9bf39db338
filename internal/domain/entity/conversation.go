package entity

import "time"

// Conversation is a derived view, never persisted: the set of messages sharing
// a request ID, or (when no request is referenced) the same unordered pair of
// actors. The key is the request ID if present, otherwise the counterparty's
// ID from the viewing actor's point of view.
type Conversation struct {
	Key            string     `json:"key"`
	RequestID      string     `json:"request_id,omitempty"`
	CounterpartyID string     `json:"counterparty_id"`
	Messages       []*Message `json:"messages"`
	LastMessageAt  time.Time  `json:"last_message_at"`
	UnreadCount    int        `json:"unread_count"`
}
