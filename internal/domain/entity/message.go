package entity

import "time"

type MessageKind string

const (
	KindText  MessageKind = "text"
	KindImage MessageKind = "image"
	KindAudio MessageKind = "audio"
)

func ValidMessageKind(k MessageKind) bool {
	switch k {
	case KindText, KindImage, KindAudio:
		return true
	}
	return false
}

// RequiresMedia reports whether the kind must carry a media URL.
func (k MessageKind) RequiresMedia() bool {
	return k == KindImage || k == KindAudio
}

// Message is a single message between two actors, optionally attached to a
// service request. Read flips from false to true exactly once, when the
// receiver retrieves the conversation; nothing else mutates after creation.
type Message struct {
	ID         string      `json:"id" firestore:"id"`
	RequestID  string      `json:"request_id,omitempty" firestore:"requestId,omitempty"`
	SenderID   string      `json:"sender_id" firestore:"senderId"`
	ReceiverID string      `json:"receiver_id" firestore:"receiverId"`
	Content    string      `json:"content" firestore:"content"`
	Kind       MessageKind `json:"kind" firestore:"kind"`
	MediaURL   string      `json:"media_url,omitempty" firestore:"mediaUrl,omitempty"`
	Read       bool        `json:"read" firestore:"read"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// Counterparty returns the other party from the given actor's point of view.
func (m *Message) Counterparty(actorID string) string {
	if m.SenderID == actorID {
		return m.ReceiverID
	}
	return m.SenderID
}
