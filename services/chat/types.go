package chat

import (
	"errors"
	"time"
)

var NotFound = errors.New("chat not found")

// Chat is one conversation thread between characters. ParticipantsSortedKey
// is the canonical form of the participant set and the only correct way to
// ask "does a chat between these characters already exist" — never compare
// participant lists order-sensitively.
type Chat struct {
	ID                    string    `json:"id" firestore:"id"`
	Participants          []string  `json:"participants" firestore:"participants"`
	ParticipantsSortedKey string    `json:"participantsSortedKey" firestore:"participantsSortedKey"`
	LastMessage           *string   `json:"lastMessage,omitempty" firestore:"lastMessage"`
	UpdatedAt             time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ChatMessage lives in the messages subcollection of its chat. ReadBy only
// ever grows; the sender is a member from the moment the message exists.
type ChatMessage struct {
	ID        string    `json:"id" firestore:"id"`
	SenderID  string    `json:"senderId" firestore:"senderId"`
	Text      string    `json:"text" firestore:"text"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	ReadBy    []string  `json:"readBy" firestore:"readBy"`
}
