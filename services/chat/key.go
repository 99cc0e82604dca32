package chat

import (
	"sort"
	"strings"
	"time"

	"shadowWisper/set"
	"shadowWisper/utils"
)

const keySeparator = "|"

// SortedKey returns the canonical key for an unordered participant set:
// the ids deduplicated, sorted and joined. SortedKey([a,b]) ==
// SortedKey([b,a]) == SortedKey([a,a,b]).
func SortedKey(participants []string) string {
	ids := utils.DedupStrings(participants)
	sort.Strings(ids)
	return strings.Join(ids, keySeparator)
}

// NewMessage builds an unsent message. The sender has implicitly read their
// own message, so ReadBy starts with them.
func NewMessage(senderID, text string) *ChatMessage {
	return &ChatMessage{
		SenderID:  senderID,
		Text:      text,
		CreatedAt: time.Now(),
		ReadBy:    []string{senderID},
	}
}

// ReadByAll reports whether every participant has read the message.
func ReadByAll(msg ChatMessage, participants []string) bool {
	return set.FromSlice(msg.ReadBy).ContainsAll(participants)
}

// PendingReaders returns the participants that have not read the message
// yet, sorted for stable output.
func PendingReaders(msg ChatMessage, participants []string) []string {
	pending := set.FromSlice(participants).Difference(set.FromSlice(msg.ReadBy)).ToSlice()
	sort.Strings(pending)
	return pending
}

// Unread counts the messages the viewer has not read yet.
func Unread(messages []ChatMessage, viewerID string) int {
	count := 0
	for _, msg := range messages {
		if !set.FromSlice(msg.ReadBy).Contains(viewerID) {
			count++
		}
	}
	return count
}
