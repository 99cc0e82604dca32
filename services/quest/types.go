package quest

import (
	"errors"
	"time"
)

var NotFound = errors.New("quest not found")

// Status is the quest lifecycle state. Stored values are exactly open,
// in-progress and done; All exists only as a filter selector.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
	StatusAll        Status = "all"
)

// Valid reports whether s is a storable status. StatusAll is not.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Quest struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Status      Status    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UserID      string    `json:"userId" firestore:"userId"`

	Reward             *string  `json:"reward,omitempty" firestore:"reward"`
	CreatorDisplayName *string  `json:"creatorDisplayName,omitempty" firestore:"creatorDisplayName"`
	// AssignedCharacterIDs is deduplicated on write, never on read.
	AssignedCharacterIDs []string `json:"assignedCharacterIds,omitempty" firestore:"assignedCharacterIds"`
	ImageURLs            []string `json:"imageUrls,omitempty" firestore:"imageUrls"`
	Location             *string  `json:"location,omitempty" firestore:"location"`
	// PersonalNotes is a single field on the shared quest document even
	// though callers treat it as viewer-specific, so notes are visible to
	// every viewer. Kept as-is until the intended visibility is confirmed.
	PersonalNotes *string `json:"personalNotes,omitempty" firestore:"personalNotes"`
}

// Update carries the caller-editable fields for a merge write. Identity,
// ownership and timestamps are never part of an update.
type Update struct {
	Title         string  `firestore:"title"`
	Description   string  `firestore:"description"`
	Status        Status  `firestore:"status"`
	Reward        *string `firestore:"reward"`
	Location      *string `firestore:"location"`
	PersonalNotes *string `firestore:"personalNotes"`
}
