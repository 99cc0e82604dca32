package character

import (
	"errors"
	"time"
)

var NotFound = errors.New("character not found")

type Character struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"userId" firestore:"userId"`
	Name   string `json:"name" firestore:"name"`

	Attributes  map[string]int `json:"attributes" firestore:"attributes"`
	SkillPoints map[string]int `json:"skillPoints" firestore:"skillPoints"`
	Equipment   []string       `json:"equipment" firestore:"equipment"`
	Backstory   string         `json:"backstory" firestore:"backstory"`

	Metatype *string  `json:"metatype,omitempty" firestore:"metatype"`
	Gender   *string  `json:"gender,omitempty" firestore:"gender"`
	Karma    *int     `json:"karma,omitempty" firestore:"karma"`
	Essence  *float64 `json:"essence,omitempty" firestore:"essence"`

	ImageURLs       []string `json:"imageUrls,omitempty" firestore:"imageUrls"`
	ProfileImageURL *string  `json:"profileImageUrl,omitempty" firestore:"profileImageUrl"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Update carries the caller-editable fields for a merge write. UserID is
// immutable after creation and the timestamps are stamped by the service, so
// none of them appear here.
type Update struct {
	Name        string         `firestore:"name"`
	Attributes  map[string]int `firestore:"attributes"`
	SkillPoints map[string]int `firestore:"skillPoints"`
	Equipment   []string       `firestore:"equipment"`
	Backstory   string         `firestore:"backstory"`
	Metatype    *string        `firestore:"metatype"`
	Gender      *string        `firestore:"gender"`
	Karma       *int           `firestore:"karma"`
	Essence     *float64       `firestore:"essence"`
}
