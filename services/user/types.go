package user

import "time"

// FireUser is the profile record behind an authentication identity. Its
// document id equals the auth subject id, one-to-one.
type FireUser struct {
	ID           string    `json:"id" firestore:"id"`
	DisplayName  string    `json:"displayName" firestore:"displayName"`
	RegisteredOn time.Time `json:"registeredOn" firestore:"registeredOn"`

	BirthDate  *time.Time `json:"birthDate,omitempty" firestore:"birthDate"`
	Gender     *string    `json:"gender,omitempty" firestore:"gender"`
	Profession *string    `json:"profession,omitempty" firestore:"profession"`
}
