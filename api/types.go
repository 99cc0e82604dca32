package api

import "time"

type CreateCharacterRequest struct {
	Name        string         `json:"name" binding:"required"`
	Attributes  map[string]int `json:"attributes"`
	SkillPoints map[string]int `json:"skillPoints"`
	Equipment   []string       `json:"equipment"`
	Backstory   string         `json:"backstory"`
	Metatype    *string        `json:"metatype"`
	Gender      *string        `json:"gender"`
	Karma       *int           `json:"karma"`
	Essence     *float64       `json:"essence"`
}

type UpdateCharacterRequest struct {
	Name        string         `json:"name" binding:"required"`
	Attributes  map[string]int `json:"attributes"`
	SkillPoints map[string]int `json:"skillPoints"`
	Equipment   []string       `json:"equipment"`
	Backstory   string         `json:"backstory"`
	Metatype    *string        `json:"metatype"`
	Gender      *string        `json:"gender"`
	Karma       *int           `json:"karma"`
	Essence     *float64       `json:"essence"`
}

type CreateQuestRequest struct {
	Title                string   `json:"title" binding:"required"`
	Description          string   `json:"description"`
	Status               string   `json:"status"`
	Reward               *string  `json:"reward"`
	CreatorDisplayName   *string  `json:"creatorDisplayName"`
	AssignedCharacterIDs []string `json:"assignedCharacterIds"`
	Location             *string  `json:"location"`
	PersonalNotes        *string  `json:"personalNotes"`
}

type UpdateQuestRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Status        string  `json:"status" binding:"required"`
	Reward        *string `json:"reward"`
	Location      *string `json:"location"`
	PersonalNotes *string `json:"personalNotes"`
}

type AssignCharactersRequest struct {
	CharacterIDs []string `json:"characterIds" binding:"required"`
}

type CreateChatRequest struct {
	CreatorCharacterID string   `json:"creatorCharacterId" binding:"required"`
	Participants       []string `json:"participants" binding:"required"`
	InitialMessage     string   `json:"initialMessage"`
}

type SendMessageRequest struct {
	SenderID string `json:"senderId" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

type MarkReadRequest struct {
	ViewerCharacterID string `json:"viewerCharacterId" binding:"required"`
}

// MessageView is a message enriched with its read-receipt state relative to
// the chat's participant set.
type MessageView struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"senderId"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"createdAt"`
	ReadBy         []string  `json:"readBy"`
	ReadByAll      bool      `json:"readByAll"`
	PendingReaders []string  `json:"pendingReaders,omitempty"`
}

type MessagesResponse struct {
	Messages []MessageView `json:"messages"`
	// Unread is only populated when the caller passes viewerId.
	Unread int `json:"unread"`
}

type CreateProfileRequest struct {
	DisplayName string     `json:"displayName" binding:"required"`
	BirthDate   *time.Time `json:"birthDate"`
	Gender      *string    `json:"gender"`
	Profession  *string    `json:"profession"`
}

type UpdateProfileRequest struct {
	DisplayName string     `json:"displayName" binding:"required"`
	BirthDate   *time.Time `json:"birthDate"`
	Gender      *string    `json:"gender"`
	Profession  *string    `json:"profession"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type QuestListResponse struct {
	Mine     []QuestView `json:"mine"`
	Assigned []QuestView `json:"assigned"`
}

// QuestView mirrors quest.Quest for responses.
type QuestView struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	UserID               string    `json:"userId"`
	Reward               *string   `json:"reward,omitempty"`
	CreatorDisplayName   *string   `json:"creatorDisplayName,omitempty"`
	AssignedCharacterIDs []string  `json:"assignedCharacterIds,omitempty"`
	ImageURLs            []string  `json:"imageUrls,omitempty"`
	Location             *string   `json:"location,omitempty"`
	PersonalNotes        *string   `json:"personalNotes,omitempty"`
}
