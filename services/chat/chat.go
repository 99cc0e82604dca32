package chat

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"shadowWisper/utils"
)

type Service interface {
	// CreateChat returns the chat for the given participant set, creating it
	// if none exists. Creation is idempotent for a fixed participant set:
	// repeated calls return the first chat and leave it untouched. Two
	// creators racing the same key can still both win; that race is
	// tolerated, not guarded.
	CreateChat(ctx context.Context, creatorID string, participants []string, initialMessage string) (*Chat, error)
	// Get returns the chat with the given id, or NotFound.
	Get(ctx context.Context, chatID string) (*Chat, error)
	ChatsForCharacter(ctx context.Context, characterID string) ([]Chat, error)
	// SendMessage appends the message, then refreshes the parent chat's
	// lastMessage/updatedAt summary. The two writes are not atomic; a failed
	// summary write leaves the message persisted and the summary stale.
	SendMessage(ctx context.Context, chatID string, senderID string, text string) (*ChatMessage, error)
	// MarkRead adds the viewer to the message's read set. Re-marking by the
	// same viewer is a no-op.
	MarkRead(ctx context.Context, chatID string, messageID string, viewerID string) error
	Messages(ctx context.Context, chatID string) ([]ChatMessage, error)
}

type service struct {
	store Store
}

var _ Service = (*service)(nil)

func NewService(store Store) Service {
	return &service{
		store: store,
	}
}

func (s *service) CreateChat(ctx context.Context, creatorID string, participants []string, initialMessage string) (*Chat, error) {
	if creatorID == "" {
		return nil, errors.New("creator id is required")
	}
	if len(participants) == 0 {
		return nil, errors.New("participants are required")
	}
	// The participant list is a set. Collapse duplicates before keying so
	// that [a, a, b] and [a, b] resolve to the same chat.
	participants = utils.DedupStrings(participants)
	if !slices.Contains(participants, creatorID) {
		participants = append(participants, creatorID)
	}

	key := SortedKey(participants)
	existing, err := s.store.FindByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to look up chat by key: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	created, err := s.store.Create(ctx, &Chat{
		Participants:          participants,
		ParticipantsSortedKey: key,
		UpdatedAt:             time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}

	if initialMessage != "" {
		if _, err := s.SendMessage(ctx, created.ID, creatorID, initialMessage); err != nil {
			return nil, fmt.Errorf("chat created but initial message failed: %w", err)
		}
		created.LastMessage = utils.ToPointer(initialMessage)
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, chatID string) (*Chat, error) {
	return s.store.Get(ctx, chatID)
}

func (s *service) ChatsForCharacter(ctx context.Context, characterID string) ([]Chat, error) {
	chats, err := s.store.ChatsFor(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chats: %w", err)
	}
	return chats, nil
}

func (s *service) SendMessage(ctx context.Context, chatID string, senderID string, text string) (*ChatMessage, error) {
	if text == "" {
		return nil, errors.New("message text is required")
	}
	msg, err := s.store.AddMessage(ctx, chatID, NewMessage(senderID, text))
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	if err := s.store.SetSummary(ctx, chatID, text, msg.CreatedAt); err != nil {
		log.Warn().
			Str("chat", chatID).
			Err(err).
			Msg("message persisted but chat summary update failed")
	}
	return msg, nil
}

func (s *service) MarkRead(ctx context.Context, chatID string, messageID string, viewerID string) error {
	if err := s.store.UnionRead(ctx, chatID, messageID, viewerID); err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}

func (s *service) Messages(ctx context.Context, chatID string) ([]ChatMessage, error) {
	messages, err := s.store.Messages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	return messages, nil
}
