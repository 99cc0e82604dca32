package chat

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shadowWisper/utils"
)

const (
	chatCollection       = "chats"
	messageSubCollection = "messages"
)

// Store is the raw document-store surface the chat service runs on.
type Store interface {
	// FindByKey returns the chat whose participantsSortedKey matches, or
	// (nil, nil) when none exists.
	FindByKey(ctx context.Context, key string) (*Chat, error)
	// Get returns the chat with the given document id, or NotFound.
	Get(ctx context.Context, chatID string) (*Chat, error)
	Create(ctx context.Context, chat *Chat) (*Chat, error)
	ChatsFor(ctx context.Context, characterID string) ([]Chat, error)
	AddMessage(ctx context.Context, chatID string, msg *ChatMessage) (*ChatMessage, error)
	// SetSummary merges the denormalized lastMessage/updatedAt pair onto the
	// parent chat document.
	SetSummary(ctx context.Context, chatID string, lastMessage string, updatedAt time.Time) error
	// UnionRead adds viewerID to the message's readBy set. Adding a viewer
	// that is already present leaves the set unchanged.
	UnionRead(ctx context.Context, chatID, messageID, viewerID string) error
	Messages(ctx context.Context, chatID string) ([]ChatMessage, error)
}

type firestoreStore struct {
	db *firestore.Client
}

var _ Store = (*firestoreStore)(nil)

func NewFirestoreStore(db *firestore.Client) Store {
	return &firestoreStore{db: db}
}

func (s *firestoreStore) FindByKey(ctx context.Context, key string) (*Chat, error) {
	iter := s.db.Collection(chatCollection).
		Where("participantsSortedKey", "==", key).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c := &Chat{}
	if err := doc.DataTo(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *firestoreStore) Get(ctx context.Context, chatID string) (*Chat, error) {
	doc, err := s.db.Collection(chatCollection).Doc(chatID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, NotFound
	}
	if err != nil {
		return nil, err
	}
	c := &Chat{}
	if err := doc.DataTo(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *firestoreStore) Create(ctx context.Context, chat *Chat) (*Chat, error) {
	ref := s.db.Collection(chatCollection).NewDoc()
	chat.ID = ref.ID
	if _, err := ref.Set(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

func (s *firestoreStore) ChatsFor(ctx context.Context, characterID string) ([]Chat, error) {
	docs, err := ChatsForCharacterQuery(s.db, characterID).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return utils.GetAllToStructs[Chat](docs)
}

func (s *firestoreStore) AddMessage(ctx context.Context, chatID string, msg *ChatMessage) (*ChatMessage, error) {
	ref := s.db.Collection(chatCollection).
		Doc(chatID).
		Collection(messageSubCollection).
		NewDoc()
	msg.ID = ref.ID
	if _, err := ref.Set(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *firestoreStore) SetSummary(ctx context.Context, chatID string, lastMessage string, updatedAt time.Time) error {
	_, err := s.db.Collection(chatCollection).Doc(chatID).Set(ctx, map[string]any{
		"lastMessage": lastMessage,
		"updatedAt":   updatedAt,
	}, firestore.MergeAll)
	return err
}

func (s *firestoreStore) UnionRead(ctx context.Context, chatID, messageID, viewerID string) error {
	_, err := s.db.Collection(chatCollection).
		Doc(chatID).
		Collection(messageSubCollection).
		Doc(messageID).
		Update(ctx, []firestore.Update{
			{Path: "readBy", Value: firestore.ArrayUnion(viewerID)},
		})
	return err
}

func (s *firestoreStore) Messages(ctx context.Context, chatID string) ([]ChatMessage, error) {
	docs, err := MessagesQuery(s.db, chatID).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return utils.GetAllToStructs[ChatMessage](docs)
}

// ChatsForCharacterQuery is the remote query backing the chat-list stream:
// every chat the character participates in, newest activity first.
func ChatsForCharacterQuery(db *firestore.Client, characterID string) firestore.Query {
	return db.Collection(chatCollection).
		Where("participants", "array-contains", characterID).
		OrderBy("updatedAt", firestore.Desc)
}

// MessagesQuery is the remote query backing a message-thread stream, in send
// order.
func MessagesQuery(db *firestore.Client, chatID string) firestore.Query {
	return db.Collection(chatCollection).
		Doc(chatID).
		Collection(messageSubCollection).
		OrderBy("createdAt", firestore.Asc)
}
