package quest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"shadowWisper/clients/gcp"
	"shadowWisper/utils"
)

const collection = "quests"

type Service interface {
	Create(ctx context.Context, userID string, quest *Quest) (*Quest, error)
	Get(ctx context.Context, questID string) (*Quest, error)
	// GetAll returns every quest, newest first. Visibility filtering happens
	// locally on top of this list.
	GetAll(ctx context.Context) ([]Quest, error)
	// GetVisible returns the quests the user may see, narrowed by the filter.
	GetVisible(ctx context.Context, userID string, characterIDs []string, f Filter) ([]Quest, error)
	Update(ctx context.Context, questID string, update Update) error
	Delete(ctx context.Context, questID string) error
	// AssignCharacters replaces the quest's assignment list. Duplicate ids
	// are dropped before the write, first occurrence wins.
	AssignCharacters(ctx context.Context, questID string, characterIDs []string) error
	// AddImage uploads JPEG bytes for the quest and appends the resulting
	// public URL to the quest's image list. Upload and field write are
	// separate operations, not a transaction.
	AddImage(ctx context.Context, questID string, image io.Reader) (string, error)
}

type service struct {
	db       *firestore.Client
	uploader *gcp.Uploader
}

var _ Service = (*service)(nil)

func NewService(db *firestore.Client, uploader *gcp.Uploader) Service {
	return &service{
		db:       db,
		uploader: uploader,
	}
}

func (s *service) Create(ctx context.Context, userID string, quest *Quest) (*Quest, error) {
	if quest == nil {
		return nil, errors.New("quest is nil")
	}
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	if quest.Status == "" {
		quest.Status = StatusOpen
	}
	if !quest.Status.Valid() {
		return nil, fmt.Errorf("invalid status %q", quest.Status)
	}

	quest.UserID = userID
	quest.CreatedAt = time.Now()
	quest.AssignedCharacterIDs = utils.DedupStrings(quest.AssignedCharacterIDs)

	ref := s.db.Collection(collection).NewDoc()
	quest.ID = ref.ID
	if _, err := ref.Set(ctx, quest); err != nil {
		return nil, fmt.Errorf("failed to create quest: %w", err)
	}
	return quest, nil
}

func (s *service) Get(ctx context.Context, questID string) (*Quest, error) {
	iter := s.db.Collection(collection).
		Where("id", "==", questID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, NotFound
	}
	if err != nil {
		return nil, err
	}
	q := &Quest{}
	if err := doc.DataTo(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *service) GetAll(ctx context.Context) ([]Quest, error) {
	docs, err := AllQuestsQuery(s.db).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return utils.GetAllToStructs[Quest](docs)
}

func (s *service) GetVisible(ctx context.Context, userID string, characterIDs []string, f Filter) ([]Quest, error) {
	quests, err := s.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quests: %w", err)
	}
	return Apply(quests, userID, characterIDs, f), nil
}

func (s *service) Update(ctx context.Context, questID string, update Update) error {
	if !update.Status.Valid() {
		return fmt.Errorf("invalid status %q", update.Status)
	}
	_, err := s.db.Collection(collection).Doc(questID).
		Set(ctx, utils.FirestoreMap(update), firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update quest: %w", err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, questID string) error {
	_, err := s.db.Collection(collection).Doc(questID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete quest: %w", err)
	}
	return nil
}

func (s *service) AssignCharacters(ctx context.Context, questID string, characterIDs []string) error {
	_, err := s.db.Collection(collection).Doc(questID).Set(ctx, map[string]any{
		"assignedCharacterIds": utils.DedupStrings(characterIDs),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to assign characters: %w", err)
	}
	return nil
}

func (s *service) AddImage(ctx context.Context, questID string, image io.Reader) (string, error) {
	objectName := fmt.Sprintf("images/quests/%s/%s.jpg", questID, uuid.NewString())
	url, err := s.uploader.UploadJPEG(ctx, objectName, image)
	if err != nil {
		return "", fmt.Errorf("failed to upload quest image: %w", err)
	}
	_, err = s.db.Collection(collection).Doc(questID).Update(ctx, []firestore.Update{
		{Path: "imageUrls", Value: firestore.ArrayUnion(url)},
	})
	if err != nil {
		return "", fmt.Errorf("image uploaded but quest update failed: %w", err)
	}
	return url, nil
}

// AllQuestsQuery is the remote query backing the quest-list stream.
func AllQuestsQuery(db *firestore.Client) firestore.Query {
	return db.Collection(collection).OrderBy("createdAt", firestore.Desc)
}
