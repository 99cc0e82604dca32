package character

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

const collection = "characters"

type Service interface {
	Create(ctx context.Context, userID string, character *Character) (*Character, error)
	Get(ctx context.Context, characterID string) (*Character, error)
	// GetAllByUser returns the user's characters, newest first.
	GetAllByUser(ctx context.Context, userID string) ([]Character, error)
	// Update merges the editable fields and refreshes updatedAt. The owning
	// user never changes.
	Update(ctx context.Context, characterID string, update Update) error
	Delete(ctx context.Context, characterID string) error
	// AddImage uploads JPEG bytes and appends the public URL to the
	// character's image list. The upload and the field write are separate
	// operations, not a transaction.
	AddImage(ctx context.Context, characterID string, image io.Reader) (string, error)
	// SetProfileImage uploads JPEG bytes to the character's fixed profile
	// object and sets the profile URL field. Re-uploading overwrites the
	// previous profile image.
	SetProfileImage(ctx context.Context, characterID string, image io.Reader) (string, error)
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

func (s *service) Create(ctx context.Context, userID string, character *Character) (*Character, error) {
	if character == nil {
		return nil, errors.New("character is nil")
	}
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	now := time.Now()
	character.UserID = userID
	character.CreatedAt = now
	character.UpdatedAt = now

	ref := s.db.Collection(collection).NewDoc()
	character.ID = ref.ID
	if _, err := ref.Set(ctx, character); err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}
	return character, nil
}

func (s *service) Get(ctx context.Context, characterID string) (*Character, error) {
	iter := s.db.Collection(collection).
		Where("id", "==", characterID).
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
	c := &Character{}
	if err := doc.DataTo(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetAllByUser(ctx context.Context, userID string) ([]Character, error) {
	docs, err := ByUserQuery(s.db, userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	return utils.GetAllToStructs[Character](docs)
}

func (s *service) Update(ctx context.Context, characterID string, update Update) error {
	fields := utils.FirestoreMap(update)
	fields["updatedAt"] = time.Now()
	_, err := s.db.Collection(collection).Doc(characterID).
		Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, characterID string) error {
	_, err := s.db.Collection(collection).Doc(characterID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

func (s *service) AddImage(ctx context.Context, characterID string, image io.Reader) (string, error) {
	objectName := fmt.Sprintf("images/characters/%s/%s.jpg", characterID, uuid.NewString())
	url, err := s.uploader.UploadJPEG(ctx, objectName, image)
	if err != nil {
		return "", fmt.Errorf("failed to upload character image: %w", err)
	}
	_, err = s.db.Collection(collection).Doc(characterID).Update(ctx, []firestore.Update{
		{Path: "imageUrls", Value: firestore.ArrayUnion(url)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return "", fmt.Errorf("image uploaded but character update failed: %w", err)
	}
	return url, nil
}

func (s *service) SetProfileImage(ctx context.Context, characterID string, image io.Reader) (string, error) {
	objectName := fmt.Sprintf("images/characters/%s/profile.jpg", characterID)
	url, err := s.uploader.UploadJPEG(ctx, objectName, image)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}
	_, err = s.db.Collection(collection).Doc(characterID).Set(ctx, map[string]any{
		"profileImageUrl": url,
		"updatedAt":       time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return "", fmt.Errorf("image uploaded but character update failed: %w", err)
	}
	return url, nil
}

// ByUserQuery is the remote query backing a per-user character-list stream.
func ByUserQuery(db *firestore.Client, userID string) firestore.Query {
	return db.Collection(collection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
}
