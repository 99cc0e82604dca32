package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var NotFound = errors.New("user not found")

const collection = "users"

type Service interface {
	GetUser(ctx context.Context, ID string) (*FireUser, error)
	// CreateUser persists the profile under the auth subject id. The record's
	// lifecycle is tied to the account.
	CreateUser(ctx context.Context, user *FireUser) (*FireUser, error)
	UpdateUser(ctx context.Context, ID string, displayName string, birthDate *time.Time, gender, profession *string) error
	DeleteUser(ctx context.Context, ID string) error
}

type userService struct {
	db *firestore.Client
}

var _ Service = (*userService)(nil)

func NewUserService(client *firestore.Client) Service {
	return &userService{
		db: client,
	}
}

func (s *userService) GetUser(ctx context.Context, ID string) (*FireUser, error) {
	doc, err := s.db.Collection(collection).Doc(ID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, NotFound
	}
	if err != nil {
		return nil, err
	}
	user := &FireUser{}
	if err := doc.DataTo(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, user *FireUser) (*FireUser, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	if user.ID == "" {
		return nil, errors.New("user id is required")
	}

	user.RegisteredOn = time.Now()
	if _, err := s.db.Collection(collection).Doc(user.ID).Set(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, ID string, displayName string, birthDate *time.Time, gender, profession *string) error {
	_, err := s.db.Collection(collection).Doc(ID).Set(ctx, map[string]any{
		"displayName": displayName,
		"birthDate":   birthDate,
		"gender":      gender,
		"profession":  profession,
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, ID string) error {
	_, err := s.db.Collection(collection).Doc(ID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
