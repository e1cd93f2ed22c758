// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/tendadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no user has the requested id.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidID is returned when an id is not a 24-character hex ObjectID.
	ErrInvalidID = errors.New("invalid user id")
)

// Store provides access to the users collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new users Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// ParseID converts a path identifier to the store's ObjectID.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q", ErrInvalidID, s)
	}
	return id, nil
}

// Count returns the number of user documents, deleted ones included.
func (s *Store) Count(ctx context.Context) (int64, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// List returns up to limit users after skipping skip, in _id order.
func (s *Store) List(ctx context.Context, skip, limit int64) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// GetByID loads a user by ObjectID. Returns ErrNotFound if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", id.Hex(), err)
	}
	return &u, nil
}

// SoftDelete flags the user as deleted. The document stays in place and
// repeating the call is harmless.
func (s *Store) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	return s.set(ctx, id, bson.M{"isDeleted": true})
}

// SetStatus overwrites the user's status field.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return s.set(ctx, id, bson.M{"status": status})
}

func (s *Store) set(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update user %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
