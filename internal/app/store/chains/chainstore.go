// internal/app/store/chains/chainstore.go
package chainstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/tendadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrRootNodeMissing is returned when a chain has no root reference or the
// referenced node does not exist in the chain's node collection.
var ErrRootNodeMissing = errors.New("chain root node missing")

// Store reads chain definitions and their per-chain node collections.
type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

// New creates a new chains Store.
func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("chains")}
}

// List returns every chain definition in _id order.
func (s *Store) List(ctx context.Context) ([]models.Chain, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find chains: %w", err)
	}
	defer cur.Close(ctx)

	chains := []models.Chain{}
	if err := cur.All(ctx, &chains); err != nil {
		return nil, fmt.Errorf("decode chains: %w", err)
	}
	return chains, nil
}

// RootMembers returns the totalMembers count of the chain's root node.
func (s *Store) RootMembers(ctx context.Context, chain models.Chain) (int64, error) {
	if chain.RootNode == nil {
		return 0, fmt.Errorf("%w: chain %q has no rootNode", ErrRootNodeMissing, chain.Name)
	}

	var node models.TreeNode
	err := s.db.Collection(models.TreeNodeCollection(chain.Name)).
		FindOne(ctx, bson.M{"_id": chain.RootNode}, options.FindOne().SetProjection(bson.M{"totalMembers": 1})).
		Decode(&node)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, fmt.Errorf("%w: chain %q", ErrRootNodeMissing, chain.Name)
		}
		return 0, fmt.Errorf("find root node of chain %q: %w", chain.Name, err)
	}
	return node.TotalMembers, nil
}
