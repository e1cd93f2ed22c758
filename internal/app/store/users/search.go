package userstore

import (
	"context"
	"fmt"

	"github.com/dalemusser/tendadmin/internal/app/system/search"
	"github.com/dalemusser/tendadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fields searched by Search.
var (
	searchTextFields   = []string{"firstName", "lastName", "email", "userName"}
	searchNumberFields = []string{"totalNode", "userWallet.userBalance"}
)

// matchStages resolves each user's wallet and filters by term.
//
// userWallet is rewritten to the first of: the wallet owned by the user
// (wallets.userId == _id), the wallet it references (wallets._id ==
// userWallet), the embedded snapshot. A user with none of these loses the
// field, so balance matching and projection always see a wallet document.
func matchStages(term search.Term) mongo.Pipeline {
	firstOf := func(arr string) bson.D {
		return bson.D{{Key: "$arrayElemAt", Value: bson.A{arr, 0}}}
	}
	embedded := bson.D{{Key: "$cond", Value: bson.A{
		bson.D{{Key: "$eq", Value: bson.A{bson.D{{Key: "$type", Value: "$userWallet"}}, "object"}}},
		"$userWallet",
		"$$REMOVE",
	}}}

	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "wallets"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "userId"},
			{Key: "as", Value: "ownedWallet"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "wallets"},
			{Key: "localField", Value: "userWallet"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "referencedWallet"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "userWallet", Value: bson.D{{Key: "$ifNull", Value: bson.A{
				firstOf("$ownedWallet"),
				bson.D{{Key: "$ifNull", Value: bson.A{firstOf("$referencedWallet"), embedded}}},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "ownedWallet", Value: 0},
			{Key: "referencedWallet", Value: 0},
		}}},
		{{Key: "$match", Value: term.Filter(searchTextFields, searchNumberFields)}},
	}
}

// Search returns one page of users matching term, in _id order.
func (s *Store) Search(ctx context.Context, term search.Term, skip, limit int64) ([]models.User, error) {
	pipeline := append(matchStages(term),
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}
	return users, nil
}

// CountMatching returns how many users match term.
func (s *Store) CountMatching(ctx context.Context, term search.Term) (int64, error) {
	pipeline := append(matchStages(term), bson.D{{Key: "$count", Value: "n"}})

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("count search results: %w", err)
	}
	defer cur.Close(ctx)

	var out struct {
		N int64 `bson:"n"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&out); err != nil {
			return 0, fmt.Errorf("decode search count: %w", err)
		}
	}
	return out.N, cur.Err()
}
