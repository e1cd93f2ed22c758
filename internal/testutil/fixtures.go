package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/dalemusser/tendadmin/internal/app/store/audit"
	"github.com/dalemusser/tendadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts u, assigning an ID when it has none.
func (f *Fixtures) CreateUser(ctx context.Context, u models.User) models.User {
	f.t.Helper()

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateUsers inserts n users named user01, user02, ... in ascending _id
// order and returns them in that order.
func (f *Fixtures) CreateUsers(ctx context.Context, n int) []models.User {
	f.t.Helper()

	users := make([]models.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, f.CreateUser(ctx, models.User{
			UserName:  fmt.Sprintf("user%02d", i),
			FirstName: fmt.Sprintf("First%02d", i),
			LastName:  "Tester",
			Email:     fmt.Sprintf("user%02d@example.com", i),
			TotalNode: int64(i),
			Status:    "active",
		}))
	}
	return users
}

// CreateWallet inserts a wallet document owned by userID.
func (f *Fixtures) CreateWallet(ctx context.Context, userID primitive.ObjectID, balance float64) models.Wallet {
	f.t.Helper()

	w := models.Wallet{
		ID:          primitive.NewObjectID(),
		UserID:      &userID,
		UserBalance: balance,
	}
	if _, err := f.db.Collection("wallets").InsertOne(ctx, w); err != nil {
		f.t.Fatalf("failed to create test wallet: %v", err)
	}
	return w
}

// CreateUnownedWallet inserts a wallet document with no userId, the target
// of a user whose userWallet is a reference.
func (f *Fixtures) CreateUnownedWallet(ctx context.Context, balance float64) models.Wallet {
	f.t.Helper()

	w := models.Wallet{ID: primitive.NewObjectID(), UserBalance: balance}
	if _, err := f.db.Collection("wallets").InsertOne(ctx, w); err != nil {
		f.t.Fatalf("failed to create test wallet: %v", err)
	}
	return w
}

// CreateChain inserts a chain and, when members is non-negative, its root
// node with that member count. A negative members leaves the root missing.
func (f *Fixtures) CreateChain(ctx context.Context, name string, seedAmount float64, members int64) models.Chain {
	f.t.Helper()

	rootID := primitive.NewObjectID()
	c := models.Chain{
		ID:         primitive.NewObjectID(),
		Name:       name,
		SeedAmount: seedAmount,
		RootNode:   rootID,
	}
	if _, err := f.db.Collection("chains").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test chain: %v", err)
	}
	if members >= 0 {
		node := models.TreeNode{ID: rootID, TotalMembers: members}
		if _, err := f.db.Collection(models.TreeNodeCollection(name)).InsertOne(ctx, node); err != nil {
			f.t.Fatalf("failed to create test root node: %v", err)
		}
	}
	return c
}

// AuditEvents returns the audit events matching filter, newest first.
func (f *Fixtures) AuditEvents(ctx context.Context, filter bson.M) []audit.Event {
	f.t.Helper()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := f.db.Collection("audit_events").Find(ctx, filter, opts)
	if err != nil {
		f.t.Fatalf("failed to query audit events: %v", err)
	}
	defer cur.Close(ctx)

	var events []audit.Event
	if err := cur.All(ctx, &events); err != nil {
		f.t.Fatalf("failed to decode audit events: %v", err)
	}
	return events
}
