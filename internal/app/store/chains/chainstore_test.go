package chainstore_test

import (
	"errors"
	"testing"

	chainstore "github.com/dalemusser/tendadmin/internal/app/store/chains"
	"github.com/dalemusser/tendadmin/internal/domain/models"
	"github.com/dalemusser/tendadmin/internal/testutil"
)

func TestStore_ListAndRootMembers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := chainstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateChain(ctx, "Gold", 100, 12)
	fixtures.CreateChain(ctx, "Silver", 50, 3)

	chains, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(chains) != 2 {
		t.Fatalf("len(chains) = %d, want 2", len(chains))
	}
	if chains[0].Name != "Gold" || chains[0].SeedAmount != 100 {
		t.Errorf("chains[0] = %+v", chains[0])
	}

	members, err := store.RootMembers(ctx, chains[0])
	if err != nil {
		t.Fatalf("RootMembers failed: %v", err)
	}
	if members != 12 {
		t.Errorf("RootMembers(Gold) = %d, want 12", members)
	}
}

func TestStore_List_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := chainstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	chains, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if chains == nil || len(chains) != 0 {
		t.Errorf("List on empty collection = %v, want empty slice", chains)
	}
}

func TestStore_RootMembers_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := chainstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	orphan := fixtures.CreateChain(ctx, "Orphan", 10, -1)

	if _, err := store.RootMembers(ctx, orphan); !errors.Is(err, chainstore.ErrRootNodeMissing) {
		t.Errorf("RootMembers(orphan) error = %v, want ErrRootNodeMissing", err)
	}

	noRef := models.Chain{Name: "NoRef", SeedAmount: 5}
	if _, err := store.RootMembers(ctx, noRef); !errors.Is(err, chainstore.ErrRootNodeMissing) {
		t.Errorf("RootMembers(no ref) error = %v, want ErrRootNodeMissing", err)
	}
}
