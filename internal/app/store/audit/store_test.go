package audit_test

import (
	"testing"
	"time"

	"github.com/dalemusser/tendadmin/internal/app/store/audit"
	"github.com/dalemusser/tendadmin/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Log(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	event := audit.Event{
		Category:  audit.CategoryAdmin,
		EventType: audit.EventUserSoftDeleted,
		UserID:    &userID,
		RequestID: "req-1",
		Success:   true,
		Details:   map[string]string{"k": "v"},
	}

	if err := store.Log(ctx, event); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events := fixtures.AuditEvents(ctx, bson.M{"user_id": userID})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	got := events[0]
	if got.RequestID != "req-1" || got.EventType != audit.EventUserSoftDeleted || !got.Success {
		t.Errorf("stored event = %+v", got)
	}
	if got.Details["k"] != "v" {
		t.Errorf("Details = %v", got.Details)
	}
}

func TestStore_Log_FillsIDAndTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before := time.Now().Add(-time.Second)
	if err := store.Log(ctx, audit.Event{Category: audit.CategoryAdmin, EventType: audit.EventUserStatusChanged}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events := fixtures.AuditEvents(ctx, bson.M{})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID.IsZero() {
		t.Error("expected ID to be auto-generated")
	}
	if events[0].Timestamp.Before(before) {
		t.Errorf("timestamp %v not set to now", events[0].Timestamp)
	}
}

func TestStore_Log_KeepsGivenTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := store.Log(ctx, audit.Event{Category: audit.CategoryAdmin, EventType: audit.EventUserStatusChanged, Timestamp: at}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events := fixtures.AuditEvents(ctx, bson.M{})
	if len(events) != 1 || !events[0].Timestamp.Equal(at) {
		t.Errorf("events = %+v, want one at %v", events, at)
	}
}
