package auditlog_test

import (
	"testing"

	"github.com/dalemusser/tendadmin/internal/app/store/audit"
	"github.com/dalemusser/tendadmin/internal/app/system/auditlog"
	"github.com/dalemusser/tendadmin/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_NilLogger(t *testing.T) {
	var logger *auditlog.Logger
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger.Log(ctx, audit.Event{EventType: "test"})
	logger.UserSoftDeleted(ctx, "req", primitive.NewObjectID())
	logger.UserStatusChanged(ctx, "req", primitive.NewObjectID(), "a", "b")
}

func TestLogger_ConfigOff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{Admin: auditlog.ModeOff})
	userID := primitive.NewObjectID()
	logger.UserSoftDeleted(ctx, "req-1", userID)

	events := testutil.NewFixtures(t, db).AuditEvents(ctx, bson.M{"user_id": userID})
	if len(events) != 0 {
		t.Errorf("expected no events when config is off, got %d", len(events))
	}
}

func TestLogger_ConfigDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	core, logs := observer.New(zap.InfoLevel)
	logger := auditlog.New(store, zap.New(core), auditlog.Config{Admin: auditlog.ModeDB})

	userID := primitive.NewObjectID()
	logger.UserStatusChanged(ctx, "req-2", userID, "active", "blocked")

	events := testutil.NewFixtures(t, db).AuditEvents(ctx, bson.M{"user_id": userID})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.EventType != audit.EventUserStatusChanged {
		t.Errorf("EventType = %q", ev.EventType)
	}
	if ev.Details["old_status"] != "active" || ev.Details["new_status"] != "blocked" {
		t.Errorf("Details = %v", ev.Details)
	}
	if ev.RequestID != "req-2" {
		t.Errorf("RequestID = %q, want req-2", ev.RequestID)
	}
	if logs.Len() != 0 {
		t.Errorf("db mode should not write zap entries, got %d", logs.Len())
	}
}

func TestLogger_ConfigLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := auditlog.New(nil, zap.New(core), auditlog.Config{Admin: auditlog.ModeLog})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	logger.UserSoftDeleted(ctx, "req-3", userID)

	entries := logs.FilterMessage("audit event").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["event_type"] != audit.EventUserSoftDeleted {
		t.Errorf("event_type = %v", fields["event_type"])
	}
	if fields["user_id"] != userID.Hex() {
		t.Errorf("user_id = %v, want %s", fields["user_id"], userID.Hex())
	}
	if fields["request_id"] != "req-3" {
		t.Errorf("request_id = %v", fields["request_id"])
	}
}
