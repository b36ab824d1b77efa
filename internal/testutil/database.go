// Package testutil provides shared helpers for tests that need a database.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/Veraticus/buybox-master/internal/storage"
)

// TestDB is a migrated in-memory database seeded with identities.
type TestDB struct {
	Storage    *storage.SQLiteStorage
	t          *testing.T
	Identities model.IdentitySet
}

// SetupTestDB creates a migrated in-memory database holding identities.
// A nil set seeds the default identities. The database is closed on cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t, model.IdentitySet{"Acme Outlet"})
func SetupTestDB(t *testing.T, identities model.IdentitySet) *TestDB {
	t.Helper()

	if identities == nil {
		identities = model.DefaultIdentities.Clone()
	}

	store, err := storage.NewSQLiteStorage(storage.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if err := store.SaveIdentities(ctx, identities); err != nil {
		t.Fatalf("failed to seed identities: %v", err)
	}

	return &TestDB{
		Storage:    store,
		Identities: identities,
		t:          t,
	}
}

// MustSaveRun stores listings as a run created at createdAt and returns it.
func (db *TestDB) MustSaveRun(source string, createdAt time.Time, listings []model.Listing) *model.Run {
	db.t.Helper()

	run := &model.Run{
		CreatedAt: createdAt,
		Source:    source,
		Target:    model.TargetAll,
		RowCount:  len(listings),
	}
	if err := db.Storage.SaveRun(context.Background(), run, listings, nil); err != nil {
		db.t.Fatalf("failed to save run: %v", err)
	}
	return run
}
