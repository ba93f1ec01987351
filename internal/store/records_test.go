package store

import (
	"context"
	"testing"

	"github.com/erazemk/evidenca/internal/db"
	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/registry"
)

func TestInsertGetReplaceAsset(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	assets := Assets{DB: database}

	missing, err := assets.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing asset")
	}

	oven := model.Asset{Name: "Commercial Oven", Category: "Cooking", Value: 5000, Condition: "New", Owner: "owner1", IsAvailable: true}
	if err := assets.Insert(ctx, 1, oven); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := assets.Insert(ctx, 1, oven); err == nil {
		t.Error("expected duplicate insert to fail")
	}

	got, _ := assets.Get(ctx, 1)
	oven.ID = 1
	if *got != oven {
		t.Errorf("expected %+v, got %+v", oven, *got)
	}

	next := model.Asset{Name: "Commercial Oven XL", Category: "Cooking", Value: 6000, Condition: "Like New", Owner: "intruder"}
	if err := assets.Replace(ctx, 1, next); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	got, _ = assets.Get(ctx, 1)
	if got.Name != "Commercial Oven XL" || got.IsAvailable {
		t.Errorf("replace not applied: %+v", got)
	}
	if got.Owner != "owner1" {
		t.Errorf("replace must not change the owner, got %q", got.Owner)
	}

	if err := assets.Replace(ctx, 2, next); err == nil {
		t.Error("expected replace of missing asset to fail")
	}
}

func TestAssetImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	InsertAsset(ctx, database, model.Asset{ID: 1, Name: "Photo Asset", Owner: "owner1"})

	data, _, err := GetAssetImage(ctx, database, 1)
	if err != nil {
		t.Fatalf("GetAssetImage: %v", err)
	}
	if data != nil {
		t.Error("expected no image initially")
	}

	SetAssetImage(ctx, database, 1, []byte("fake image data"), "image/jpeg")
	data, mime, _ := GetAssetImage(ctx, database, 1)
	if string(data) != "fake image data" || mime != "image/jpeg" {
		t.Errorf("unexpected image %q (%s)", data, mime)
	}

	// Replacing the record keeps the photo.
	ReplaceAsset(ctx, database, model.Asset{ID: 1, Name: "Renamed"})
	data, _, _ = GetAssetImage(ctx, database, 1)
	if data == nil {
		t.Error("expected image to survive replace")
	}
}

func TestInsertGetReplaceRestaurant(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	restaurants := Restaurants{DB: database}

	kitchen := model.Restaurant{Name: "Gourmet Kitchen", Address: "123 Main St", LicenseNumber: "LIC12345", Owner: "owner1"}
	if err := restaurants.Insert(ctx, 1, kitchen); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, _ := restaurants.Get(ctx, 1)
	kitchen.ID = 1
	if *got != kitchen {
		t.Errorf("expected %+v, got %+v", kitchen, *got)
	}

	kitchen.IsVerified = true
	if err := restaurants.Replace(ctx, 1, kitchen); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	got, _ = restaurants.Get(ctx, 1)
	if !got.IsVerified {
		t.Error("expected restaurant to be verified")
	}
}

func TestRegisterAllocatesPerKind(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	asset := func(int64) model.Asset { return model.Asset{Name: "Mixer", Owner: "owner1", IsAvailable: true} }
	for want := int64(1); want <= 3; want++ {
		got, err := RegisterAsset(ctx, database, asset)
		if err != nil {
			t.Fatalf("RegisterAsset: %v", err)
		}
		if got != want {
			t.Errorf("expected %d, got %d", want, got)
		}
	}

	// Sequences are independent.
	got, err := RegisterRestaurant(ctx, database, func(int64) model.Restaurant {
		return model.Restaurant{Name: "Tasty Kitchen", Owner: "owner1"}
	})
	if err != nil {
		t.Fatalf("RegisterRestaurant: %v", err)
	}
	if got != 1 {
		t.Errorf("expected restaurant sequence to start at 1, got %d", got)
	}

	a, _ := GetAsset(ctx, database, 3)
	if a == nil || a.ID != 3 || a.Name != "Mixer" {
		t.Errorf("unexpected asset 3: %+v", a)
	}
}

func TestFailedRegisterDoesNotConsumeID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// value has a non-negative CHECK constraint.
	_, err := RegisterAsset(ctx, database, func(int64) model.Asset {
		return model.Asset{Name: "Broken", Value: -1, Owner: "owner1"}
	})
	if err == nil {
		t.Fatal("expected constraint violation")
	}

	// A request cancelled between allocation and insert.
	cancelled, cancel := context.WithCancel(ctx)
	_, err = RegisterAsset(cancelled, database, func(int64) model.Asset {
		cancel()
		return model.Asset{Name: "Abandoned", Owner: "owner1"}
	})
	if err == nil {
		t.Fatal("expected error from cancelled registration")
	}

	id, err := RegisterAsset(ctx, database, func(int64) model.Asset {
		return model.Asset{Name: "Mixer", Owner: "owner1"}
	})
	if err != nil {
		t.Fatalf("RegisterAsset: %v", err)
	}
	if id != 1 {
		t.Errorf("first successful registration got id %d, want 1", id)
	}
	if a, _ := GetAsset(ctx, database, 1); a == nil || a.Name != "Mixer" {
		t.Errorf("unexpected asset 1: %+v", a)
	}
}

func TestJournalHistory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	j := Journal{DB: database}

	j.Append(ctx, model.KindAsset, 1, registry.ActionRegister, "owner1")
	j.Append(ctx, model.KindAsset, 1, registry.ActionUpdate, "owner1")
	j.Append(ctx, model.KindRestaurant, 1, registry.ActionRegister, "owner2")

	history, err := GetRecordHistory(ctx, database, model.KindAsset, 1)
	if err != nil {
		t.Fatalf("GetRecordHistory: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Action != "register" || history[1].Action != "update" {
		t.Errorf("unexpected order: %+v", history)
	}
}

// The registries keep their state across a restart when backed by SQLite.
func TestRegistryOverSQLiteSurvivesRestart(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	open := func() *registry.AssetRegistry {
		return registry.NewAssetRegistry(
			nil,
			Assets{DB: database},
			registry.Options{Journal: Journal{DB: database}},
		)
	}

	reg := open()
	in := model.AssetInput{Name: "Commercial Oven", Category: "Cooking", Value: 5000, Condition: "New"}
	id1, err := reg.Register(ctx, in, "owner1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	reg = open()
	id2, err := reg.Register(ctx, in, "owner1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id1 != 1 || id2 != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", id1, id2)
	}

	err = reg.Update(ctx, id1, model.AssetInput{Name: "Commercial Oven XL", Value: 6000}, "owner2")
	if registry.Code(err) != 403 {
		t.Fatalf("expected 403, got %v", err)
	}

	got, _ := reg.Get(ctx, id1)
	if got.Name != "Commercial Oven" || got.Owner != "owner1" || !got.IsAvailable {
		t.Errorf("unexpected asset after denied update: %+v", got)
	}

	history, _ := GetRecordHistory(ctx, database, model.KindAsset, id1)
	if len(history) != 1 {
		t.Errorf("denied update must not be journaled, got %d entries", len(history))
	}
}
