package favorites

import (
	"context"
	"path/filepath"
	"testing"

	"emojihub/internal/model"
)

func openTestSQLite(t *testing.T, path string) *SQLiteRepository {
	t.Helper()
	repo, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepositoryEmpty(t *testing.T) {
	repo := openTestSQLite(t, ":memory:")
	list, err := repo.Load(context.Background())
	if err != nil || len(list) != 0 {
		t.Fatalf("expected empty set, got %v (err %v)", list, err)
	}
}

func TestSQLiteRepositoryRoundTripAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "favorites.db")

	repo, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := repo.Save(ctx, []model.Emoji{redHeart}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, []model.Emoji{redHeart, thumbsUp}); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	repo.Close()

	reopened := openTestSQLite(t, path)
	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Red Heart" || got[1].Name != "Thumbs Up" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSQLiteRepositoryMalformedValue(t *testing.T) {
	ctx := context.Background()
	repo := openTestSQLite(t, ":memory:")
	_, err := repo.sqlDB.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)`, model.FavoritesKey, "{oops")
	if err != nil {
		t.Fatal(err)
	}
	list, err := repo.Load(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("expected empty set, got %v (err %v)", list, err)
	}
}

func TestSQLiteRepositoryBacksController(t *testing.T) {
	ctx := context.Background()
	repo := openTestSQLite(t, ":memory:")
	c := mount(t, repo)
	c.Toggle(ctx, thumbsUp)

	again := mount(t, repo)
	if !again.IsFavorite(thumbsUp) {
		t.Fatalf("expected persisted favorite, got %v", again.List())
	}
}

func TestSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}
