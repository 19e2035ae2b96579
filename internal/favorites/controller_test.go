package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"emojihub/internal/model"
)

var (
	redHeart = model.Emoji{Name: "Red Heart", Category: "other", HTMLCode: []string{"&#10084;"}}
	thumbsUp = model.Emoji{Name: "Thumbs Up", Category: "hand", HTMLCode: []string{"&#128077;"}}
)

func mount(t *testing.T, repo Repository) *Controller {
	t.Helper()
	c, err := New(context.Background(), repo)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func storedNames(t *testing.T, repo *MemoryRepository) []string {
	t.Helper()
	var list []model.Emoji
	if err := json.Unmarshal(repo.Raw(), &list); err != nil {
		t.Fatalf("stored favorites are not a JSON array: %v (%q)", err, repo.Raw())
	}
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Name
	}
	return out
}

func TestToggleScenario(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	c := mount(t, repo)

	added, err := c.Toggle(ctx, redHeart)
	if err != nil || !added {
		t.Fatalf("Toggle: added=%v err=%v", added, err)
	}
	if got := storedNames(t, repo); len(got) != 1 || got[0] != "Red Heart" {
		t.Fatalf("expected [Red Heart] persisted, got %v", got)
	}
	if !c.IsFavorite(model.Emoji{Name: "Red Heart"}) {
		t.Fatal("IsFavorite should match by name")
	}

	added, err = c.Toggle(ctx, redHeart)
	if err != nil || added {
		t.Fatalf("second Toggle: added=%v err=%v", added, err)
	}
	if got := storedNames(t, repo); len(got) != 0 {
		t.Fatalf("expected [] persisted, got %v", got)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty set, got %d", c.Len())
	}
}

func TestToggleIsSelfInverse(t *testing.T) {
	ctx := context.Background()
	c := mount(t, NewMemoryRepository())
	c.Toggle(ctx, thumbsUp)

	before := c.List()
	c.Toggle(ctx, redHeart)
	c.Toggle(ctx, redHeart)
	after := c.List()
	if len(before) != len(after) || after[0].Name != before[0].Name {
		t.Fatalf("expected %v, got %v", before, after)
	}
}

func TestUniqueByName(t *testing.T) {
	ctx := context.Background()
	c := mount(t, NewMemoryRepository())
	seq := []model.Emoji{redHeart, thumbsUp, {Name: "Red Heart", Category: "changed"}, thumbsUp, redHeart, thumbsUp}
	for _, e := range seq {
		if _, err := c.Toggle(ctx, e); err != nil {
			t.Fatal(err)
		}
		seen := map[string]bool{}
		for _, f := range c.List() {
			if seen[f.Name] {
				t.Fatalf("duplicate %q in %v", f.Name, c.List())
			}
			seen[f.Name] = true
		}
	}
}

func TestLoadDedupesStoredDuplicates(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SetRaw([]byte(`[{"name":"Red Heart","category":"first"},{"name":"Red Heart","category":"second"}]`))
	c := mount(t, repo)
	if c.Len() != 1 || c.List()[0].Category != "first" {
		t.Fatalf("expected first occurrence kept, got %+v", c.List())
	}
}

func TestMalformedStoreIsEmpty(t *testing.T) {
	for _, raw := range []string{"{not json", "null", `{"name":"x"}`, ""} {
		repo := NewMemoryRepository()
		repo.SetRaw([]byte(raw))
		c := mount(t, repo)
		if c.Len() != 0 {
			t.Fatalf("raw %q: expected empty set, got %v", raw, c.List())
		}
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	c := mount(t, repo)
	c.Toggle(ctx, redHeart)
	c.Toggle(ctx, thumbsUp)

	if err := c.Remove(ctx, redHeart); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := storedNames(t, repo); len(got) != 1 || got[0] != "Thumbs Up" {
		t.Fatalf("expected [Thumbs Up], got %v", got)
	}
	if err := c.Remove(ctx, redHeart); err != nil {
		t.Fatalf("Remove absent: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("removing an absent record changed the set: %v", c.List())
	}
}

func TestClearAllRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	c := mount(t, repo)
	c.Toggle(ctx, redHeart)
	c.Toggle(ctx, thumbsUp)

	if err := c.ClearAll(ctx, false); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
	if got := storedNames(t, repo); len(got) != 2 {
		t.Fatalf("unconfirmed clear changed the store: %v", got)
	}

	if err := c.ClearAll(ctx, true); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if string(repo.Raw()) != "[]" {
		t.Fatalf("expected persisted [], got %q", repo.Raw())
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty set, got %v", c.List())
	}
}

func TestSaveFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	c := mount(t, repo)
	c.Toggle(ctx, redHeart)

	repo.SaveErr = errors.New("quota exceeded")
	if _, err := c.Toggle(ctx, thumbsUp); err == nil {
		t.Fatal("expected save error")
	}
	if c.IsFavorite(thumbsUp) || c.Len() != 1 {
		t.Fatalf("failed mutation should be dropped, got %v", c.List())
	}
	if err := c.ClearAll(ctx, true); err == nil {
		t.Fatal("expected save error on clear")
	}
	if !c.IsFavorite(redHeart) {
		t.Fatal("failed clear should keep the set")
	}
}

func TestLastWriteWins(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	a := mount(t, repo)
	b := mount(t, repo)

	a.Toggle(ctx, redHeart)
	b.Toggle(ctx, thumbsUp)

	if got := storedNames(t, repo); len(got) != 1 || got[0] != "Thumbs Up" {
		t.Fatalf("expected last writer's view, got %v", got)
	}
	if err := a.Reload(ctx); err != nil {
		t.Fatal(err)
	}
	if a.IsFavorite(redHeart) || !a.IsFavorite(thumbsUp) {
		t.Fatalf("reload should pick up the stored set, got %v", a.List())
	}
}

func TestListIsACopy(t *testing.T) {
	ctx := context.Background()
	c := mount(t, NewMemoryRepository())
	c.Toggle(ctx, redHeart)
	l := c.List()
	l[0].Name = "mutated"
	if !c.IsFavorite(redHeart) {
		t.Fatal("List should not alias internal state")
	}
}

func TestOpenUnknownStore(t *testing.T) {
	if _, err := Open("cloud", ""); err == nil {
		t.Fatal("expected error for unknown store kind")
	}
}
