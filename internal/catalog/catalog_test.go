package catalog

import (
	"testing"

	"emojihub/internal/model"
)

func sample() []model.Emoji {
	return []model.Emoji{
		{Name: "Grinning Face", Category: "face-smiling", Group: "smileys"},
		{Name: "Red Heart", Category: "other", Group: "symbols"},
		{Name: "Thumbs Up", Category: "hand", Group: "people"},
	}
}

func names(list []model.Emoji) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Name
	}
	return out
}

func equalNames(t *testing.T, got []model.Emoji, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("expected %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, g)
		}
	}
}

func TestCatalogScenario(t *testing.T) {
	c := New()
	c.SetEmojis(sample())
	equalNames(t, c.Visible(), "Grinning Face", "Red Heart", "Thumbs Up")

	c.SetQuery("heart")
	equalNames(t, c.Visible(), "Red Heart")

	c.SetQuery("")
	c.SetCategory("hand")
	equalNames(t, c.Visible(), "Thumbs Up")

	c.ClearFilters()
	equalNames(t, c.Visible(), "Grinning Face", "Red Heart", "Thumbs Up")
	if !c.Criteria().IsNeutral() {
		t.Fatalf("criteria not neutral after clear: %+v", c.Criteria())
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	got := Filter(sample(), model.Criteria{Query: "THUMB", Category: model.All, Group: model.All})
	equalNames(t, got, "Thumbs Up")
}

func TestFilterPredicatesAreANDed(t *testing.T) {
	got := Filter(sample(), model.Criteria{Query: "e", Category: "other", Group: "symbols"})
	equalNames(t, got, "Red Heart")

	got = Filter(sample(), model.Criteria{Query: "e", Category: "other", Group: "people"})
	if len(got) != 0 {
		t.Fatalf("expected no match, got %v", names(got))
	}
	if got == nil {
		t.Fatal("empty result should be non-nil")
	}
}

func TestFilterIdempotentAndOrdered(t *testing.T) {
	list := append(sample(), model.Emoji{Name: "Broken Heart", Category: "other", Group: "symbols"})
	criteria := []model.Criteria{
		model.NewCriteria(),
		{Query: "heart", Category: model.All, Group: model.All},
		{Query: "", Category: "other", Group: model.All},
		{Query: "u", Category: model.All, Group: "people"},
		{Query: "zzz", Category: model.All, Group: model.All},
	}
	for _, cr := range criteria {
		once := Filter(list, cr)
		twice := Filter(once, cr)
		equalNames(t, twice, names(once)...)

		// Order follows the input list.
		pos := map[string]int{}
		for i, e := range list {
			pos[e.Name] = i
		}
		for i := 1; i < len(once); i++ {
			if pos[once[i-1].Name] > pos[once[i].Name] {
				t.Fatalf("order not preserved for %+v: %v", cr, names(once))
			}
		}
		// Exactly the matching subset.
		for _, e := range list {
			match := Filter([]model.Emoji{e}, cr)
			found := false
			for _, o := range once {
				if o.Name == e.Name {
					found = true
				}
			}
			if (len(match) == 1) != found {
				t.Fatalf("subset mismatch for %q under %+v", e.Name, cr)
			}
		}
	}
}

func TestCycleCategory(t *testing.T) {
	c := New()
	c.SetEmojis(sample())
	c.SetOptions([]string{"face-smiling", "hand"}, nil)

	c.CycleCategory(1)
	if c.Criteria().Category != "face-smiling" {
		t.Fatalf("expected face-smiling, got %q", c.Criteria().Category)
	}
	c.CycleCategory(1)
	equalNames(t, c.Visible(), "Thumbs Up")
	c.CycleCategory(1)
	if c.Criteria().Category != model.All {
		t.Fatalf("expected wrap to all, got %q", c.Criteria().Category)
	}
	c.CycleCategory(-1)
	if c.Criteria().Category != "hand" {
		t.Fatalf("expected reverse wrap to hand, got %q", c.Criteria().Category)
	}
}

func TestCycleGroupWithoutOptions(t *testing.T) {
	c := New()
	c.CycleGroup(1)
	if c.Criteria().Group != model.All {
		t.Fatalf("no options should keep all, got %q", c.Criteria().Group)
	}
}

func TestSetEmojisRecomputes(t *testing.T) {
	c := New()
	c.SetQuery("heart")
	if len(c.Visible()) != 0 {
		t.Fatal("expected empty view before data arrives")
	}
	c.SetEmojis(sample())
	equalNames(t, c.Visible(), "Red Heart")
	if c.Total() != 3 {
		t.Fatalf("expected total 3, got %d", c.Total())
	}
}

func TestSummary(t *testing.T) {
	if got := Summary(1, 3); got != "Showing 1 of 3 emojis" {
		t.Fatalf("unexpected summary %q", got)
	}
}
