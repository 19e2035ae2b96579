package model

// Version is the emojihub release version.
const Version = "0.3.0"

// FavoritesKey is the storage key under which the favorites array lives.
const FavoritesKey = "emojiFavorites"

// All is the criterion value that imposes no filter on its dimension.
const All = "all"

// Emoji is a single record as served by the emoji API.
type Emoji struct {
	Name     string   `json:"name"`     // Display label, also the identity
	Category string   `json:"category"` // e.g. "smileys and people"
	Group    string   `json:"group"`    // e.g. "face positive"
	HTMLCode []string `json:"htmlCode"` // e.g. ["&#128512;"]; only the first is used
	Unicode  []string `json:"unicode"`  // e.g. ["U+1F600"]
}

// Same reports whether two records share an identity.
func (e Emoji) Same(other Emoji) bool {
	return e.Name == other.Name
}

// Criteria parameterizes the catalog filter.
type Criteria struct {
	Query    string // Case-insensitive substring of Name; empty matches all
	Category string // Exact category, or All
	Group    string // Exact group, or All
}

// NewCriteria returns the neutral criteria.
func NewCriteria() Criteria {
	return Criteria{Category: All, Group: All}
}

// IsNeutral reports whether the criteria filter nothing out.
func (c Criteria) IsNeutral() bool {
	return c.Query == "" && c.category() == All && c.group() == All
}

// category treats the zero value like the sentinel.
func (c Criteria) category() string {
	if c.Category == "" {
		return All
	}
	return c.Category
}

func (c Criteria) group() string {
	if c.Group == "" {
		return All
	}
	return c.Group
}

// CategoryFilter returns the effective category criterion.
func (c Criteria) CategoryFilter() string { return c.category() }

// GroupFilter returns the effective group criterion.
func (c Criteria) GroupFilter() string { return c.group() }
