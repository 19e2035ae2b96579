// Package catalog derives the visible subset of emojis from the search
// criteria and holds the catalog screen's filter state.
package catalog

import (
	"fmt"
	"strings"

	"emojihub/internal/model"
)

// Filter returns the records of list matching every criterion, in list order.
// The result is never nil.
func Filter(list []model.Emoji, c model.Criteria) []model.Emoji {
	query := strings.ToLower(c.Query)
	category := c.CategoryFilter()
	group := c.GroupFilter()

	out := make([]model.Emoji, 0, len(list))
	for _, e := range list {
		if query != "" && !strings.Contains(strings.ToLower(e.Name), query) {
			continue
		}
		if category != model.All && e.Category != category {
			continue
		}
		if group != model.All && e.Group != group {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Summary is the "Showing N of M" line.
func Summary(visible, total int) string {
	return fmt.Sprintf("Showing %d of %d emojis", visible, total)
}
