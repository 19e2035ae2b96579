package catalog

import (
	"emojihub/internal/model"
)

// Catalog is the filter state machine behind the catalog screen.
// Every setter recomputes the visible list before returning.
type Catalog struct {
	all        []model.Emoji
	categories []string
	groups     []string
	criteria   model.Criteria
	visible    []model.Emoji
}

// New returns an empty catalog with neutral criteria.
func New() *Catalog {
	c := &Catalog{criteria: model.NewCriteria()}
	c.refresh()
	return c
}

// SetEmojis replaces the full list.
func (c *Catalog) SetEmojis(list []model.Emoji) {
	c.all = list
	c.refresh()
}

// SetOptions replaces the category and group options.
func (c *Catalog) SetOptions(categories, groups []string) {
	c.categories = categories
	c.groups = groups
}

func (c *Catalog) SetQuery(q string) {
	c.criteria.Query = q
	c.refresh()
}

func (c *Catalog) SetCategory(category string) {
	if category == "" {
		category = model.All
	}
	c.criteria.Category = category
	c.refresh()
}

func (c *Catalog) SetGroup(group string) {
	if group == "" {
		group = model.All
	}
	c.criteria.Group = group
	c.refresh()
}

// SetCriteria replaces all three criteria at once.
func (c *Catalog) SetCriteria(cr model.Criteria) {
	c.criteria = model.Criteria{
		Query:    cr.Query,
		Category: cr.CategoryFilter(),
		Group:    cr.GroupFilter(),
	}
	c.refresh()
}

// ClearFilters resets the criteria to neutral in one step.
func (c *Catalog) ClearFilters() {
	c.criteria = model.NewCriteria()
	c.refresh()
}

// CycleCategory steps the category selection through All and the options.
func (c *Catalog) CycleCategory(delta int) {
	c.SetCategory(cycle(c.categories, c.criteria.Category, delta))
}

// CycleGroup steps the group selection through All and the options.
func (c *Catalog) CycleGroup(delta int) {
	c.SetGroup(cycle(c.groups, c.criteria.Group, delta))
}

func (c *Catalog) Criteria() model.Criteria { return c.criteria }
func (c *Catalog) Categories() []string     { return c.categories }
func (c *Catalog) Groups() []string         { return c.groups }
func (c *Catalog) Visible() []model.Emoji   { return c.visible }
func (c *Catalog) Total() int               { return len(c.all) }

// Find returns the record with the given name from the full list.
func (c *Catalog) Find(name string) (model.Emoji, bool) {
	for _, e := range c.all {
		if e.Name == name {
			return e, true
		}
	}
	return model.Emoji{}, false
}

func (c *Catalog) refresh() {
	c.visible = Filter(c.all, c.criteria)
}

// cycle treats the options as a ring prefixed by All. A current value that is
// not among the options restarts from All.
func cycle(options []string, current string, delta int) string {
	ring := append([]string{model.All}, options...)
	idx := 0
	for i, v := range ring {
		if v == current {
			idx = i
			break
		}
	}
	n := len(ring)
	idx = ((idx+delta)%n + n) % n
	return ring[idx]
}
