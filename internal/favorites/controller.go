package favorites

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"emojihub/internal/model"
)

// ErrNotConfirmed is returned by ClearAll when the user did not confirm.
var ErrNotConfirmed = errors.New("clear all favorites: not confirmed")

// Controller holds one screen's view of the favorites set.
//
// Every mutation rewrites the whole set to the repository before returning.
// If the write fails the mutation is dropped, so memory never runs ahead of
// storage. Two controllers on the same repository do not see each other's
// changes until Reload; the last writer wins.
type Controller struct {
	repo Repository
	list []model.Emoji
}

// New mounts a controller, loading the current set from repo.
func New(ctx context.Context, repo Repository) (*Controller, error) {
	c := &Controller{repo: repo}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload replaces the in-memory set with what the repository holds.
func (c *Controller) Reload(ctx context.Context) error {
	list, err := c.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	c.list = dedupe(list)
	return nil
}

// IsFavorite reports whether a record with the same name is stored.
func (c *Controller) IsFavorite(e model.Emoji) bool {
	return c.index(e) >= 0
}

// Toggle removes e if present, otherwise appends it.
func (c *Controller) Toggle(ctx context.Context, e model.Emoji) (added bool, err error) {
	if i := c.index(e); i >= 0 {
		return false, c.commit(ctx, without(c.list, i))
	}
	next := make([]model.Emoji, len(c.list), len(c.list)+1)
	copy(next, c.list)
	next = append(next, e)
	return true, c.commit(ctx, next)
}

// Remove drops e. Removing an absent record still re-persists the set.
func (c *Controller) Remove(ctx context.Context, e model.Emoji) error {
	if i := c.index(e); i >= 0 {
		return c.commit(ctx, without(c.list, i))
	}
	return c.commit(ctx, c.List())
}

// ClearAll empties the set, but only when confirmed.
func (c *Controller) ClearAll(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	return c.commit(ctx, []model.Emoji{})
}

// List returns a copy of the set in insertion order.
func (c *Controller) List() []model.Emoji {
	out := make([]model.Emoji, len(c.list))
	copy(out, c.list)
	return out
}

func (c *Controller) Len() int { return len(c.list) }

func (c *Controller) commit(ctx context.Context, next []model.Emoji) error {
	if err := c.repo.Save(ctx, next); err != nil {
		slog.Error("favorites not saved", "err", err)
		return fmt.Errorf("save favorites: %w", err)
	}
	c.list = next
	return nil
}

func (c *Controller) index(e model.Emoji) int {
	for i, fav := range c.list {
		if fav.Same(e) {
			return i
		}
	}
	return -1
}

func without(list []model.Emoji, i int) []model.Emoji {
	out := make([]model.Emoji, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// dedupe keeps the first record for each name.
func dedupe(list []model.Emoji) []model.Emoji {
	seen := make(map[string]bool, len(list))
	out := make([]model.Emoji, 0, len(list))
	for _, e := range list {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		out = append(out, e)
	}
	return out
}
