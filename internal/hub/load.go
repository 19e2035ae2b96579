package hub

import (
	"context"
	"log/slog"
	"sync"

	"emojihub/internal/model"
)

// Source is what Load needs from a client.
type Source interface {
	FetchAll(ctx context.Context) ([]model.Emoji, error)
	FetchCategories(ctx context.Context) ([]string, error)
	FetchGroups(ctx context.Context) ([]string, error)
}

// Snapshot is the outcome of one load of the three API lists.
type Snapshot struct {
	Emojis     []model.Emoji
	Categories []string
	Groups     []string

	Err           error // Primary list failure; fatal to the catalog view
	CategoriesErr error // Only empties the category options
	GroupsErr     error // Only empties the group options
}

// OK reports whether the primary list was loaded.
func (s Snapshot) OK() bool {
	return s.Err == nil
}

// Load runs the three fetches in parallel and waits for all of them.
// Each failure is recorded in the snapshot; none is retried.
func Load(ctx context.Context, src Source) Snapshot {
	var (
		snap Snapshot
		wg   sync.WaitGroup
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Emojis, snap.Err = src.FetchAll(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Categories, snap.CategoriesErr = src.FetchCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Groups, snap.GroupsErr = src.FetchGroups(ctx)
	}()
	wg.Wait()

	if snap.CategoriesErr != nil {
		slog.Warn("categories unavailable", "err", snap.CategoriesErr)
	}
	if snap.GroupsErr != nil {
		slog.Warn("groups unavailable", "err", snap.GroupsErr)
	}
	if snap.Err != nil {
		slog.Error("emoji list unavailable", "err", snap.Err)
	} else {
		slog.Debug("emoji list loaded", "count", len(snap.Emojis))
	}
	return snap
}

// Reload re-runs only the primary fetch, keeping the auxiliary lists.
func Reload(ctx context.Context, src Source, prev Snapshot) Snapshot {
	next := prev
	next.Emojis, next.Err = src.FetchAll(ctx)
	if next.Err != nil {
		slog.Error("emoji list unavailable", "err", next.Err)
	}
	return next
}
