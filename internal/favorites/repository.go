// Package favorites persists the user's favorite emojis and exposes the
// toggle, remove and clear operations used by both screens.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"emojihub/internal/model"
)

// Repository stores the favorites array under model.FavoritesKey.
// Load treats a missing or malformed entry as an empty set.
type Repository interface {
	Load(ctx context.Context) ([]model.Emoji, error)
	Save(ctx context.Context, list []model.Emoji) error
	Close() error
}

// Open returns the backend named by kind: "file", "sqlite" or "memory".
func Open(kind, path string) (Repository, error) {
	switch kind {
	case "", "file":
		return NewFileRepository(path), nil
	case "sqlite":
		return OpenSQLite(path)
	case "memory":
		return NewMemoryRepository(), nil
	}
	return nil, fmt.Errorf("unknown favorites store %q", kind)
}

func encode(list []model.Emoji) ([]byte, error) {
	if list == nil {
		list = []model.Emoji{}
	}
	return json.Marshal(list)
}

// decode never fails: bad data is logged and read as empty.
func decode(data []byte, source string) []model.Emoji {
	if len(data) == 0 {
		return []model.Emoji{}
	}
	var list []model.Emoji
	if err := json.Unmarshal(data, &list); err != nil {
		slog.Debug("ignoring malformed favorites", "source", source, "err", err)
		return []model.Emoji{}
	}
	if list == nil {
		return []model.Emoji{}
	}
	return list
}
