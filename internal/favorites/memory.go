package favorites

import (
	"context"
	"sync"

	"emojihub/internal/model"
)

// MemoryRepository is a process-local key-value store. Useful for tests and
// for sessions that should leave nothing behind.
type MemoryRepository struct {
	mu   sync.Mutex
	data map[string][]byte

	// SaveErr, when set, is returned by Save without storing anything.
	SaveErr error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Load(ctx context.Context) ([]model.Emoji, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return decode(r.data[model.FavoritesKey], "memory"), nil
}

func (r *MemoryRepository) Save(ctx context.Context, list []model.Emoji) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	data, err := encode(list)
	if err != nil {
		return err
	}
	r.data[model.FavoritesKey] = data
	return nil
}

// Raw returns the stored bytes for the favorites key.
func (r *MemoryRepository) Raw() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[model.FavoritesKey]
}

// SetRaw stores bytes verbatim under the favorites key.
func (r *MemoryRepository) SetRaw(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[model.FavoritesKey] = data
}

func (r *MemoryRepository) Close() error { return nil }
