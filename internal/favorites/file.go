package favorites

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"emojihub/internal/model"
)

// FileRepository keeps the favorites array in a single JSON file.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the backing file.
func (r *FileRepository) Path() string { return r.path }

func (r *FileRepository) Load(ctx context.Context) ([]model.Emoji, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Emoji{}, nil
		}
		return nil, fmt.Errorf("read favorites: %w", err)
	}
	return decode(data, r.path), nil
}

// Save writes to a temp file then renames it over the target.
func (r *FileRepository) Save(ctx context.Context, list []model.Emoji) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(list)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("create favorites dir: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace favorites: %w", err)
	}
	return nil
}

func (r *FileRepository) Close() error { return nil }
