package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"outfit-recommender/models"
)

// LocalWardrobeSource reads wardrobe images from a folder on disk
type LocalWardrobeSource struct {
	folder string
}

// Ensure LocalWardrobeSource implements WardrobeSourceInterface
var _ WardrobeSourceInterface = (*LocalWardrobeSource)(nil)

// NewLocalWardrobeSource creates a new LocalWardrobeSource for folder
func NewLocalWardrobeSource(folder string) *LocalWardrobeSource {
	return &LocalWardrobeSource{folder: folder}
}

// List returns the regular files of the folder sorted by name
func (s *LocalWardrobeSource) List(ctx context.Context) ([]models.WardrobeFile, error) {
	entries, err := os.ReadDir(s.folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read wardrobe folder %s: %w", s.folder, err)
	}

	files := make([]models.WardrobeFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, models.WardrobeFile{
			Name: entry.Name(),
			Path: filepath.Join(s.folder, entry.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// Open reads a file returned by List
func (s *LocalWardrobeSource) Open(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wardrobe image: %w", err)
	}
	return data, nil
}
