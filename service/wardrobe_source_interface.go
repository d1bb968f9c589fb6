package service

import (
	"context"

	"outfit-recommender/models"
)

// WardrobeSourceInterface defines the contract for listing and reading wardrobe images.
// List must return files in a stable order.
type WardrobeSourceInterface interface {
	List(ctx context.Context) ([]models.WardrobeFile, error)
	Open(ctx context.Context, path string) ([]byte, error)
}
