package service

import (
	"context"
	"image"
)

// EmbeddingServiceInterface defines the contract for the embedding model.
// Image and text vectors live in the same space so they can be compared by cosine similarity.
type EmbeddingServiceInterface interface {
	EmbedImage(ctx context.Context, img image.Image) ([]float32, error)
	EmbedText(ctx context.Context, text string) ([]float32, error)
}
