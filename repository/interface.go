package repository

import (
	"context"

	"outfit-recommender/models"
)

// RecommendationRepositoryInterface defines the contract for recommendation history operations
type RecommendationRepositoryInterface interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, rec *models.RecommendationRecord) error
	ListRecent(ctx context.Context, limit int) ([]models.RecommendationRecord, error)
}
