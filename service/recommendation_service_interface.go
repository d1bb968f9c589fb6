package service

import (
	"context"

	"outfit-recommender/models"
)

// RecommendationServiceInterface defines the contract for outfit recommendation operations
type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, gender, occasion string) (*models.RecommendationResult, error)
	// History returns the most recent recommendations, newest first.
	// It fails with ErrHistoryDisabled when no repository is configured.
	History(ctx context.Context, limit int) ([]models.RecommendationRecord, error)
	HistoryEnabled() bool
}
