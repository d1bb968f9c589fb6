package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"outfit-recommender/models"
	"outfit-recommender/repository"
)

// ErrHistoryDisabled is returned by History when no database is configured
var ErrHistoryDisabled = errors.New("recommendation history is disabled")

// RecommendationService runs the whole recommendation for one request:
// index the wardrobe, fill the slot plan, render the collage.
// Implements RecommendationServiceInterface
type RecommendationService struct {
	indexer  *CatalogIndexer
	composer *OutfitComposer
	renderer *CollageRenderer
	history  repository.RecommendationRepositoryInterface
}

// NewRecommendationService creates a new RecommendationService. history may be nil.
func NewRecommendationService(
	indexer *CatalogIndexer,
	composer *OutfitComposer,
	renderer *CollageRenderer,
	history repository.RecommendationRepositoryInterface,
) *RecommendationService {
	return &RecommendationService{
		indexer:  indexer,
		composer: composer,
		renderer: renderer,
		history:  history,
	}
}

// Ensure RecommendationService implements RecommendationServiceInterface
var _ RecommendationServiceInterface = (*RecommendationService)(nil)

// Recommend builds a fresh catalog for gender and occasion and returns the best outfit
func (s *RecommendationService) Recommend(ctx context.Context, gender, occasion string) (*models.RecommendationResult, error) {
	start := time.Now()

	catalog, err := s.indexer.BuildCatalog(ctx, gender, occasion)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	selection, err := s.composer.SelectOutfit(ctx, catalog, models.DefaultSlotPlan(), occasion, gender)
	if err != nil {
		return nil, fmt.Errorf("failed to select outfit: %w", err)
	}

	collagePath, err := s.renderer.RenderCollage(ctx, selection.Paths())
	if err != nil {
		return nil, fmt.Errorf("failed to render collage: %w", err)
	}

	result := &models.RecommendationResult{
		Selection:   selection,
		Outfit:      selection.Names(),
		CollagePath: collagePath,
		Stats:       catalog.Stats,
	}

	log.Printf("🎉 Outfit ready in %s: %d/%d slots filled", time.Since(start).Round(time.Millisecond), selection.Filled(), len(selection.Slots))

	if s.history != nil {
		s.record(ctx, gender, occasion, result)
	}
	return result, nil
}

// record stores the outcome; failures are logged and never fail the request
func (s *RecommendationService) record(ctx context.Context, gender, occasion string, result *models.RecommendationResult) {
	rec := &models.RecommendationRecord{
		ID:        uuid.NewString(),
		Occasion:  occasion,
		Gender:    gender,
		Outfit:    result.Outfit,
		CreatedAt: time.Now().UTC(),
	}
	if result.CollagePath != "" {
		path := result.CollagePath
		rec.CollageImage = &path
	}

	if err := s.history.Insert(ctx, rec); err != nil {
		log.Printf("❌ Error recording recommendation %s: %v", rec.ID, err)
	}
}

// History returns the most recent recommendations, newest first
func (s *RecommendationService) History(ctx context.Context, limit int) ([]models.RecommendationRecord, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	records, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return records, nil
}

// HistoryEnabled reports whether recommendations are being recorded
func (s *RecommendationService) HistoryEnabled() bool {
	return s.history != nil
}
