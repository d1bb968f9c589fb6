package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Masterminds/squirrel"

	"outfit-recommender/models"
)

const recommendationsTable = "outfit_recommendations"

const createRecommendationsTable = `
	CREATE TABLE IF NOT EXISTS outfit_recommendations (
		id            UUID PRIMARY KEY,
		occasion      TEXT NOT NULL,
		gender        TEXT NOT NULL,
		outfit        JSONB NOT NULL,
		collage_image TEXT,
		created_at    TIMESTAMPTZ NOT NULL
	)
`

var recommendationFields = []string{
	"id",
	"occasion",
	"gender",
	"outfit",
	"collage_image",
	"created_at",
}

// MaxHistoryLimit caps the number of records returned by ListRecent
const MaxHistoryLimit = 100

// RecommendationRepository handles database operations for recommendation history
type RecommendationRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewRecommendationRepository creates a new RecommendationRepository
func NewRecommendationRepository(db *sql.DB) *RecommendationRepository {
	return &RecommendationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

// Ensure RecommendationRepository implements RecommendationRepositoryInterface
var _ RecommendationRepositoryInterface = (*RecommendationRepository)(nil)

// EnsureSchema creates the history table if it does not exist
func (r *RecommendationRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createRecommendationsTable); err != nil {
		return fmt.Errorf("failed to create %s table: %w", recommendationsTable, err)
	}
	log.Printf("✓ Table %s ready", recommendationsTable)
	return nil
}

// Insert stores one recommendation outcome
func (r *RecommendationRepository) Insert(ctx context.Context, rec *models.RecommendationRecord) error {
	outfit, err := json.Marshal(rec.Outfit)
	if err != nil {
		return fmt.Errorf("failed to encode outfit: %w", err)
	}

	var collage interface{}
	if rec.CollageImage != nil {
		collage = *rec.CollageImage
	}

	_, err = r.sb.
		Insert(recommendationsTable).
		Columns(recommendationFields...).
		Values(rec.ID, rec.Occasion, rec.Gender, string(outfit), collage, rec.CreatedAt).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert recommendation: %w", err)
	}
	return nil
}

// ListRecent returns up to limit recommendations, newest first.
// limit is clamped to [1, MaxHistoryLimit].
func (r *RecommendationRepository) ListRecent(ctx context.Context, limit int) ([]models.RecommendationRecord, error) {
	if limit <= 0 {
		limit = 1
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	rows, err := r.sb.
		Select(recommendationFields...).
		From(recommendationsTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	records := []models.RecommendationRecord{}
	for rows.Next() {
		var (
			rec     models.RecommendationRecord
			outfit  []byte
			collage sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.Occasion, &rec.Gender, &outfit, &collage, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		if err := json.Unmarshal(outfit, &rec.Outfit); err != nil {
			return nil, fmt.Errorf("failed to decode outfit of %s: %w", rec.ID, err)
		}
		if collage.Valid {
			path := collage.String
			rec.CollageImage = &path
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recommendations: %w", err)
	}
	return records, nil
}
