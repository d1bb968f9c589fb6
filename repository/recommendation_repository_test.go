package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outfit-recommender/models"
)

func strPtr(s string) *string { return &s }

func TestRecommendationRepository_Insert(t *testing.T) {
	fixedTime := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	insertSQL := "INSERT INTO outfit_recommendations (id,occasion,gender,outfit,collage_image,created_at) VALUES ($1,$2,$3,$4,$5,$6)"

	tests := map[string]struct {
		rec       *models.RecommendationRecord
		expect    func(sqlmock.Sqlmock)
		expectErr bool
	}{
		"success-with-collage": {
			rec: &models.RecommendationRecord{
				ID:           "123e4567-e89b-12d3-a456-426614174000",
				Occasion:     "party",
				Gender:       "female",
				Outfit:       []*string{strPtr("shirt_female_party_1.jpg"), nil},
				CollageImage: strPtr("final_outfit.jpg"),
				CreatedAt:    fixedTime,
			},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertSQL).
					WithArgs("123e4567-e89b-12d3-a456-426614174000", "party", "female", `["shirt_female_party_1.jpg",null]`, "final_outfit.jpg", fixedTime).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"success-without-collage": {
			rec: &models.RecommendationRecord{
				ID:        "123e4567-e89b-12d3-a456-426614174001",
				Occasion:  "office",
				Gender:    "male",
				Outfit:    []*string{nil, nil, nil, nil, nil},
				CreatedAt: fixedTime,
			},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertSQL).
					WithArgs("123e4567-e89b-12d3-a456-426614174001", "office", "male", `[null,null,null,null,null]`, nil, fixedTime).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"database-error": {
			rec: &models.RecommendationRecord{ID: "x", Occasion: "party", Gender: "female", CreatedAt: fixedTime},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertSQL).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewRecommendationRepository(db)
			gotErr := repo.Insert(context.Background(), tt.rec)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecommendationRepository_ListRecent(t *testing.T) {
	fixedTime := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		limit     int
		expect    func(sqlmock.Sqlmock)
		expected  []models.RecommendationRecord
		expectErr bool
	}{
		"success": {
			limit: 20,
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(recommendationFields).
					AddRow("id-2", "party", "female", []byte(`["shirt_female_party_1.jpg",null]`), "final_outfit.jpg", fixedTime).
					AddRow("id-1", "party", "male", []byte(`[null]`), nil, fixedTime.Add(-time.Hour))
				m.ExpectQuery("SELECT id, occasion, gender, outfit, collage_image, created_at FROM outfit_recommendations ORDER BY created_at DESC LIMIT 20").
					WillReturnRows(rows)
			},
			expected: []models.RecommendationRecord{
				{
					ID:           "id-2",
					Occasion:     "party",
					Gender:       "female",
					Outfit:       []*string{strPtr("shirt_female_party_1.jpg"), nil},
					CollageImage: strPtr("final_outfit.jpg"),
					CreatedAt:    fixedTime,
				},
				{
					ID:        "id-1",
					Occasion:  "party",
					Gender:    "male",
					Outfit:    []*string{nil},
					CreatedAt: fixedTime.Add(-time.Hour),
				},
			},
		},
		"limit-clamped": {
			limit: 1000,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, occasion, gender, outfit, collage_image, created_at FROM outfit_recommendations ORDER BY created_at DESC LIMIT 100").
					WillReturnRows(sqlmock.NewRows(recommendationFields))
			},
			expected: []models.RecommendationRecord{},
		},
		"query-error": {
			limit: 5,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, occasion, gender, outfit, collage_image, created_at FROM outfit_recommendations ORDER BY created_at DESC LIMIT 5").
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
		"corrupt-outfit": {
			limit: 5,
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(recommendationFields).
					AddRow("id-3", "party", "female", []byte(`{not json`), nil, fixedTime)
				m.ExpectQuery("SELECT id, occasion, gender, outfit, collage_image, created_at FROM outfit_recommendations ORDER BY created_at DESC LIMIT 5").
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			repo := NewRecommendationRepository(db)
			got, gotErr := repo.ListRecent(context.Background(), tt.limit)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecommendationRepository_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec(createRecommendationsTable).WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRecommendationRepository(db)
	assert.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
