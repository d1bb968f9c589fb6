package controller

import (
	"log"
	"net/http"
	"strconv"

	"outfit-recommender/service"
)

const defaultHistoryLimit = 20

// RecommendationHistoryController handles HTTP requests for past recommendations
type RecommendationHistoryController struct {
	recommendationService service.RecommendationServiceInterface
}

// NewRecommendationHistoryController creates a new RecommendationHistoryController
func NewRecommendationHistoryController(recommendationService service.RecommendationServiceInterface) *RecommendationHistoryController {
	return &RecommendationHistoryController{recommendationService: recommendationService}
}

// ListRecommendations handles GET /admin/recommendations?limit=20
func (c *RecommendationHistoryController) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultHistoryLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := c.recommendationService.History(r.Context(), limit)
	if err != nil {
		log.Printf("❌ ListRecommendations: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"recommendations": records,
		"total":           len(records),
	})
}
