package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"outfit-recommender/models"
	"outfit-recommender/service"
)

// OutfitController handles HTTP requests for outfit recommendations
type OutfitController struct {
	recommendationService service.RecommendationServiceInterface
	collagePath           string
}

// NewOutfitController creates a new OutfitController
func NewOutfitController(recommendationService service.RecommendationServiceInterface, collagePath string) *OutfitController {
	return &OutfitController{
		recommendationService: recommendationService,
		collagePath:           collagePath,
	}
}

// RecommendOutfit handles POST /analyze_audio (and its alias POST /recommend_outfit)
// Body: {"occasion": "...", "gender": "..."}
// Returns the chosen file name per slot (null when empty) and the collage file name,
// which clients fetch from CollageRoute
func (c *OutfitController) RecommendOutfit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RecommendOutfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ RecommendOutfit: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if req.Occasion == "" || req.Gender == "" {
		writeError(w, http.StatusBadRequest, "Missing occasion or gender")
		return
	}

	log.Printf("📥 RecommendOutfit: occasion=%s, gender=%s", req.Occasion, req.Gender)

	result, err := c.recommendationService.Recommend(r.Context(), req.Gender, req.Occasion)
	if err != nil {
		log.Printf("❌ RecommendOutfit: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := models.RecommendOutfitResponse{Outfit: result.Outfit}
	if result.CollagePath != "" {
		name := c.collageName()
		resp.CollageImage = &name
	}
	writeJSON(w, http.StatusOK, resp)
}

// CollageRoute is the path GetCollage is served on, e.g. "/final_outfit.jpg"
func (c *OutfitController) CollageRoute() string {
	return "/" + c.collageName()
}

func (c *OutfitController) collageName() string {
	return filepath.Base(c.collagePath)
}

// GetCollage handles GET /<collage file name>
// Serves the most recently rendered collage
func (c *OutfitController) GetCollage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	f, err := os.Open(c.collagePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "Collage not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to open collage: %v", err), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read collage: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
