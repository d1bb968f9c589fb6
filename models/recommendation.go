package models

import "time"

// RecommendOutfitRequest represents the request body of the outfit endpoint
type RecommendOutfitRequest struct {
	Occasion string `json:"occasion"`
	Gender   string `json:"gender"`
}

// RecommendOutfitResponse represents the response of the outfit endpoint.
// Outfit has one entry per slot; nil entries are encoded as null.
type RecommendOutfitResponse struct {
	Outfit       []*string `json:"outfit"`
	CollageImage *string   `json:"collage_image"`
}

// RecommendationResult is what the recommendation service produces for one request
type RecommendationResult struct {
	Selection   OutfitSelection
	Outfit      []*string
	CollagePath string
	Stats       CatalogStats
}

// RecommendationRecord is a stored recommendation outcome
type RecommendationRecord struct {
	ID           string    `json:"id"`
	Occasion     string    `json:"occasion"`
	Gender       string    `json:"gender"`
	Outfit       []*string `json:"outfit"`
	CollageImage *string   `json:"collageImage"`
	CreatedAt    time.Time `json:"createdAt"`
}
