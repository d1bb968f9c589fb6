package service

import (
	"context"
	"fmt"
	"log"

	"outfit-recommender/models"
	"outfit-recommender/utils"
)

// OutfitComposer fills the slots of a plan from a catalog, scoring every item by
// semantic similarity to the slot prompt times color harmony with the items
// already chosen.
type OutfitComposer struct {
	embedder EmbeddingServiceInterface
}

// NewOutfitComposer creates a new OutfitComposer
func NewOutfitComposer(embedder EmbeddingServiceInterface) *OutfitComposer {
	return &OutfitComposer{embedder: embedder}
}

// SlotPrompt is the text embedded to describe a category for a gender and occasion
func SlotPrompt(gender, occasion, category string) string {
	return fmt.Sprintf("%s %s %s", gender, occasion, category)
}

// SelectOutfit returns one entry per slot of plan, in order. For each slot only the
// first candidate category present in the catalog is evaluated; lower-priority
// candidates are never compared against it. Slots without a present candidate get
// no item. Errors only come from the embedding model.
func (oc *OutfitComposer) SelectOutfit(ctx context.Context, catalog *models.Catalog, plan models.SlotPlan, occasion, gender string) (models.OutfitSelection, error) {
	selection := models.OutfitSelection{
		Slots:          make([]models.SlotSelection, 0, len(plan)),
		SelectedColors: []models.Color{},
	}

	for _, slot := range plan {
		entry := models.SlotSelection{Slot: slot.Name}

		for _, category := range slot.Candidates {
			table, ok := catalog.Table(category)
			if !ok {
				continue
			}

			best, score, err := oc.pickBest(ctx, table, selection.SelectedColors, gender, occasion)
			if err != nil {
				return models.OutfitSelection{}, fmt.Errorf("failed to fill slot %s: %w", slot.Name, err)
			}

			item := table.Items[best]
			entry.Category = category
			entry.Item = &item
			entry.Score = score
			break
		}

		if entry.Item != nil {
			selection.SelectedColors = append(selection.SelectedColors, entry.Item.DominantColor)
			log.Printf("✓ Slot %s: %s (category=%s, score=%.4f)", slot.Name, entry.Item.Name, entry.Category, entry.Score)
		} else {
			log.Printf("⏭️  Slot %s: no candidate category in catalog", slot.Name)
		}
		RecordSlotOutcome(ctx, slot.Name, entry.Item != nil)

		selection.Slots = append(selection.Slots, entry)
	}

	return selection, nil
}

// pickBest scores every item of table and returns the index and score of the winner
func (oc *OutfitComposer) pickBest(ctx context.Context, table *models.CategoryTable, selectedColors []models.Color, gender, occasion string) (int, float64, error) {
	raw, err := oc.embedder.EmbedText(ctx, SlotPrompt(gender, occasion, table.Category))
	if err != nil {
		return 0, 0, err
	}
	query, ok := utils.Normalize(raw)
	if !ok {
		return 0, 0, ErrZeroVector
	}
	if len(query) != table.Dim {
		return 0, 0, fmt.Errorf("%w: text %d, images %d", ErrDimensionMismatch, len(query), table.Dim)
	}

	scores := utils.MatVec(table.Embeddings, table.Dim, query)

	if len(selectedColors) > 0 {
		reference := utils.MeanColor(selectedColors)
		for i, c := range table.Colors {
			scores[i] *= utils.HarmonyScore(utils.ColorDistance(c, reference))
		}
	}

	best := utils.ArgMax(scores)
	return best, scores[best], nil
}
