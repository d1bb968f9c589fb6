package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/disintegration/imaging"

	"outfit-recommender/models"
	"outfit-recommender/utils"
)

var (
	// ErrZeroVector is returned when the embedding model produces a vector that cannot be normalized
	ErrZeroVector = errors.New("embedding has zero length")
	// ErrDimensionMismatch is returned when two embeddings that must be compared differ in size
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

// Skip reasons reported in logs and metrics
const (
	skipReasonRead      = "read"
	skipReasonDecode    = "decode"
	skipReasonEmbed     = "embed"
	skipReasonDimension = "dimension"
)

// CatalogIndexer turns the wardrobe into a per-category catalog for one request
type CatalogIndexer struct {
	source   WardrobeSourceInterface
	embedder EmbeddingServiceInterface
}

// NewCatalogIndexer creates a new CatalogIndexer
func NewCatalogIndexer(source WardrobeSourceInterface, embedder EmbeddingServiceInterface) *CatalogIndexer {
	return &CatalogIndexer{
		source:   source,
		embedder: embedder,
	}
}

// BuildCatalog indexes every wardrobe image tagged for gender and occasion.
// Files that cannot be read, decoded or embedded are skipped; only a failure to
// list the wardrobe or a cancelled context aborts indexing.
func (ci *CatalogIndexer) BuildCatalog(ctx context.Context, gender, occasion string) (*models.Catalog, error) {
	gender = utils.NormalizeTag(gender)
	occasion = utils.NormalizeTag(occasion)

	log.Printf("🔄 Building catalog: gender=%s, occasion=%s", gender, occasion)

	files, err := ci.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wardrobe: %w", err)
	}

	catalog := models.NewCatalog()
	dim := 0

	for _, file := range files {
		if !utils.IsWardrobeImage(file.Name) {
			continue
		}

		tags, err := utils.ParseWardrobeFileName(file.Name)
		if err != nil {
			continue
		}
		if !utils.MatchesFilter(tags, gender, occasion) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		catalog.Stats.Scanned++

		item, reason, err := ci.indexFile(ctx, file, tags, dim)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			log.Printf("⚠️  Skipping %s (%s): %v", file.Name, reason, err)
			catalog.Stats.Skipped++
			RecordItemSkipped(ctx, reason)
			continue
		}

		if dim == 0 {
			dim = len(item.Embedding)
		}
		catalog.Add(item)
		catalog.Stats.Accepted++
		WardrobeIndexed.Add(ctx, 1)
	}

	catalog.Stack()

	log.Printf("✓ Catalog built: %d items in %d categories (%d skipped)",
		catalog.Stats.Accepted, len(catalog.Categories()), catalog.Stats.Skipped)
	return catalog, nil
}

// indexFile reads, embeds and colors one accepted file. On failure it returns
// the skip reason.
func (ci *CatalogIndexer) indexFile(ctx context.Context, file models.WardrobeFile, tags models.ItemTags, dim int) (models.Item, string, error) {
	data, err := ci.source.Open(ctx, file.Path)
	if err != nil {
		return models.Item{}, skipReasonRead, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return models.Item{}, skipReasonDecode, fmt.Errorf("failed to decode image: %w", err)
	}

	raw, err := ci.embedder.EmbedImage(ctx, img)
	if err != nil {
		return models.Item{}, skipReasonEmbed, err
	}
	embedding, ok := utils.Normalize(raw)
	if !ok {
		return models.Item{}, skipReasonEmbed, ErrZeroVector
	}
	if dim != 0 && len(embedding) != dim {
		return models.Item{}, skipReasonDimension, fmt.Errorf("%w: got %d, catalog uses %d", ErrDimensionMismatch, len(embedding), dim)
	}

	return models.Item{
		ItemTags:      tags,
		Name:          file.Name,
		Path:          file.Path,
		Embedding:     embedding,
		DominantColor: ExtractDominantColorFromImage(img),
	}, "", nil
}
