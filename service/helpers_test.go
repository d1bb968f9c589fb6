package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"outfit-recommender/models"
	"outfit-recommender/utils"
)

var errEmbed = errors.New("embedding model unavailable")

// fakeEmbedder derives image vectors from the top-left pixel of the image and
// returns configured vectors for text prompts.
type fakeEmbedder struct {
	mu          sync.Mutex
	texts       map[string][]float32
	defaultText []float32
	textErr     error
	// images whose top-left red channel equals failRed fail to embed
	failRed int
	prompts []string
	images  int
}

func newFakeEmbedder() *fakeEmbedder {
	return &fakeEmbedder{
		texts:       map[string][]float32{},
		defaultText: []float32{1, 1, 1, 1},
		failRed:     -1,
	}
}

func (f *fakeEmbedder) EmbedImage(ctx context.Context, img image.Image) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.images++

	b := img.Bounds()
	r, g, bl, _ := img.At(b.Min.X, b.Min.Y).RGBA()
	if int(r>>8) == f.failRed {
		return nil, errEmbed
	}
	return []float32{float32(r>>8) + 1, float32(g>>8) + 1, float32(bl>>8) + 1, 1}, nil
}

func (f *fakeEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, text)

	if f.textErr != nil {
		return nil, f.textErr
	}
	if v, ok := f.texts[text]; ok {
		return v, nil
	}
	return f.defaultText, nil
}

func (f *fakeEmbedder) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.prompts))
	copy(out, f.prompts)
	return out
}

// writeImage saves a solid image of size w x h; the format follows the extension
func writeImage(t *testing.T, dir, name string, c color.Color, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(imaging.New(w, h, c), path))
	return path
}

// writeFile saves raw bytes
func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

// newItem builds a catalog item with a normalized embedding
func newItem(t *testing.T, name, category string, embedding []float32, c models.Color) models.Item {
	t.Helper()
	norm, ok := utils.Normalize(embedding)
	require.True(t, ok)
	return models.Item{
		ItemTags:      models.ItemTags{Category: category, GenderTag: "female", OccasionTag: "party"},
		Name:          name,
		Path:          "/wardrobe/" + name,
		Embedding:     norm,
		DominantColor: c,
	}
}

func newCatalog(items ...models.Item) *models.Catalog {
	catalog := models.NewCatalog()
	for _, item := range items {
		catalog.Add(item)
	}
	catalog.Stack()
	return catalog
}

// isNear reports whether a pixel is within tol of c on every channel
func isNear(px color.Color, c color.NRGBA, tol int) bool {
	r, g, b, _ := px.RGBA()
	diff := func(a uint32, b uint8) bool {
		d := int(a>>8) - int(b)
		return d <= tol && d >= -tol
	}
	return diff(r, c.R) && diff(g, c.G) && diff(b, c.B)
}
