package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogItem(name, category string, embedding []float32, c Color) Item {
	return Item{
		ItemTags:      ItemTags{Category: category, GenderTag: "female", OccasionTag: "party"},
		Name:          name,
		Embedding:     embedding,
		DominantColor: c,
	}
}

func TestCatalog_Stack(t *testing.T) {
	catalog := NewCatalog()
	catalog.Add(catalogItem("shirt_female_party_1.jpg", "shirt", []float32{1, 0}, Color{10, 20, 30}))
	catalog.Add(catalogItem("jeans_female_party_1.jpg", "jeans", []float32{0, 1}, Color{40, 50, 60}))
	catalog.Add(catalogItem("shirt_female_party_2.jpg", "shirt", []float32{0.6, 0.8}, Color{70, 80, 90}))
	catalog.Stack()

	assert.Equal(t, []string{"shirt", "jeans"}, catalog.Categories())
	assert.Equal(t, 3, catalog.Len())

	shirts, ok := catalog.Table("shirt")
	require.True(t, ok)
	assert.Equal(t, 2, shirts.Dim)
	assert.Equal(t, []float32{1, 0, 0.6, 0.8}, shirts.Embeddings)
	assert.Equal(t, []Color{{10, 20, 30}, {70, 80, 90}}, shirts.Colors)
	assert.Equal(t, []float32{0.6, 0.8}, shirts.Row(1))

	_, ok = catalog.Table("coat")
	assert.False(t, ok)
}

func TestCatalog_TableStaysInSyncWithItems(t *testing.T) {
	tests := map[string]struct {
		build func(c *Catalog)
	}{
		"never-stacked": {
			build: func(c *Catalog) {
				c.Add(catalogItem("heels_female_party_1.jpg", "heels", []float32{1, 0, 0}, Color{1, 2, 3}))
				c.Add(catalogItem("heels_female_party_2.jpg", "heels", []float32{0, 1, 0}, Color{4, 5, 6}))
			},
		},
		"added-after-stack": {
			build: func(c *Catalog) {
				c.Add(catalogItem("heels_female_party_1.jpg", "heels", []float32{1, 0, 0}, Color{1, 2, 3}))
				c.Stack()
				c.Add(catalogItem("heels_female_party_2.jpg", "heels", []float32{0, 1, 0}, Color{4, 5, 6}))
			},
		},
		"added-after-table-read": {
			build: func(c *Catalog) {
				c.Add(catalogItem("heels_female_party_1.jpg", "heels", []float32{1, 0, 0}, Color{1, 2, 3}))
				_, _ = c.Table("heels")
				c.Add(catalogItem("heels_female_party_2.jpg", "heels", []float32{0, 1, 0}, Color{4, 5, 6}))
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := NewCatalog()
			tt.build(catalog)

			heels, ok := catalog.Table("heels")
			require.True(t, ok)
			assert.Equal(t, 3, heels.Dim)
			assert.Equal(t, []float32{1, 0, 0, 0, 1, 0}, heels.Embeddings)
			assert.Equal(t, []Color{{1, 2, 3}, {4, 5, 6}}, heels.Colors)
			assert.Equal(t, heels.Len(), len(heels.Colors))
		})
	}
}
