package models

// CategoryTable holds the items of one category together with their stacked
// embeddings and colors. Row i of Embeddings and Colors[i] belong to Items[i].
type CategoryTable struct {
	Category   string    `json:"category"`
	Items      []Item    `json:"items"`
	Dim        int       `json:"dim"`
	Embeddings []float32 `json:"-"` // row-major, len(Items) x Dim
	Colors     []Color   `json:"colors"`

	stale bool
}

// Len returns the number of items in the table
func (t *CategoryTable) Len() int {
	return len(t.Items)
}

// Row returns the embedding row of item i
func (t *CategoryTable) Row(i int) []float32 {
	return t.Embeddings[i*t.Dim : (i+1)*t.Dim]
}

// stack rebuilds Embeddings, Colors and Dim from Items
func (t *CategoryTable) stack() {
	t.stale = false
	if len(t.Items) == 0 {
		return
	}
	dim := len(t.Items[0].Embedding)
	matrix := make([]float32, 0, len(t.Items)*dim)
	colors := make([]Color, 0, len(t.Items))
	for _, item := range t.Items {
		matrix = append(matrix, item.Embedding...)
		colors = append(colors, item.DominantColor)
	}
	t.Dim = dim
	t.Embeddings = matrix
	t.Colors = colors
}

// CatalogStats counts what happened while indexing a wardrobe
type CatalogStats struct {
	Scanned  int `json:"scanned"`
	Accepted int `json:"accepted"`
	Skipped  int `json:"skipped"`
}

// Catalog maps category names to their tables. It is built per request and
// never shared between requests.
type Catalog struct {
	tables map[string]*CategoryTable
	order  []string
	Stats  CatalogStats `json:"stats"`
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		tables: make(map[string]*CategoryTable),
	}
}

// Add appends an item to its category, creating the category on first use
func (c *Catalog) Add(item Item) {
	table, ok := c.tables[item.Category]
	if !ok {
		table = &CategoryTable{Category: item.Category}
		c.tables[item.Category] = table
		c.order = append(c.order, item.Category)
	}
	table.Items = append(table.Items, item)
	table.stale = true
}

// Stack builds the batched embedding matrix and color slice of every category.
// Items keep their insertion order. Table stacks a category on demand when items
// were added since the last Stack.
func (c *Catalog) Stack() {
	for _, name := range c.order {
		if table := c.tables[name]; table.stale {
			table.stack()
		}
	}
}

// Table returns the table of a category. Categories without items are never present.
func (c *Catalog) Table(category string) (*CategoryTable, bool) {
	table, ok := c.tables[category]
	if !ok || len(table.Items) == 0 {
		return nil, false
	}
	if table.stale {
		table.stack()
	}
	return table, true
}

// Categories returns the category names in first-seen order
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the total number of items across all categories
func (c *Catalog) Len() int {
	n := 0
	for _, table := range c.tables {
		n += len(table.Items)
	}
	return n
}
