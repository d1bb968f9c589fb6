package models

// Color is an RGB triple. Channel values are kept as float64 so that running means
// can be computed without conversions.
type Color [3]float64

// White is the fallback color for images that cannot be decoded
var White = Color{255, 255, 255}

// ItemTags holds the tags encoded in a wardrobe file name:
// {category}_{gendertag}_{occasiontag}_{anything}.jpg
type ItemTags struct {
	Category    string `json:"category"`
	GenderTag   string `json:"genderTag"`
	OccasionTag string `json:"occasionTag"`
}

// Item represents one indexed wardrobe image
type Item struct {
	ItemTags
	Name          string    `json:"name"`
	Path          string    `json:"path"`
	Embedding     []float32 `json:"-"`
	DominantColor Color     `json:"dominantColor"`
}

// WardrobeFile is a file listed by a wardrobe source
type WardrobeFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
