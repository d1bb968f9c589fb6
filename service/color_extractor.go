package service

import (
	"bytes"
	"image"
	"log"

	"github.com/disintegration/imaging"

	"outfit-recommender/models"
)

const colorSampleSize = 50

// ExtractDominantColor returns the mean RGB color of an encoded image, computed
// over a 50x50 downsampled copy and truncated to integers.
// Images that cannot be decoded yield white.
//
// It is the standalone entry point for raw image bytes. CatalogIndexer already
// holds the decoded image and calls ExtractDominantColorFromImage instead.
func ExtractDominantColor(imageData []byte) models.Color {
	img, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		log.Printf("⚠️  Could not decode image for color extraction, using white: %v", err)
		return models.White
	}
	return ExtractDominantColorFromImage(img)
}

// ExtractDominantColorFromImage is ExtractDominantColor for an already decoded image
func ExtractDominantColorFromImage(img image.Image) models.Color {
	if img == nil || img.Bounds().Empty() {
		return models.White
	}

	small := imaging.Resize(img, colorSampleSize, colorSampleSize, imaging.CatmullRom)

	var sums [3]int
	pixels := 0
	for y := 0; y < small.Rect.Dy(); y++ {
		row := small.Pix[y*small.Stride : y*small.Stride+small.Rect.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			sums[0] += int(row[x])
			sums[1] += int(row[x+1])
			sums[2] += int(row[x+2])
			pixels++
		}
	}

	var c models.Color
	for i := range sums {
		c[i] = float64(sums[i] / pixels)
	}
	return c
}
