package service

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"

	"outfit-recommender/models"
)

func TestExtractDominantColor(t *testing.T) {
	halfAndHalf := imaging.New(100, 100, color.Black)
	halfAndHalf = imaging.Paste(halfAndHalf, imaging.New(50, 100, color.White), image.Pt(50, 0))

	tests := map[string]struct {
		data []byte
		want models.Color
		tol  float64
	}{
		"solid-color": {
			data: encodePNG(t, imaging.New(120, 80, color.NRGBA{R: 10, G: 200, B: 30, A: 255})),
			want: models.Color{10, 200, 30},
			tol:  1,
		},
		"small-image-is-upsampled": {
			data: encodePNG(t, imaging.New(3, 3, color.NRGBA{R: 90, G: 60, B: 30, A: 255})),
			want: models.Color{90, 60, 30},
			tol:  1,
		},
		"half-black-half-white": {
			data: encodePNG(t, halfAndHalf),
			want: models.Color{127, 127, 127},
			tol:  3,
		},
		"garbage-falls-back-to-white": {
			data: []byte("definitely not an image"),
			want: models.White,
		},
		"empty-falls-back-to-white": {
			data: nil,
			want: models.White,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ExtractDominantColor(tt.data)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], tt.tol)
				assert.Equal(t, float64(int(got[i])), got[i], "channels are truncated to integers")
			}
		})
	}
}

func TestExtractDominantColorFromImage_Empty(t *testing.T) {
	assert.Equal(t, models.White, ExtractDominantColorFromImage(nil))
	assert.Equal(t, models.White, ExtractDominantColorFromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0))))
}
