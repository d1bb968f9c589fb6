package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
)

const (
	// Grid settings
	collageCols    = 2
	collageRows    = 2
	collageCell    = 400
	collagePadding = 40
	// CollageSize is the width and height of the rendered collage
	CollageSize = collageCols*collageCell + (collageCols+1)*collagePadding
	// Quality settings
	qualityCollage = 90
)

// CollageRenderer composes outfit images into a single preview saved at a fixed path
type CollageRenderer struct {
	source     WardrobeSourceInterface
	outputPath string
	mu         sync.Mutex
}

// NewCollageRenderer creates a new CollageRenderer writing to outputPath
func NewCollageRenderer(source WardrobeSourceInterface, outputPath string) *CollageRenderer {
	return &CollageRenderer{
		source:     source,
		outputPath: outputPath,
	}
}

// OutputPath returns the path the collage is written to
func (cr *CollageRenderer) OutputPath() string {
	return cr.outputPath
}

// RenderCollage lays up to four images out on a white 2x2 grid, each shrunk to fit
// a 400x400 cell and centered in it, and saves the result as a JPEG. Empty paths
// are ignored. When no path remains it returns "" and writes nothing.
func (cr *CollageRenderer) RenderCollage(ctx context.Context, paths []string) (string, error) {
	var thumbs []image.Image
	for _, p := range paths {
		if p == "" {
			continue
		}

		data, err := cr.source.Open(ctx, p)
		if err != nil {
			return "", fmt.Errorf("failed to open collage image: %w", err)
		}
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("failed to decode collage image %s: %w", p, err)
		}
		thumbs = append(thumbs, imaging.Fit(img, collageCell, collageCell, imaging.Lanczos))
	}

	if len(thumbs) == 0 {
		return "", nil
	}
	if len(thumbs) > collageCols*collageRows {
		thumbs = thumbs[:collageCols*collageRows]
	}

	canvas := ComposeCollage(thumbs)

	cr.mu.Lock()
	defer cr.mu.Unlock()
	if err := cr.save(canvas); err != nil {
		return "", err
	}

	log.Printf("✓ Collage saved: %s (%d images)", cr.outputPath, len(thumbs))
	return cr.outputPath, nil
}

// ComposeCollage pastes thumbnails into the grid cells in row-major order.
// Thumbnails must already fit a cell; anything beyond the grid capacity is ignored.
func ComposeCollage(thumbs []image.Image) *image.NRGBA {
	canvas := imaging.New(CollageSize, CollageSize, color.White)

	for idx, thumb := range thumbs {
		if idx >= collageCols*collageRows {
			break
		}
		row, col := idx/collageCols, idx%collageCols
		x := collagePadding + col*(collageCell+collagePadding)
		y := collagePadding + row*(collageCell+collagePadding)

		b := thumb.Bounds()
		pos := image.Pt(x+(collageCell-b.Dx())/2, y+(collageCell-b.Dy())/2)
		canvas = imaging.Overlay(canvas, thumb, pos, 1.0)
	}
	return canvas
}

// save writes the canvas to a temp file next to the output and renames it into place
func (cr *CollageRenderer) save(canvas image.Image) error {
	dir := filepath.Dir(cr.outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create collage directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".collage-*.jpg")
	if err != nil {
		return fmt.Errorf("failed to create collage file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := imaging.Encode(tmp, canvas, imaging.JPEG, imaging.JPEGQuality(qualityCollage)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode collage: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set collage permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write collage: %w", err)
	}
	if err := os.Rename(tmp.Name(), cr.outputPath); err != nil {
		return fmt.Errorf("failed to save collage: %w", err)
	}
	return nil
}
