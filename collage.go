// Package photocollage generates photo mosaics shaped like a number or short
// text glyph: a grid of small photographs fills the silhouette of a rendered
// glyph, with an optional caption beneath, for an anniversary display board.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"log"
//
//		photocollage "github.com/Nivolast/photo-collage"
//		"github.com/Nivolast/photo-collage/pkg/config"
//	)
//
//	func main() {
//		settings := config.Default()
//		settings.Number = "25"
//		settings.PhotosDirectory = "photos"
//
//		img, err := photocollage.Generate(context.Background(), settings)
//		if err != nil {
//			log.Fatal(err)
//		}
//		_ = img // collage.png has also been written
//	}
//
// The package consists of four core components:
//
//  1. Glyph (pkg/glyph): renders the number silhouette mask and the caption
//  2. Grid (pkg/grid): adaptive cell granularity and the grid compositor
//  3. Cropper (pkg/cropper): distortion-free square fitting of photos
//  4. Collage (pkg/collage): the orchestrator tying one pass together
//
// Cell granularity adapts to the library size: few photos produce large
// tiles, large libraries produce a fine mosaic that traces the glyph outline.
// Photo placement is random with replacement; a fixed seed reproduces a
// layout exactly. Optionally, an Ollama vision model can anchor each tile's
// crop on the photo's subject instead of its center (pkg/detection).
package photocollage

import (
	"context"
	"image"

	"github.com/Nivolast/photo-collage/pkg/config"
	"github.com/Nivolast/photo-collage/pkg/collage"
)

// Version of the photo collage library
const Version = "1.0.0"

// Generate runs a single collage pass with clock-seeded randomness and writes
// the result to the fixed output path. See pkg/collage for seeded generation.
func Generate(ctx context.Context, settings config.Settings) (*image.NRGBA, error) {
	return collage.New().Generate(ctx, settings)
}
