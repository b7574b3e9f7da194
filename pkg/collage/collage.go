// Package collage wires the mask renderer, granularity selector, grid
// compositor, and caption renderer into one canvas-producing pipeline.
package collage

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/Nivolast/photo-collage/pkg/config"
	"github.com/Nivolast/photo-collage/internal/utils"
	"github.com/Nivolast/photo-collage/pkg/cropper"
	"github.com/Nivolast/photo-collage/pkg/detection"
	"github.com/Nivolast/photo-collage/pkg/glyph"
	"github.com/Nivolast/photo-collage/pkg/grid"
	"github.com/Nivolast/photo-collage/pkg/ollama"
	"github.com/Nivolast/photo-collage/pkg/processing"
)

// OutputFile is the fixed artifact path. Every pass overwrites it, regardless
// of the configured glyph; successive different-glyph runs share the file.
const OutputFile = "collage.png"

// ErrNoPhotos re-exports the fatal empty-library condition
var ErrNoPhotos = grid.ErrNoPhotos

// Generator produces number-shaped photo collages. Each Generate call is an
// independent, reentrant pass: the library directory is re-read, every photo
// is reloaded from source, and only the Generator's rng carries state between
// passes.
type Generator struct {
	// Output is the artifact path, OutputFile unless overridden.
	Output string

	processor *processing.Processor
	cropper   *cropper.Cropper
	rng       *rand.Rand
	logger    *log.Logger
}

// New creates a Generator with clock-seeded randomness
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed creates a Generator whose photo placement is reproducible for a
// fixed seed
func NewWithSeed(seed int64) *Generator {
	return &Generator{
		Output:    OutputFile,
		processor: processing.NewProcessor(),
		cropper:   cropper.New(),
		rng:       rand.New(rand.NewSource(seed)),
		logger:    log.Default(),
	}
}

// SetLogger replaces the pass logger
func (g *Generator) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// Generate runs one full collage pass: blank white canvas, glyph mask,
// library enumeration, adaptive cell sizing, grid compositing, optional
// caption, and persistence to the fixed output path. The finished canvas is
// returned for display and never mutated afterwards.
func (g *Generator) Generate(ctx context.Context, s config.Settings) (*image.NRGBA, error) {
	canvas := imaging.New(s.Width, s.Height, color.White)

	mask := glyph.RenderMask(s.Number, s.Width, s.Height)
	if glyph.UsingFallbackFont() {
		g.logger.Debug("preferred font unavailable, using embedded fallback face")
	}

	photos, err := utils.ListPhotos(s.PhotosDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo library %q: %w", s.PhotosDirectory, err)
	}
	if len(photos) == 0 {
		return nil, ErrNoPhotos
	}

	fraction := grid.CellFraction(len(photos))
	cellSize := int(float64(minInt(s.Width, s.Height)) * fraction)
	if cellSize < 1 {
		cellSize = 1
	}
	g.logger.Info("generating collage",
		"glyph", s.Number, "photos", len(photos), "fraction", fraction, "cell", cellSize)

	comp := grid.NewCompositor()
	comp.Logger = g.logger
	comp.Load = g.processor.LoadImage
	comp.Fit = g.fitFunc(ctx, s)

	placed, err := comp.Compose(canvas, mask, photos, cellSize, g.rng)
	if err != nil {
		return nil, err
	}
	g.logger.Info("compositing done", "placed", placed)

	glyph.DrawCaption(canvas, s.Text, s.Width, s.Height)

	if err := g.processor.SaveImage(canvas, g.Output, 90); err != nil {
		return nil, fmt.Errorf("failed to save collage: %w", err)
	}

	return canvas, nil
}

// fitFunc picks the tile fitter for this pass: the plain center-cropping
// fitter, or a subject-anchored one when smart cropping is enabled. Vision
// failures degrade to the center crop per photo and never abort the pass.
func (g *Generator) fitFunc(ctx context.Context, s config.Settings) grid.FitFunc {
	if !s.SmartCrop {
		return g.cropper.FitSquare
	}

	client, err := ollama.NewClient(s.OllamaURL)
	if err != nil {
		g.logger.Warn("smart crop disabled: invalid ollama URL", "url", s.OllamaURL, "err", err)
		return g.cropper.FitSquare
	}
	finder := detection.NewFinder(client, s.OllamaModel)

	return func(img image.Image, edge int) *image.NRGBA {
		imgB64, err := g.processor.EncodeForModel(img, "jpg", 768, 85)
		if err != nil {
			g.logger.Warn("smart crop: encode failed, using center crop", "err", err)
			return g.cropper.FitSquare(img, edge)
		}
		cx, cy, err := finder.FocusPoint(ctx, imgB64)
		if err != nil {
			g.logger.Warn("smart crop: subject detection failed, using center crop", "err", err)
			return g.cropper.FitSquare(img, edge)
		}
		return g.cropper.FitSquareAt(img, edge, cx, cy)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
