package grid

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/Nivolast/photo-collage/pkg/cropper"
	"github.com/Nivolast/photo-collage/pkg/processing"
)

// ErrNoPhotos is the fatal precondition of a pass: with an empty library no
// mosaic can be produced, so compositing must not start at all.
var ErrNoPhotos = errors.New("no photos found in the photo library")

const (
	// samplesPerAxis is the per-dimension sub-sampling density of a cell.
	samplesPerAxis = 5
	// inclusionThreshold is the strict inside-sample count a cell must exceed
	// to be filled; exactly half-the-samples ties break toward exclusion.
	inclusionThreshold = samplesPerAxis * samplesPerAxis / 2
)

// LoadFunc loads a photo from a library path.
type LoadFunc func(path string) (image.Image, error)

// FitFunc fits a photo into an edge x edge tile.
type FitFunc func(img image.Image, edge int) *image.NRGBA

// Compositor fills glyph-covered grid cells with randomly chosen photos.
// Load and Fit are injected so the compositor only needs an ordered list of
// loadable sources; the defaults read files from disk and center-crop.
type Compositor struct {
	Load   LoadFunc
	Fit    FitFunc
	Logger *log.Logger
}

// NewCompositor creates a Compositor with file-based loading and a
// center-cropping fitter
func NewCompositor() *Compositor {
	p := processing.NewProcessor()
	c := cropper.New()
	return &Compositor{
		Load:   p.LoadImage,
		Fit:    c.FitSquare,
		Logger: log.Default(),
	}
}

// Compose partitions dst into cellSize cells and, for every cell lying inside
// the mask silhouette, pastes a random aspect-fitted photo in place. Cells are
// visited in raster order so a fixed rng seed reproduces a layout exactly.
// Returns the number of photos placed.
//
// A photo that fails to load or decode only skips its own cell; the rest of
// the pass continues. An empty library fails before any cell is visited.
func (c *Compositor) Compose(dst *image.NRGBA, mask *image.Gray, photos []string, cellSize int, rng *rand.Rand) (int, error) {
	if len(photos) == 0 {
		return 0, ErrNoPhotos
	}
	if cellSize < 1 {
		return 0, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}

	bounds := dst.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	cols := width / cellSize
	rows := height / cellSize

	placed := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := col * cellSize
			y := row * cellSize

			if !c.cellInsideMask(mask, x, y, cellSize, width, height) {
				continue
			}

			path := photos[rng.Intn(len(photos))]
			img, err := c.Load(path)
			if err != nil {
				c.logger().Warn("skipping unreadable photo", "path", path, "err", err)
				continue
			}

			tile := c.Fit(img, cellSize)
			rect := image.Rect(x, y, x+cellSize, y+cellSize)
			draw.Draw(dst, rect.Add(bounds.Min), tile, tile.Bounds().Min, draw.Src)
			placed++
		}
	}

	return placed, nil
}

// cellInsideMask sub-samples the cell on a 5x5 point grid and reports whether
// a strict majority of in-bounds samples hit glyph ink
func (c *Compositor) cellInsideMask(mask *image.Gray, x, y, cellSize, width, height int) bool {
	inside := 0
	for sx := 0; sx < samplesPerAxis; sx++ {
		for sy := 0; sy < samplesPerAxis; sy++ {
			px := x + cellSize*sx/samplesPerAxis
			py := y + cellSize*sy/samplesPerAxis
			if px >= width || py >= height {
				continue
			}
			if mask.GrayAt(px, py).Y > 0 {
				inside++
			}
		}
	}
	return inside > inclusionThreshold
}

func (c *Compositor) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}
