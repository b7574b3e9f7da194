package cropper

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Cropper fits photos into square collage cells without distortion: scale to
// cover the square, then crop the overflow dimension.
type Cropper struct {
	filter imaging.ResampleFilter
}

// New creates a Cropper with the default high-quality resampling filter
func New() *Cropper {
	return &Cropper{filter: imaging.Lanczos}
}

// NewWithFilter creates a Cropper with a custom resampling filter
func NewWithFilter(filter imaging.ResampleFilter) *Cropper {
	return &Cropper{filter: filter}
}

// FitSquare produces an edge x edge image from img with no letterboxing and
// no stretching, cropping the overflow symmetrically around the center
func (c *Cropper) FitSquare(img image.Image, edge int) *image.NRGBA {
	return c.FitSquareAt(img, edge, 0.5, 0.5)
}

// FitSquareAt is FitSquare with the crop window anchored as close as possible
// to the normalized focus point (cx, cy) instead of the image center. The
// window is clamped so it always stays inside the scaled image.
func (c *Cropper) FitSquareAt(img image.Image, edge int, cx, cy float64) *image.NRGBA {
	if edge < 1 {
		edge = 1
	}

	flat := flatten(img)
	b := flat.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return imaging.New(edge, edge, color.White)
	}

	ratio := float64(srcW) / float64(srcH)
	if ratio > 1.0 {
		// Wider than square: fit height, crop width
		newW := int(ratio*float64(edge) + 0.5)
		if newW < edge {
			newW = edge
		}
		resized := imaging.Resize(flat, newW, edge, c.filter)
		left := clampInt(int(cx*float64(newW)+0.5)-edge/2, 0, newW-edge)
		return imaging.Crop(resized, image.Rect(left, 0, left+edge, edge))
	}

	// Taller than square (or square): fit width, crop height
	newH := int(float64(edge)/ratio + 0.5)
	if newH < edge {
		newH = edge
	}
	resized := imaging.Resize(flat, edge, newH, c.filter)
	top := clampInt(int(cy*float64(newH)+0.5)-edge/2, 0, newH-edge)
	return imaging.Crop(resized, image.Rect(0, top, edge, top+edge))
}

// flatten composites img onto an opaque white background so transparency and
// alternate color modes normalize to plain 3-channel color
func flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	base := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(base, img, image.Pt(0, 0), 1.0)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
