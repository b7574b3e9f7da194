package glyph

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// verticalBias shifts the glyph above true center, leaving room for the
// caption along the bottom edge.
const verticalBias = 0.225

// RenderMask rasterizes text as a filled silhouette mask the size of the
// canvas. A mask pixel > 0 means "inside the glyph". The glyph is drawn at
// canvas height, horizontally centered, and vertically centered shifted up by
// 22.5% of the canvas height.
func RenderMask(text string, width, height int) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, width, height))
	if text == "" || width <= 0 || height <= 0 {
		return mask
	}

	face := newFace(float64(height))
	defer face.Close()

	// BoundString gives the ink box of the rendered text; position its
	// top-left corner, then derive the baseline origin from the box minimum.
	bounds, _ := font.BoundString(face, text)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	left := (width - textW) / 2
	top := (height-textH)/2 - int(float64(height)*verticalBias)

	d := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(left) - bounds.Min.X,
			Y: fixed.I(top) - bounds.Min.Y,
		},
	}
	d.DrawString(text)

	return mask
}
