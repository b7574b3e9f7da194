package glyph

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// captionScale sizes the caption face relative to canvas height.
	captionScale = 0.05
	// captionBottomMargin is the gap between the caption and the bottom edge.
	captionBottomMargin = 75
)

// DrawCaption renders text in black near the bottom of the canvas,
// horizontally centered, with the caption's ink box ending 75 pixels above
// the bottom edge. Empty text is a no-op.
func DrawCaption(dst draw.Image, text string, width, height int) {
	if text == "" || width <= 0 || height <= 0 {
		return
	}

	face := newFace(float64(height) * captionScale)
	defer face.Close()

	bounds, _ := font.BoundString(face, text)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	left := (width - textW) / 2
	top := height - textH - captionBottomMargin

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(left) - bounds.Min.X,
			Y: fixed.I(top) - bounds.Min.Y,
		},
	}
	d.DrawString(text)
}
