// Package glyph renders the number silhouette mask and the caption text for
// the collage canvas.
//
// Font selection is a capability lookup, not an error path: the preferred
// system font is located once via go-findfont and the embedded Go Regular
// face takes over when it is missing or unparsable. Either way callers always
// receive a usable face and a generation pass never aborts over fonts.
package glyph

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// preferredFont is looked up in the platform font directories
// case-insensitively.
const preferredFont = "arial.ttf"

type fontSource struct {
	font     *opentype.Font
	fallback bool
}

var (
	source     fontSource
	sourceOnce sync.Once
)

func loadSource() fontSource {
	sourceOnce.Do(func() {
		if path, err := findfont.Find(preferredFont); err == nil {
			if data, err := os.ReadFile(path); err == nil {
				if f, err := opentype.Parse(data); err == nil {
					source = fontSource{font: f}
					return
				}
			}
		}
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			// goregular ships embedded with x/image and always parses
			panic("glyph: embedded fallback font failed to parse: " + err.Error())
		}
		source = fontSource{font: f, fallback: true}
	})
	return source
}

// UsingFallbackFont reports whether the embedded fallback face is in use
// instead of the preferred system font
func UsingFallbackFont() bool {
	return loadSource().fallback
}

// newFace builds a face at the given pixel size (72 DPI makes points pixels)
func newFace(size float64) font.Face {
	src := loadSource()
	face, err := opentype.NewFace(src.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// A parsed font only fails face creation on absurd sizes; retry at a
		// sane size rather than abort the pass.
		face, _ = opentype.NewFace(src.font, &opentype.FaceOptions{Size: 16, DPI: 72})
	}
	return face
}
