// Package ui is the slideshow shell around the collage generator: a window
// showing the latest canvas, a status bar with the last-update timestamp, and
// a refresh loop that regenerates the collage at the configured interval.
package ui

import (
	"context"
	"fmt"
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/Nivolast/photo-collage/pkg/config"
	"github.com/Nivolast/photo-collage/pkg/collage"
)

// Run opens the display window and blocks until it is closed. Passes run
// sequentially on a background goroutine: the next refresh is scheduled only
// after the previous pass completes, so passes never overlap and a slow photo
// read simply delays the next update. Escape toggles fullscreen.
func Run(ctx context.Context, gen *collage.Generator, settings config.Settings) {
	a := app.New()
	w := a.NewWindow(fmt.Sprintf("Photo Collage %s %s", settings.Number, settings.Text))
	w.Resize(fyne.NewSize(float32(settings.Width), float32(settings.Height)))

	// White placeholder until the first pass lands.
	placeholder := image.NewNRGBA(image.Rect(0, 0, settings.Width, settings.Height))
	for i := range placeholder.Pix {
		placeholder.Pix[i] = 0xff
	}

	view := canvas.NewImageFromImage(placeholder)
	view.FillMode = canvas.ImageFillContain
	status := widget.NewLabel("Generating collage...")
	w.SetContent(container.NewBorder(nil, status, nil, nil, view))

	fullscreen := settings.Fullscreen
	w.SetFullScreen(fullscreen)
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			fullscreen = !fullscreen
			w.SetFullScreen(fullscreen)
		}
	})

	interval := time.Duration(settings.RefreshInterval) * time.Second
	go func() {
		for {
			snapshot, err := gen.Generate(ctx, settings)
			stamp := time.Now().Format("15:04:05")
			if err != nil {
				log.Error("collage pass failed", "err", err)
			}
			fyne.Do(func() {
				if err != nil {
					status.SetText(fmt.Sprintf("Error: %v", err))
					return
				}
				view.Image = snapshot
				view.Refresh()
				status.SetText(fmt.Sprintf("Updated: %s", stamp))
			})

			select {
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
		}
	}()

	w.ShowAndRun()
}
