package photocollage

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/Nivolast/photo-collage/pkg/collage"
	"github.com/Nivolast/photo-collage/pkg/config"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
}

func TestGenerateEmptyLibrary(t *testing.T) {
	settings := config.Default()
	settings.PhotosDirectory = t.TempDir()

	if _, err := Generate(context.Background(), settings); !errors.Is(err, collage.ErrNoPhotos) {
		t.Errorf("expected ErrNoPhotos, got %v", err)
	}
}

func TestGenerateWritesOutput(t *testing.T) {
	dir := t.TempDir()
	photo := imaging.New(30, 20, color.NRGBA{200, 120, 40, 255})
	if err := imaging.Save(photo, filepath.Join(dir, "p1.png")); err != nil {
		t.Fatalf("saving fixture photo failed: %v", err)
	}

	settings := config.Default()
	settings.PhotosDirectory = dir
	settings.Number = "7"
	settings.Width = 200
	settings.Height = 120

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	img, err := Generate(context.Background(), settings)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 120 {
		t.Errorf("canvas is %dx%d, want 200x120", b.Dx(), b.Dy())
	}
	if _, err := os.Stat(collage.OutputFile); err != nil {
		t.Errorf("output file was not written: %v", err)
	}
}
