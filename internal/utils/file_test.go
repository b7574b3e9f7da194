package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsPhotoFile(t *testing.T) {
	eligible := []string{"a.png", "b.jpg", "c.jpeg", "D.PNG", "E.Jpg", "f.JPEG"}
	for _, name := range eligible {
		if !IsPhotoFile(name) {
			t.Errorf("%s should be eligible", name)
		}
	}

	ineligible := []string{"a.gif", "b.webp", "c.txt", "noext", "d.png.bak"}
	for _, name := range ineligible {
		if IsPhotoFile(name) {
			t.Errorf("%s should not be eligible", name)
		}
	}
}

func TestListPhotos(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"zeta.jpg", "alpha.png", "mid.JPEG", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// Nested photos must not be recursed into
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "hidden.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	photos, err := ListPhotos(dir)
	if err != nil {
		t.Fatalf("ListPhotos failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "alpha.png"),
		filepath.Join(dir, "mid.JPEG"),
		filepath.Join(dir, "zeta.jpg"),
	}
	if len(photos) != len(want) {
		t.Fatalf("got %d photos, want %d: %v", len(photos), len(want), photos)
	}
	for i := range want {
		if photos[i] != want[i] {
			t.Errorf("photos[%d] = %s, want %s", i, photos[i], want[i])
		}
	}
}

func TestListPhotosMissingDir(t *testing.T) {
	if _, err := ListPhotos(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	if !DirExists(dir) {
		t.Error("existing directory reported missing")
	}
	if DirExists(filepath.Join(dir, "nope")) {
		t.Error("missing directory reported present")
	}
}
