package utils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// photoExts are the library file extensions eligible for the collage.
var photoExts = []string{"png", "jpg", "jpeg"}

// IsPhotoFile checks if a file has an eligible photo extension
func IsPhotoFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, e := range photoExts {
		if ext == e {
			return true
		}
	}
	return false
}

// ListPhotos returns the sorted photo paths directly inside dir.
// Sub-directories are not recursed and non-photo entries are ignored.
func ListPhotos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var photos []string
	for _, e := range entries {
		if e.IsDir() || !IsPhotoFile(e.Name()) {
			continue
		}
		photos = append(photos, filepath.Join(dir, e.Name()))
	}
	sort.Strings(photos)
	return photos, nil
}

// DirExists checks if a directory exists
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && info.IsDir()
}
