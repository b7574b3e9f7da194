package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultFile is the settings file consulted when none is specified.
const DefaultFile = "settings.txt"

// Settings holds the immutable per-pass configuration of the collage display.
// The on-disk format is plain "key=value" lines; "#" starts a comment.
type Settings struct {
	Number          string // glyph text the mosaic fills
	PhotosDirectory string
	Width           int
	Height          int
	Text            string // optional caption below the glyph
	RefreshInterval int    // seconds between regenerations
	Fullscreen      bool

	// Subject-aware cropping (off by default; requires a reachable Ollama
	// server when enabled).
	SmartCrop   bool
	OllamaURL   string
	OllamaModel string

	// Extra preserves unknown keys so hand-edited settings files survive a
	// round trip.
	Extra map[string]string
}

// Default returns the settings used when no settings file exists
func Default() Settings {
	return Settings{
		Number:          "6",
		PhotosDirectory: "photos",
		Width:           1600,
		Height:          900,
		Text:            "Years Anniversary",
		RefreshInterval: 5,
		Fullscreen:      true,
		SmartCrop:       false,
		OllamaURL:       "http://localhost:11434",
		OllamaModel:     "llava",
	}
}

// Load reads settings from a key=value file. A missing file is not an error:
// the defaults are persisted back so future runs have an editable source.
// Malformed lines are skipped with a warning and the rest of the file is
// still honored.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Info("settings file not found, creating defaults", "path", path)
		if werr := settings.Save(path); werr != nil {
			log.Warn("could not create default settings file", "path", path, "err", werr)
		}
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			log.Warn("ignoring invalid setting line", "line", line)
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if err := settings.apply(key, value); err != nil {
			log.Warn("ignoring invalid setting line", "line", line, "err", err)
		}
	}

	log.Info("settings loaded", "path", path)
	return settings, nil
}

// apply sets a single key, stashing unknown keys in Extra
func (s *Settings) apply(key, value string) error {
	switch key {
	case "number":
		s.Number = value
	case "photos_directory":
		s.PhotosDirectory = value
	case "width":
		return applyInt(&s.Width, value)
	case "height":
		return applyInt(&s.Height, value)
	case "text":
		s.Text = value
	case "refresh_interval":
		return applyInt(&s.RefreshInterval, value)
	case "fullscreen":
		s.Fullscreen = strings.EqualFold(value, "true")
	case "smart_crop":
		s.SmartCrop = strings.EqualFold(value, "true")
	case "ollama_url":
		s.OllamaURL = value
	case "ollama_model":
		s.OllamaModel = value
	default:
		if s.Extra == nil {
			s.Extra = map[string]string{}
		}
		s.Extra[key] = value
	}
	return nil
}

func applyInt(dst *int, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("not an integer: %q", value)
	}
	*dst = n
	return nil
}

// Save writes the settings back as an editable key=value file
func (s Settings) Save(path string) error {
	var b strings.Builder
	b.WriteString("# Photo Collage Settings\n")
	b.WriteString("# Edit these settings to customize your collage\n\n")
	fmt.Fprintf(&b, "number=%s\n", s.Number)
	fmt.Fprintf(&b, "photos_directory=%s\n", s.PhotosDirectory)
	fmt.Fprintf(&b, "width=%d\n", s.Width)
	fmt.Fprintf(&b, "height=%d\n", s.Height)
	fmt.Fprintf(&b, "text=%s\n", s.Text)
	fmt.Fprintf(&b, "refresh_interval=%d\n", s.RefreshInterval)
	fmt.Fprintf(&b, "fullscreen=%t\n", s.Fullscreen)
	fmt.Fprintf(&b, "smart_crop=%t\n", s.SmartCrop)
	fmt.Fprintf(&b, "ollama_url=%s\n", s.OllamaURL)
	fmt.Fprintf(&b, "ollama_model=%s\n", s.OllamaModel)

	if len(s.Extra) > 0 {
		keys := make([]string, 0, len(s.Extra))
		for k := range s.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s=%s\n", k, s.Extra[k])
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Validate checks that the settings describe a drawable collage
func (s Settings) Validate() error {
	if s.Number == "" {
		return fmt.Errorf("number must not be empty")
	}
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("canvas dimensions must be positive: %dx%d", s.Width, s.Height)
	}
	if s.RefreshInterval < 1 {
		return fmt.Errorf("refresh_interval must be at least 1 second")
	}
	if s.SmartCrop && s.OllamaURL == "" {
		return fmt.Errorf("smart_crop requires ollama_url")
	}
	return nil
}
