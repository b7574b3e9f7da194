package detection

import (
	"context"
	"strings"

	"github.com/Nivolast/photo-collage/pkg/client"
	"github.com/Nivolast/photo-collage/pkg/types"
)

// SubjectPrompt asks the vision model for the dominant subject of a photo.
// Tiles in the collage are tiny squares, so all that matters downstream is a
// tight box around whatever should survive the crop.
const SubjectPrompt = `You are an image subject locator.

Return JSON only:
{
  "primary": {
    "label": "string",
    "confidence": 0.0,
    "box": {"x": 0.0, "y": 0.0, "w": 0.0, "h": 0.0},
    "cx": 0.0,
    "cy": 0.0
  },
  "description": "short neutral sentence (<= 20 words)",
  "tags": ["tag1", "tag2", "tag3"]
}

HARD RULES
- All coordinates are normalized to [0,1] (NOT pixels).
- The box should tightly include the visually dominant subject (prefer people/faces/animals; else the most central salient object).
- Description must be brief and factual. Do not guess real identities.
- Tags: lowercase, concise, no punctuation or duplicates.
- If no subject is found, return:
  {
    "primary":{"label":"none","confidence":0.0,"box":{"x":0.25,"y":0.25,"w":0.50,"h":0.50},"cx":0.5,"cy":0.5},
    "description":"centered generic scene",
    "tags":["generic","center","scene"]
  }
- JSON only. No markdown, no code fences, no comments, no trailing commas.`

// Finder locates photo subjects through a vision client
type Finder struct {
	client client.VisionClient
	model  string
}

// NewFinder creates a finder that queries the given model
func NewFinder(c client.VisionClient, model string) *Finder {
	return &Finder{client: c, model: model}
}

// FindSubject detects the primary subject box of an encoded photo
func (f *Finder) FindSubject(ctx context.Context, imgB64 string) (*types.DetectionResult, error) {
	result, err := f.client.DetectSubject(ctx, f.model, SubjectPrompt, imgB64)
	if err != nil {
		return nil, err
	}
	return sanitizeResult(result), nil
}

// FocusPoint detects the subject and returns the normalized crop anchor: the
// point inside the subject box nearest the image center, so mild offsets keep
// more context while strong offsets still follow the subject.
func (f *Finder) FocusPoint(ctx context.Context, imgB64 string) (float64, float64, error) {
	result, err := f.FindSubject(ctx, imgB64)
	if err != nil {
		return 0.5, 0.5, err
	}
	box := result.Primary.Box
	cx := clamp(0.5, box.X, box.X+box.W)
	cy := clamp(0.5, box.Y, box.Y+box.H)
	return cx, cy, nil
}

// sanitizeResult normalizes the model output so callers never see coordinates
// outside [0,1], duplicate tags, or fallback replies disguised as detections
func sanitizeResult(result *types.DetectionResult) *types.DetectionResult {
	result.Primary.Box = clampBox(result.Primary.Box)
	result.Tags = normalizeTags(result.Tags)

	if strings.ToLower(result.Primary.Label) == "none" {
		return result
	}

	fallbackIndicators := []string{"unclear", "empty", "parse", "error", "fallback", "non-json", "generic"}
	for _, indicator := range fallbackIndicators {
		if strings.Contains(strings.ToLower(result.Primary.Label), indicator) ||
			strings.Contains(strings.ToLower(result.Description), indicator) {
			result.Primary.Label = "none"
			result.Primary.Confidence = 0.0
			result.Primary.Box = types.Box{X: 0.25, Y: 0.25, W: 0.5, H: 0.5}
			break
		}
	}

	return result
}

// clamp ensures a value is within the given bounds
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampBox forces box coordinates into [0,1]
func clampBox(b types.Box) types.Box {
	return types.Box{
		X: clamp(b.X, 0, 1),
		Y: clamp(b.Y, 0, 1),
		W: clamp(b.W, 0, 1),
		H: clamp(b.H, 0, 1),
	}
}

// normalizeTags lowercases, deduplicates, and limits tags to 5 entries
func normalizeTags(tags []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, 5)
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == 5 {
			break
		}
	}
	return out
}
