package client

import (
	"context"

	"github.com/Nivolast/photo-collage/pkg/types"
)

// VisionClient locates the primary subject of a photo using a vision model.
// Implementations must be safe for sequential reuse across a generation pass.
type VisionClient interface {
	DetectSubject(ctx context.Context, model, prompt, imgB64 string) (*types.DetectionResult, error)
}
