package types

// Box represents a normalized bounding box with coordinates in [0,1] range
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Center returns the center point of the box in normalized coordinates
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Subject represents the primary subject detected in a photo
type Subject struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Box        Box     `json:"box"`
	Cx         float64 `json:"cx"`
	Cy         float64 `json:"cy"`
}

// DetectionResult contains the complete subject-detection result from the vision model
type DetectionResult struct {
	Primary     Subject  `json:"primary"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
