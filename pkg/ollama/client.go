package ollama

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/Nivolast/photo-collage/pkg/types"
)

// defaultTimeout bounds a single subject query. Tile crops are small and the
// collage pass is sequential, so a hung model must not stall the whole grid.
const defaultTimeout = 60 * time.Second

// Client wraps the Ollama API client as a collage subject finder
type Client struct {
	client *api.Client
}

// NewClient creates a new Ollama client from a server URL
func NewClient(ollamaURL string) (*Client, error) {
	parsedURL, err := url.Parse(ollamaURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %v", err)
	}

	// Strip any path like /api/chat; the SDK builds its own endpoints.
	baseURL := &url.URL{
		Scheme: parsedURL.Scheme,
		Host:   parsedURL.Host,
	}

	return &Client{client: api.NewClient(baseURL, http.DefaultClient)}, nil
}

// DetectSubject asks the vision model where the main subject of a photo sits
// and parses the JSON reply into a DetectionResult
func (c *Client) DetectSubject(ctx context.Context, model, prompt, imgB64 string) (*types.DetectionResult, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	imgBytes, err := base64.StdEncoding.DecodeString(imgB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %v", err)
	}

	streamFalse := false
	req := &api.ChatRequest{
		Model: model,
		Messages: []api.Message{
			{
				Role:    "user",
				Content: prompt,
				Images:  []api.ImageData{api.ImageData(imgBytes)},
			},
		},
		Stream: &streamFalse,
	}

	var responseContent string
	err = c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		responseContent = resp.Message.Content
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama chat error: %v", err)
	}

	if responseContent == "" {
		return nil, fmt.Errorf("empty response from ollama")
	}

	return parseDetectionResult(responseContent)
}

// centeredFallback is returned when the model reply cannot be used; the
// cropper treats a centered box as a plain center crop.
func centeredFallback(label, description string, tags ...string) *types.DetectionResult {
	return &types.DetectionResult{
		Primary: types.Subject{
			Label:      label,
			Confidence: 0.1,
			Box:        types.Box{X: 0.25, Y: 0.25, W: 0.5, H: 0.5},
			Cx:         0.5,
			Cy:         0.5,
		},
		Description: description,
		Tags:        tags,
	}
}

// parseDetectionResult parses the JSON response from the vision model
func parseDetectionResult(raw string) (*types.DetectionResult, error) {
	raw = sanitizeModelJSON(raw)

	if !strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return centeredFallback("non-json", "Model returned non-JSON response", "non-json", "fallback"), nil
	}

	var result types.DetectionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// Conservative brace-slice retry before giving up
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start >= 0 && end > start {
			if err2 := json.Unmarshal([]byte(raw[start:end+1]), &result); err2 != nil {
				return centeredFallback("parse error", "Failed to parse model response", "parse-error", "fallback"), nil
			}
		} else {
			return centeredFallback("no json found", "No valid JSON found in response", "no-json", "fallback"), nil
		}
	}

	return &result, nil
}

// sanitizeModelJSON removes code fences, comments, and trailing commas from JSON response
func sanitizeModelJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, "```") {
		if i := strings.Index(raw, "\n"); i >= 0 {
			raw = raw[i+1:]
		}
		if j := strings.LastIndex(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
	}
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, "`")

	reBlock := regexp.MustCompile(`(?s)/\*.*?\*/`)
	raw = reBlock.ReplaceAllString(raw, "")

	reLine := regexp.MustCompile(`(?m)^\s*//.*$`)
	raw = reLine.ReplaceAllString(raw, "")
	reInline := regexp.MustCompile(`(?m)//.*$`)
	raw = reInline.ReplaceAllString(raw, "")

	reTrailing := regexp.MustCompile(`,(\s*[}\]])`)
	raw = reTrailing.ReplaceAllString(raw, "$1")

	// Keep only the outermost {...}
	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			raw = raw[start : end+1]
		}
	}
	return strings.TrimSpace(raw)
}
