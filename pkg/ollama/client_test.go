package ollama

import (
	"strings"
	"testing"
)

func TestParseDetectionResultCleanJSON(t *testing.T) {
	raw := `{"primary":{"label":"dog","confidence":0.92,"box":{"x":0.1,"y":0.2,"w":0.5,"h":0.6},"cx":0.35,"cy":0.5},"description":"a dog on grass","tags":["dog","grass"]}`

	result, err := parseDetectionResult(raw)
	if err != nil {
		t.Fatalf("parseDetectionResult failed: %v", err)
	}
	if result.Primary.Label != "dog" {
		t.Errorf("label = %q, want \"dog\"", result.Primary.Label)
	}
	if result.Primary.Box.W != 0.5 {
		t.Errorf("box width = %f, want 0.5", result.Primary.Box.W)
	}
}

func TestParseDetectionResultFencedJSON(t *testing.T) {
	raw := "```json\n{\"primary\":{\"label\":\"cat\",\"confidence\":0.8,\"box\":{\"x\":0.2,\"y\":0.2,\"w\":0.4,\"h\":0.4},\"cx\":0.4,\"cy\":0.4},\"description\":\"a cat\",\"tags\":[\"cat\"]}\n```"

	result, err := parseDetectionResult(raw)
	if err != nil {
		t.Fatalf("parseDetectionResult failed: %v", err)
	}
	if result.Primary.Label != "cat" {
		t.Errorf("label = %q, want \"cat\"", result.Primary.Label)
	}
}

func TestParseDetectionResultNonJSON(t *testing.T) {
	result, err := parseDetectionResult("I see a lovely photo of a sunset over water.")
	if err != nil {
		t.Fatalf("non-JSON replies must degrade, not error: %v", err)
	}
	if result.Primary.Cx != 0.5 || result.Primary.Cy != 0.5 {
		t.Errorf("fallback should be centered, got (%f, %f)", result.Primary.Cx, result.Primary.Cy)
	}
	if result.Primary.Confidence >= 0.5 {
		t.Errorf("fallback confidence should be low, got %f", result.Primary.Confidence)
	}
}

func TestSanitizeModelJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"code fences",
			"```json\n{\"a\": 1}\n```",
			`{"a": 1}`,
		},
		{
			"trailing comma",
			`{"a": 1,}`,
			`{"a": 1}`,
		},
		{
			"line comment",
			"{\n// the value\n\"a\": 1}",
			"{\n\n\"a\": 1}",
		},
		{
			"surrounding prose",
			`Here you go: {"a": 1} hope that helps`,
			`{"a": 1}`,
		},
	}

	for _, tc := range cases {
		got := sanitizeModelJSON(tc.in)
		if strings.TrimSpace(got) != strings.TrimSpace(tc.want) {
			t.Errorf("%s: sanitizeModelJSON(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestNewClientRejectsBadURL(t *testing.T) {
	if _, err := NewClient("://not a url"); err == nil {
		t.Error("expected an error for an unparsable URL")
	}
}
