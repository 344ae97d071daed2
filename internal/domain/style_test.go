package domain

import "testing"

func TestStyleLabel(t *testing.T) {
	tests := map[string]string{
		"photorealistic": "Photorealistic",
		"oil-painting":   "Oil Painting",
		"3d-render":      "3D Render",
		"  digital-art ": "Digital Art",
		"":               "",
	}
	for in, want := range tests {
		if got := StyleLabel(in); got != want {
			t.Fatalf("StyleLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultStyleIsListed(t *testing.T) {
	if !IsListedStyle(DefaultStyle) {
		t.Fatalf("default style %q not in selector list", DefaultStyle)
	}
	if IsListedStyle("vaporwave") {
		t.Fatalf("unexpected listed style")
	}
}

func TestGenerationRequestText(t *testing.T) {
	req := GenerationRequest{Prompt: "a red bicycle", Style: "sketch", AspectRatio: "16:9"}
	if got := req.Text(); got != "a red bicycle, sketch style" {
		t.Fatalf("Text() = %q", got)
	}
}
