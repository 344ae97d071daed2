package share

import (
	"testing"
	"time"
)

func TestDownloadFilename(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	if got := DownloadFilename(now); got != "ai-generated-image-1700000000123.jpg" {
		t.Fatalf("DownloadFilename() = %q", got)
	}
}

func TestShareTexts(t *testing.T) {
	if got := ShareText(" a red bicycle "); got != `Check out this AI-generated image: "a red bicycle"` {
		t.Fatalf("ShareText() = %q", got)
	}
	want := `Check out this AI-generated image: "cat" - Created with AI Image Generator http://localhost:8080/`
	if got := FallbackShareText("cat", "http://localhost:8080/"); got != want {
		t.Fatalf("FallbackShareText() = %q, want %q", got, want)
	}
	want = `Check out this AI-generated image: "cat" - Created with AI Image Generator`
	if got := FallbackShareText("cat", ""); got != want {
		t.Fatalf("FallbackShareText() without url = %q", got)
	}
}

func TestNewPayload(t *testing.T) {
	p := NewPayload("cat", "/v1/images/blob:1", "http://host/")
	if p.Title != ShareTitle || p.Filename != ShareFilename || p.ContentType != "image/jpeg" {
		t.Fatalf("unexpected payload: %+v", p)
	}
	if p.FileURL != "/v1/images/blob:1" {
		t.Fatalf("unexpected file url: %s", p.FileURL)
	}
	if p.Notification != ShareCopied {
		t.Fatalf("unexpected notification: %+v", p.Notification)
	}
}
