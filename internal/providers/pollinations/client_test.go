package pollinations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/domain"
)

func TestClientFetchReturnsImage(t *testing.T) {
	var gotPath, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xff, 0xd8, 0xff, 0xe0})
	}))
	defer ts.Close()

	client := NewClient(Options{BaseURL: ts.URL + "/prompt/"})
	if client.BaseURL() != ts.URL+"/prompt" {
		t.Fatalf("BaseURL not normalised: %s", client.BaseURL())
	}
	img, err := client.Fetch(context.Background(), ts.URL+"/prompt/a%20cat%2C%20anime%20style?width=1280&height=720")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if img.ContentType != "image/jpeg" {
		t.Fatalf("unexpected content type: %s", img.ContentType)
	}
	if len(img.Data) != 4 {
		t.Fatalf("unexpected body length: %d", len(img.Data))
	}
	if gotPath != "/prompt/a%20cat%2C%20anime%20style" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotQuery != "width=1280&height=720" {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
}

func TestClientFetchSniffsMissingContentType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(png)
	}))
	defer ts.Close()

	img, err := NewClient(Options{}).Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if img.ContentType != "image/png" {
		t.Fatalf("expected sniffed image/png, got %s", img.ContentType)
	}
}

func TestClientFetchNon2xxIsResponseError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("still an image?"))
	}))
	defer ts.Close()

	_, err := NewClient(Options{}).Fetch(context.Background(), ts.URL)
	var rerr *domain.ResponseError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected ResponseError, got %v", err)
	}
	if rerr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rerr.StatusCode)
	}
	if rerr.Status != "500 Internal Server Error" {
		t.Fatalf("unexpected status text: %q", rerr.Status)
	}
}

func TestClientFetchTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := ts.URL
	ts.Close()

	_, err := NewClient(Options{}).Fetch(context.Background(), addr)
	var terr *domain.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if terr.URL != addr {
		t.Fatalf("unexpected url on error: %s", terr.URL)
	}
}

func TestClientFetchHonoursTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	_, err := NewClient(Options{Timeout: 50 * time.Millisecond}).Fetch(context.Background(), ts.URL)
	var terr *domain.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestNilClient(t *testing.T) {
	var c *Client
	if c.BaseURL() != DefaultBaseURL {
		t.Fatalf("nil client should report default base")
	}
	if _, err := c.Fetch(context.Background(), "http://example.com"); err == nil {
		t.Fatalf("expected error from nil client")
	}
}
