package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreSave(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	path, err := store.Save(context.Background(), "ai-generated-image-1.jpg", []byte("jpeg"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Dir(path) != store.Dir() {
		t.Fatalf("unexpected path %q for dir %q", path, store.Dir())
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "jpeg" {
		t.Fatalf("content mismatch: %q", got)
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "a.jpg", want: "a.jpg"},
		{name: "leading slash", in: "/a.jpg", want: "a.jpg"},
		{name: "dot prefix", in: "./sub/a.jpg", want: "sub/a.jpg"},
		{name: "backslashes", in: `sub\a.jpg`, want: "sub/a.jpg"},
		{name: "traversal", in: "../a.jpg", wantErr: true},
		{name: "nested traversal", in: "sub/../../a.jpg", wantErr: true},
		{name: "empty", in: "  ", wantErr: true},
		{name: "dot", in: ".", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sanitizeName(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("sanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFileStoreSaveHonoursCancelledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Save(ctx, "a.jpg", []byte("x")); err == nil {
		t.Fatalf("expected context error")
	}
}
