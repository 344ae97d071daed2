package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		genURLOnly, genExample = false, false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateURLOnly(t *testing.T) {
	out, err := execute(t, "generate", "--url-only", "--base-url", "https://img.test/prompt",
		"--style", "sketch", "--aspect", "16:9", "a red bicycle")
	require.NoError(t, err)
	assert.Equal(t, "https://img.test/prompt/a%20red%20bicycle%2C%20sketch%20style?width=1280&height=720\n", out)
}

func TestGenerateRejectsUnknownAspect(t *testing.T) {
	_, err := execute(t, "generate", "--url-only", "--aspect", "5:4", "--style", "sketch", "cat")
	require.Error(t, err)
}

func TestGenerateSavesImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "width=1024&height=1024", r.URL.RawQuery)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer srv.Close()

	dir := t.TempDir()
	out, err := execute(t, "generate", "--base-url", srv.URL, "--out", dir,
		"--style", "anime", "--aspect", "1:1", "dog")
	require.NoError(t, err)
	assert.Contains(t, out, "Image downloaded successfully!")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "ai-generated-image-"))
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestGenerateReportsServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := execute(t, "generate", "--base-url", srv.URL, "--out", t.TempDir(),
		"--style", "anime", "--aspect", "1:1", "cat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to generate image. Please try again.")
	assert.Contains(t, err.Error(), "500")
}

func TestOptionsListsEverything(t *testing.T) {
	out, err := execute(t, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "21:9")
	assert.Contains(t, out, "1280 x 548")
	assert.Contains(t, out, "photorealistic")
	assert.Contains(t, out, "8. A futuristic robot in a high-tech laboratory")
}
