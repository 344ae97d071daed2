package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/domain"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/share"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/storage"
)

func (a *App) loadBlob(w http.ResponseWriter, r *http.Request) (domain.Handle, *storage.Blob, bool) {
	handle := domain.Handle(chi.URLParam(r, "handle"))
	blob, err := a.Images.Get(handle)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "image not found")
			return "", nil, false
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load image")
		return "", nil, false
	}
	return handle, blob, true
}

// ImageGet serves the bytes behind a result handle.
func (a *App) ImageGet(w http.ResponseWriter, r *http.Request) {
	_, blob, ok := a.loadBlob(w, r)
	if !ok {
		return
	}
	etag := `"` + blob.ETag + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "private, no-cache")
	if match := r.Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeBlob(w, blob)
}

// ImageDownload serves the image as an attachment.
func (a *App) ImageDownload(w http.ResponseWriter, r *http.Request) {
	_, blob, ok := a.loadBlob(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", share.DownloadFilename(a.now())))
	w.Header().Set("Cache-Control", "no-store")
	writeBlob(w, blob)
}

// ImageShare returns the share payload for the current result.
func (a *App) ImageShare(w http.ResponseWriter, r *http.Request) {
	handle, _, ok := a.loadBlob(w, r)
	if !ok {
		return
	}
	snap := a.Generator.Snapshot()
	if snap.State.Phase != domain.PhaseResult || snap.State.Image != handle {
		a.error(w, http.StatusNotFound, "not_found", "image is not the current result")
		return
	}
	a.json(w, http.StatusOK, share.NewPayload(snap.State.Prompt, a.imageURL(handle), a.pageURL()))
}

func (a *App) imageURL(h domain.Handle) string {
	return a.Config.PublicBaseURL + "/v1/images/" + url.PathEscape(string(h))
}

func (a *App) pageURL() string {
	return a.Config.PublicBaseURL + "/"
}

func writeBlob(w http.ResponseWriter, blob *storage.Blob) {
	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(blob.Data)))
	if blob.Width > 0 && blob.Height > 0 {
		w.Header().Set("X-Image-Width", strconv.Itoa(blob.Width))
		w.Header().Set("X-Image-Height", strconv.Itoa(blob.Height))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob.Data)
}
