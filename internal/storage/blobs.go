package storage

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/domain"
)

// HandlePrefix marks handles minted by Blobs.
const HandlePrefix = "blob:"

// ErrNotFound is returned for unknown or revoked handles.
var ErrNotFound = domain.ErrNotFound

// Blob is an image held in memory behind a handle.
type Blob struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
	ETag        string
	CreatedAt   time.Time
}

// Blobs keeps received images for the lifetime of the process, addressed by
// opaque handles. Nothing is written to disk.
type Blobs struct {
	mu    sync.RWMutex
	items map[domain.Handle]*Blob
	now   func() time.Time
}

// NewBlobs returns an empty store.
func NewBlobs() *Blobs {
	return &Blobs{items: make(map[domain.Handle]*Blob), now: time.Now}
}

// Put stores img and returns a fresh handle for it.
func (b *Blobs) Put(img *domain.Image) (domain.Handle, error) {
	if b == nil {
		return "", errors.New("storage: no blob store configured")
	}
	if img == nil || len(img.Data) == 0 {
		return "", errors.New("storage: empty image")
	}
	data := append([]byte(nil), img.Data...)
	contentType := strings.TrimSpace(img.ContentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	blob := &Blob{
		Data:        data,
		ContentType: contentType,
		ETag:        ContentHash(data),
		CreatedAt:   b.now(),
	}
	// Header only; pixels are never decoded.
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		blob.Width = cfg.Width
		blob.Height = cfg.Height
	}
	h := domain.Handle(HandlePrefix + uuid.NewString())
	b.mu.Lock()
	b.items[h] = blob
	b.mu.Unlock()
	return h, nil
}

// Get resolves a handle.
func (b *Blobs) Get(h domain.Handle) (*Blob, error) {
	if b == nil {
		return nil, ErrNotFound
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	blob, ok := b.items[h]
	if !ok {
		return nil, ErrNotFound
	}
	return blob, nil
}

// Revoke drops a handle. Unknown handles are ignored.
func (b *Blobs) Revoke(h domain.Handle) {
	if b == nil || h == "" {
		return
	}
	b.mu.Lock()
	delete(b.items, h)
	b.mu.Unlock()
}

// Len reports how many handles are live.
func (b *Blobs) Len() int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// ContentHash is the hex xxHash64 of data, used as an ETag.
func ContentHash(data []byte) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, xxhash.Sum64(data)))
}
