// Package generator owns the image generation state machine: it validates a
// prompt, issues exactly one request to the image service at a time and
// reflects the outcome as one of four mutually exclusive UI states.
package generator

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/domain"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/providers/pollinations"
)

// LoadingMessage is shown while a request is in flight.
const LoadingMessage = "Starting image generation..."

// ErrBusy is returned when a submission is dropped because another one is
// still in flight.
var ErrBusy = errors.New("generation already in progress")

// Fetcher performs the single outbound request for a generation.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*domain.Image, error)
}

// ImageStore turns received bytes into a locally addressable handle.
type ImageStore interface {
	Put(img *domain.Image) (domain.Handle, error)
	Revoke(h domain.Handle)
}

// Snapshot is a copy of everything the rendering layer needs.
type Snapshot struct {
	State          domain.UIState `json:"state"`
	Generating     bool           `json:"generating"`
	SubmitDisabled bool           `json:"submit_disabled"`
	LoadingMessage string         `json:"loading_message,omitempty"`
	Style          string         `json:"style"`
	AspectRatio    string         `json:"aspect_ratio"`
	Draft          string         `json:"draft"`
}

// Option customises a Controller.
type Option func(*Controller)

// WithBaseURL sets the image service endpoint prompts are appended to.
func WithBaseURL(base string) Option {
	return func(c *Controller) {
		if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
			c.baseURL = base
		}
	}
}

// WithLogger attaches a logger for state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithStyle sets the initially selected style.
func WithStyle(style string) Option {
	return func(c *Controller) {
		if style = strings.TrimSpace(style); style != "" {
			c.style = style
		}
	}
}

// WithAspectRatio sets the initially selected aspect ratio. Unknown tags are
// ignored.
func WithAspectRatio(tag string) Option {
	return func(c *Controller) {
		if domain.IsAspectRatio(tag) {
			c.aspect = strings.TrimSpace(tag)
		}
	}
}

// Controller is constructed once by the host application and is safe for
// concurrent use. At most one generation is in flight; further submissions
// are dropped, not queued.
type Controller struct {
	fetcher Fetcher
	images  ImageStore
	baseURL string
	logger  zerolog.Logger

	mu         sync.Mutex
	state      domain.UIState
	generating bool
	style      string
	aspect     string
	draft      string
	lastImage  domain.Handle
}

// New builds a controller in the Placeholder state.
func New(fetcher Fetcher, images ImageStore, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		images:  images,
		baseURL: pollinations.DefaultBaseURL,
		logger:  zerolog.Nop(),
		state:   domain.PlaceholderState(),
		style:   domain.DefaultStyle,
		aspect:  domain.DefaultAspectRatio,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Selection carries the style and aspect ratio picked together with a
// submission. Nil fields keep the current selection.
type Selection struct {
	Style       *string
	AspectRatio *string
}

// SelectAspectRatio sets the ratio used by the next submission.
func (c *Controller) SelectAspectRatio(tag string) error {
	tag, err := normalizeAspectRatio(tag)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.aspect = tag
	c.mu.Unlock()
	return nil
}

// SelectStyle sets the style used by the next submission.
func (c *Controller) SelectStyle(style string) error {
	style, err := normalizeStyle(style)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.style = style
	c.mu.Unlock()
	return nil
}

func normalizeAspectRatio(tag string) (string, error) {
	tag = strings.TrimSpace(tag)
	if !domain.IsAspectRatio(tag) {
		return "", &domain.ValidationError{Err: fmt.Errorf("%w: %q", domain.ErrUnknownAspectRatio, tag)}
	}
	return tag, nil
}

func normalizeStyle(style string) (string, error) {
	style = strings.TrimSpace(style)
	if style == "" {
		return "", &domain.ValidationError{Err: domain.ErrEmptyStyle}
	}
	return style, nil
}

// SetDraft records the prompt box contents without submitting.
func (c *Controller) SetDraft(prompt string) {
	c.mu.Lock()
	c.draft = prompt
	c.mu.Unlock()
}

// Submit runs one generation to completion with the current selection.
//
// The in-flight check comes first: while a generation is running every
// submission, even an empty one, returns ErrBusy and changes nothing. Only
// then is the prompt validated, yielding a *domain.ValidationError and the
// Error state when it is empty. A failed request returns the fetch error.
// The returned snapshot always reflects the state after the call.
func (c *Controller) Submit(ctx context.Context, prompt string) (Snapshot, error) {
	return c.SubmitWith(ctx, prompt, Selection{})
}

// SubmitWith is Submit with a selection applied atomically on acceptance. A
// busy rejection leaves the selection untouched; an invalid selection returns
// a *domain.ValidationError without any transition.
func (c *Controller) SubmitWith(ctx context.Context, prompt string, sel Selection) (Snapshot, error) {
	req, snap, err := c.accept(prompt, sel)
	if err != nil {
		return snap, err
	}
	return c.complete(ctx, req)
}

// Start accepts a submission and runs the request in its own goroutine. The
// returned snapshot is taken right after acceptance (Loading on success); the
// channel receives the terminal snapshot and is then closed. On rejection the
// channel is nil.
func (c *Controller) Start(ctx context.Context, prompt string) (Snapshot, <-chan Snapshot, error) {
	return c.StartWith(ctx, prompt, Selection{})
}

// StartWith is Start with a selection, applied like SubmitWith.
func (c *Controller) StartWith(ctx context.Context, prompt string, sel Selection) (Snapshot, <-chan Snapshot, error) {
	req, snap, err := c.accept(prompt, sel)
	if err != nil {
		return snap, nil, err
	}
	done := make(chan Snapshot, 1)
	go func() {
		defer close(done)
		final, _ := c.complete(ctx, req)
		done <- final
	}()
	return snap, done, nil
}

func (c *Controller) accept(prompt string, sel Selection) (domain.GenerationRequest, Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generating {
		c.logger.Debug().Msg("generator: submission dropped, request in flight")
		return domain.GenerationRequest{}, c.snapshotLocked(), ErrBusy
	}
	style, aspect := c.style, c.aspect
	if sel.Style != nil {
		v, err := normalizeStyle(*sel.Style)
		if err != nil {
			return domain.GenerationRequest{}, c.snapshotLocked(), err
		}
		style = v
	}
	if sel.AspectRatio != nil {
		v, err := normalizeAspectRatio(*sel.AspectRatio)
		if err != nil {
			return domain.GenerationRequest{}, c.snapshotLocked(), err
		}
		aspect = v
	}
	c.style, c.aspect = style, aspect
	c.draft = prompt
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		err := &domain.ValidationError{Err: domain.ErrEmptyPrompt}
		c.transitionLocked(domain.ErrorState(domain.UserMessage(err)))
		return domain.GenerationRequest{}, c.snapshotLocked(), err
	}
	c.generating = true
	c.transitionLocked(domain.LoadingState())
	req := domain.GenerationRequest{Prompt: trimmed, Style: c.style, AspectRatio: c.aspect}
	return req, c.snapshotLocked(), nil
}

func (c *Controller) complete(ctx context.Context, req domain.GenerationRequest) (snap Snapshot, err error) {
	target := BuildURL(c.baseURL, req)
	c.logger.Info().
		Str("style", req.Style).
		Str("aspect_ratio", req.AspectRatio).
		Str("url", target).
		Msg("generator: requesting image")

	var handle domain.Handle
	img, err := c.fetch(ctx, target)
	if err == nil {
		handle, err = c.store(img)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.generating = false
	if err != nil {
		c.logger.Warn().Err(err).Msg("generator: generation failed")
		c.transitionLocked(domain.ErrorState(domain.UserMessage(err)))
		return c.snapshotLocked(), err
	}
	if c.lastImage != "" && c.lastImage != handle {
		c.images.Revoke(c.lastImage)
	}
	c.lastImage = handle
	c.transitionLocked(domain.ResultState(handle, req.Prompt))
	return c.snapshotLocked(), nil
}

// fetch converts a panicking fetcher into an error so the in-flight flag is
// always released.
func (c *Controller) fetch(ctx context.Context, target string) (img *domain.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, &domain.TransportError{URL: target, Err: fmt.Errorf("%v", r)}
		}
	}()
	if c.fetcher == nil {
		return nil, &domain.TransportError{URL: target, Err: errors.New("no image service configured")}
	}
	img, err = c.fetcher.Fetch(ctx, target)
	if err == nil && (img == nil || len(img.Data) == 0) {
		err = &domain.TransportError{URL: target, Err: errors.New("empty image response")}
	}
	return img, err
}

func (c *Controller) store(img *domain.Image) (domain.Handle, error) {
	if c.images == nil {
		return "", errors.New("no image store configured")
	}
	h, err := c.images.Put(img)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return h, nil
}

func (c *Controller) transitionLocked(next domain.UIState) {
	prev := c.state.Phase
	c.state = next
	c.logger.Debug().
		Str("from", string(prev)).
		Str("to", string(next.Phase)).
		Msg("generator: state transition")
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:          c.state,
		Generating:     c.generating,
		SubmitDisabled: c.generating,
		Style:          c.style,
		AspectRatio:    c.aspect,
		Draft:          c.draft,
	}
	if c.state.Phase == domain.PhaseLoading {
		snap.LoadingMessage = LoadingMessage
	}
	return snap
}

// BuildURL composes the image service URL for req: the "<prompt>, <style>
// style" text as one escaped path segment, then width and height.
func BuildURL(base string, req domain.GenerationRequest) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = pollinations.DefaultBaseURL
	}
	dims := domain.AspectDimensions(req.AspectRatio)
	return fmt.Sprintf("%s/%s?width=%d&height=%d", base, EncodeComponent(req.Text()), dims.Width, dims.Height)
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use as a single path segment. It
// leaves A-Z a-z 0-9 - _ . ! ~ * ' ( ) unescaped, as browsers'
// encodeURIComponent does.
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
