package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/domain"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/generator"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/middleware"
)

type generateRequest struct {
	Prompt      string  `json:"prompt"`
	Style       *string `json:"style"`
	AspectRatio *string `json:"aspect_ratio"`
}

type generateResponse struct {
	Accepted bool               `json:"accepted"`
	Snapshot generator.Snapshot `json:"snapshot"`
}

type selectRequest struct {
	Value string `json:"value"`
}

// State returns the current controller snapshot.
func (a *App) State(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Generator.Snapshot())
}

// Generate submits a prompt. By default the request runs in the background
// and the Loading snapshot is returned with 202; ?wait=true blocks until the
// terminal state.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.submit(w, r, req.Prompt, generator.Selection{Style: req.Style, AspectRatio: req.AspectRatio})
}

// Retry re-enters the submit flow with the body prompt, or the last draft when
// the body is empty.
func (a *App) Retry(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	prompt := req.Prompt
	if strings.TrimSpace(prompt) == "" {
		prompt = a.Generator.Snapshot().Draft
	}
	a.submit(w, r, prompt, generator.Selection{Style: req.Style, AspectRatio: req.AspectRatio})
}

// selectionErrorCode names a rejected style or aspect ratio, "" otherwise.
func selectionErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyStyle):
		return "invalid_style"
	case errors.Is(err, domain.ErrUnknownAspectRatio):
		return "invalid_aspect_ratio"
	}
	return ""
}

func (a *App) submit(w http.ResponseWriter, r *http.Request, prompt string, sel generator.Selection) {
	// The fetch outlives the request; only the controller decides when it ends.
	ctx := context.WithoutCancel(r.Context())
	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	log := a.Logger.With().Str("request_id", middleware.RequestIDFromContext(r.Context())).Logger()

	var (
		snap generator.Snapshot
		err  error
	)
	if wait {
		snap, err = a.Generator.SubmitWith(ctx, prompt, sel)
	} else {
		var done <-chan generator.Snapshot
		snap, done, err = a.Generator.StartWith(ctx, prompt, sel)
		if done != nil {
			go func() {
				final := <-done
				log.Debug().Str("phase", string(final.State.Phase)).Msg("generation finished")
			}()
		}
	}

	var verr *domain.ValidationError
	switch {
	case errors.Is(err, generator.ErrBusy):
		a.json(w, http.StatusConflict, generateResponse{Accepted: false, Snapshot: snap})
	case selectionErrorCode(err) != "":
		a.error(w, http.StatusUnprocessableEntity, selectionErrorCode(err), err.Error())
	case errors.As(err, &verr):
		a.json(w, http.StatusUnprocessableEntity, generateResponse{Accepted: false, Snapshot: snap})
	case err != nil:
		log.Warn().Err(err).Msg("generation failed")
		a.json(w, http.StatusBadGateway, generateResponse{Accepted: true, Snapshot: snap})
	case wait:
		a.json(w, http.StatusOK, generateResponse{Accepted: true, Snapshot: snap})
	default:
		a.json(w, http.StatusAccepted, generateResponse{Accepted: true, Snapshot: snap})
	}
}

// SelectAspectRatio sets the ratio used by the next submission.
func (a *App) SelectAspectRatio(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Generator.SelectAspectRatio(req.Value); err != nil {
		a.error(w, http.StatusUnprocessableEntity, "invalid_aspect_ratio", err.Error())
		return
	}
	a.json(w, http.StatusOK, a.Generator.Snapshot())
}

// SelectStyle sets the style used by the next submission.
func (a *App) SelectStyle(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Generator.SelectStyle(req.Value); err != nil {
		a.error(w, http.StatusUnprocessableEntity, "invalid_style", err.Error())
		return
	}
	a.json(w, http.StatusOK, a.Generator.Snapshot())
}

type aspectOption struct {
	Tag    string `json:"tag"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type styleOption struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

type optionsResponse struct {
	AspectRatios []aspectOption `json:"aspect_ratios"`
	Styles       []styleOption  `json:"styles"`
	Examples     []string       `json:"examples"`
}

func buildOptions() optionsResponse {
	var out optionsResponse
	for _, tag := range domain.AspectRatios() {
		d := domain.AspectDimensions(tag)
		out.AspectRatios = append(out.AspectRatios, aspectOption{Tag: tag, Width: d.Width, Height: d.Height})
	}
	for _, tag := range domain.Styles() {
		out.Styles = append(out.Styles, styleOption{Tag: tag, Label: domain.StyleLabel(tag)})
	}
	out.Examples = domain.ExamplePrompts()
	return out
}

// Options lists the selector values and example prompts.
func (a *App) Options(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, buildOptions())
}

// UseExample copies an example prompt into the draft.
func (a *App) UseExample(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "index must be a number")
		return
	}
	snap, err := a.Generator.Dispatch(r.Context(), generator.Command{Kind: generator.CmdUseExample, Example: idx})
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "example not found")
		return
	}
	a.json(w, http.StatusOK, snap)
}

// RandomExample returns one example prompt.
func (a *App) RandomExample(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"prompt": domain.RandomExample()})
}
