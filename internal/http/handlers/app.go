package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/donate"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/generator"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/infra"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/storage"
)

// App carries the single generation controller and its collaborators.
type App struct {
	Config    *infra.Config
	Logger    infra.Logger
	Generator *generator.Controller
	Images    *storage.Blobs
	Donate    *donate.Panel

	now func() time.Time
}

// NewApp wires the handler container. A nil logger defaults to a no-op.
func NewApp(cfg *infra.Config, logger *infra.Logger, gen *generator.Controller, images *storage.Blobs, panel *donate.Panel) *App {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	if panel == nil {
		panel = donate.NewPanel()
	}
	if cfg == nil {
		cfg = &infra.Config{PublicBaseURL: "http://localhost:8080", DefaultLocale: "en"}
	}
	return &App{
		Config:    cfg,
		Logger:    l,
		Generator: gen,
		Images:    images,
		Donate:    panel,
		now:       time.Now,
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, errorBody{Error: errorDetail{Code: errCode, Message: message}})
}
