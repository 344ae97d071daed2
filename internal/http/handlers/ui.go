package handlers

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/domain"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/donate"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/generator"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/middleware"
	"github.com/binodji2005/nistha-free-ai-image-generator/internal/share"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"imageURL": func(h domain.Handle) string { return "/v1/images/" + url.PathEscape(string(h)) },
	"active":   func(s domain.UIState, p string) bool { return s.Phase == domain.Phase(p) },
}).ParseFS(templateFS, "templates/index.html"))

var labels = map[string]map[string]string{
	"en": {
		"title":       "AI Image Generator",
		"prompt":      "Describe the image you want",
		"style":       "Style",
		"aspect":      "Aspect ratio",
		"generate":    "Generate",
		"generating":  "Generating...",
		"placeholder": "Your image will appear here",
		"download":    "Download",
		"share":       "Share",
		"regenerate":  "Regenerate",
		"retry":       "Try again",
		"examples":    "Try an example",
		"donate":      "Support this project",
		"upi":         "Pay with UPI",
		"close":       "Close",
	},
	"id": {
		"title":       "Generator Gambar AI",
		"prompt":      "Jelaskan gambar yang Anda inginkan",
		"style":       "Gaya",
		"aspect":      "Rasio aspek",
		"generate":    "Buat",
		"generating":  "Membuat...",
		"placeholder": "Gambar Anda akan muncul di sini",
		"download":    "Unduh",
		"share":       "Bagikan",
		"regenerate":  "Buat ulang",
		"retry":       "Coba lagi",
		"examples":    "Coba contoh",
		"donate":      "Dukung proyek ini",
		"upi":         "Bayar dengan UPI",
		"close":       "Tutup",
	},
}

type pageData struct {
	Locale       string
	L            map[string]string
	Snap         generator.Snapshot
	Options      optionsResponse
	Donate       donate.View
	Notification *share.Notification
	ShareText    string
}

var notices = map[string]share.Notification{
	"download-failed": share.DownloadFailed,
	"share-copied":    share.ShareCopied,
}

// Index renders the page with exactly the active panel visible.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	l, ok := labels[locale]
	if !ok {
		l = labels["en"]
	}
	snap := a.Generator.Snapshot()
	data := pageData{
		Locale:  locale,
		L:       l,
		Snap:    snap,
		Options: buildOptions(),
		Donate:  a.Donate.View(),
	}
	if n, ok := notices[r.URL.Query().Get("notice")]; ok {
		data.Notification = &n
	}
	if snap.State.Phase == domain.PhaseResult {
		data.ShareText = share.FallbackShareText(snap.State.Prompt, a.pageURL())
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		a.Logger.Error().Err(err).Msg("render page")
	}
}

// FormGenerate handles the page form. It blocks until the generation ends
// and then redirects back to the page.
func (a *App) FormGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	var sel generator.Selection
	if style := r.PostForm.Get("style"); style != "" {
		sel.Style = &style
	}
	if ratio := r.PostForm.Get("aspect_ratio"); ratio != "" {
		sel.AspectRatio = &ratio
	}
	kind := generator.CmdGenerate
	switch r.PostForm.Get("action") {
	case string(generator.CmdRetry):
		kind = generator.CmdRetry
	case string(generator.CmdRegenerate):
		kind = generator.CmdRegenerate
	}
	_, err := a.Generator.Dispatch(context.WithoutCancel(r.Context()), generator.Command{
		Kind:      kind,
		Prompt:    r.PostForm.Get("prompt"),
		Selection: sel,
	})
	if selectionErrorCode(err) != "" {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// FormSelect handles the aspect ratio and style selectors without submitting.
func (a *App) FormSelect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	if prompt, ok := r.PostForm["prompt"]; ok && len(prompt) > 0 {
		a.Generator.SetDraft(prompt[0])
	}
	var cmd generator.Command
	switch chi.URLParam(r, "kind") {
	case "aspect":
		cmd = generator.Command{Kind: generator.CmdSelectAspect, Value: r.PostForm.Get("value")}
	case "style":
		cmd = generator.Command{Kind: generator.CmdSelectStyle, Value: r.PostForm.Get("value")}
	case "example":
		idx, _ := strconv.Atoi(strings.TrimSpace(r.PostForm.Get("value")))
		cmd = generator.Command{Kind: generator.CmdUseExample, Example: idx}
	default:
		http.NotFound(w, r)
		return
	}
	if _, err := a.Generator.Dispatch(r.Context(), cmd); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// FormDonate toggles the donation panel from the page.
func (a *App) FormDonate(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.Donate.Apply(donate.Action(chi.URLParam(r, "action"))); !ok {
		http.Error(w, "unknown donate action", http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/#donate", http.StatusSeeOther)
}
