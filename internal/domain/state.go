package domain

// Phase enumerates the four mutually exclusive display panels.
type Phase string

const (
	PhasePlaceholder Phase = "placeholder"
	PhaseLoading     Phase = "loading"
	PhaseResult      Phase = "result"
	PhaseError       Phase = "error"
)

// Phases lists every phase in render order.
var Phases = []Phase{PhasePlaceholder, PhaseLoading, PhaseResult, PhaseError}

// UIState is the active panel plus the data that panel needs. Only the fields
// belonging to Phase are ever set.
type UIState struct {
	Phase   Phase  `json:"phase"`
	Image   Handle `json:"image,omitempty"`
	Prompt  string `json:"prompt,omitempty"`
	Message string `json:"message,omitempty"`
}

// Handle is a locally resolvable reference to received image bytes.
type Handle string

// PlaceholderState is the initial state.
func PlaceholderState() UIState { return UIState{Phase: PhasePlaceholder} }

// LoadingState is shown while a fetch is in flight.
func LoadingState() UIState { return UIState{Phase: PhaseLoading} }

// ResultState carries the image handle and the trimmed prompt it was made from.
func ResultState(h Handle, prompt string) UIState {
	return UIState{Phase: PhaseResult, Image: h, Prompt: prompt}
}

// ErrorState carries a human readable message.
func ErrorState(message string) UIState {
	return UIState{Phase: PhaseError, Message: message}
}

// Active reports whether p is the active panel.
func (s UIState) Active(p Phase) bool { return s.Phase == p }

// GenerationRequest is derived at submit time and never stored.
type GenerationRequest struct {
	Prompt      string
	Style       string
	AspectRatio string
}

// Text is the prompt sent to the image service.
func (r GenerationRequest) Text() string {
	return r.Prompt + ", " + r.Style + " style"
}
