package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEmptyPrompt        = errors.New("empty prompt")
	ErrUnknownAspectRatio = errors.New("unknown aspect ratio")
	ErrEmptyStyle         = errors.New("empty style")
	ErrNotFound           = errors.New("not found")
)

// ValidationMessage is shown when the prompt is empty after trimming.
const ValidationMessage = "Please enter a description for your image."

// FailurePrefix precedes every transport or response failure message.
const FailurePrefix = "Failed to generate image. Please try again. "

// ValidationError reports unusable user input. No request is made.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrEmptyPrompt) {
		return ValidationMessage
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// TransportError reports that the request never produced a response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "network error"
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseError reports a non-2xx status from the image service.
type ResponseError struct {
	StatusCode int
	Status     string
}

func (e *ResponseError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return "Failed to fetch image: " + status
}

// UserMessage renders err the way the error panel shows it.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return FailurePrefix + err.Error()
}
