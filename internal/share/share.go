// Package share builds the payloads used to save or share a generated image.
package share

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ShareTitle is the title passed to platform share sheets.
	ShareTitle = "AI Generated Image"
	// ShareFilename names the file attached to a platform share.
	ShareFilename = "ai-generated-image.jpg"
	// ShareContentType is the type announced for the shared file.
	ShareContentType = "image/jpeg"
	appName          = "AI Image Generator"
)

// NotificationType is the toast colour.
type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
)

// Notification is a short-lived toast shown after a download or share.
type Notification struct {
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
}

var (
	DownloadSucceeded = Notification{Type: NotifySuccess, Message: "Image downloaded successfully!"}
	DownloadFailed    = Notification{Type: NotifyError, Message: "Failed to download image."}
	ShareCopied       = Notification{Type: NotifySuccess, Message: "Share text copied to clipboard!"}
)

// DownloadFilename names a saved image after the moment it was saved.
func DownloadFilename(now time.Time) string {
	return fmt.Sprintf("ai-generated-image-%d.jpg", now.UnixMilli())
}

// ShareText is the message attached to a native share.
func ShareText(prompt string) string {
	return `Check out this AI-generated image: "` + strings.TrimSpace(prompt) + `"`
}

// FallbackShareText is copied to the clipboard when native sharing is not
// available. pageURL may be empty.
func FallbackShareText(prompt, pageURL string) string {
	text := ShareText(prompt) + " - Created with " + appName
	if pageURL = strings.TrimSpace(pageURL); pageURL != "" {
		text += " " + pageURL
	}
	return text
}

// Payload is everything a client needs for either share path.
type Payload struct {
	Title        string       `json:"title"`
	Text         string       `json:"text"`
	Filename     string       `json:"filename"`
	ContentType  string       `json:"content_type"`
	FileURL      string       `json:"file_url"`
	FallbackText string       `json:"fallback_text"`
	Notification Notification `json:"notification"`
}

// NewPayload assembles a Payload for the image at fileURL.
func NewPayload(prompt, fileURL, pageURL string) Payload {
	return Payload{
		Title:        ShareTitle,
		Text:         ShareText(prompt),
		Filename:     ShareFilename,
		ContentType:  ShareContentType,
		FileURL:      fileURL,
		FallbackText: FallbackShareText(prompt, pageURL),
		Notification: ShareCopied,
	}
}
