package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultStyle is the style selected before the user picks one.
const DefaultStyle = "photorealistic"

var styles = []string{
	"photorealistic",
	"digital-art",
	"anime",
	"oil-painting",
	"watercolor",
	"sketch",
	"3d-render",
	"cyberpunk",
	"fantasy",
	"minimalist",
}

// Styles returns the selector list offered by the UI. The controller itself
// accepts any non-empty style text.
func Styles() []string {
	out := make([]string, len(styles))
	copy(out, styles)
	return out
}

// IsListedStyle reports whether tag is one of the selector entries.
func IsListedStyle(tag string) bool {
	tag = strings.TrimSpace(tag)
	for _, s := range styles {
		if s == tag {
			return true
		}
	}
	return false
}

// StyleLabel renders a style tag for display, e.g. "oil-painting" becomes
// "Oil Painting".
func StyleLabel(tag string) string {
	words := strings.Fields(strings.ReplaceAll(strings.TrimSpace(tag), "-", " "))
	if len(words) == 0 {
		return ""
	}
	caser := cases.Title(language.English)
	for i, w := range words {
		if strings.EqualFold(w, "3d") {
			words[i] = "3D"
			continue
		}
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}
