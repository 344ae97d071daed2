package domain

import "strings"

// DefaultAspectRatio is the ratio selected before the user picks one.
const DefaultAspectRatio = "1:1"

// Dimensions is the pixel size requested from the image service.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// fallbackDimensions is used for any tag missing from the table.
var fallbackDimensions = Dimensions{Width: 1024, Height: 1024}

var aspectRatioOrder = []string{"1:1", "16:9", "9:16", "4:3", "3:4", "21:9", "9:21"}

var aspectRatioTable = map[string]Dimensions{
	"1:1":  {Width: 1024, Height: 1024},
	"16:9": {Width: 1280, Height: 720},
	"9:16": {Width: 720, Height: 1280},
	"4:3":  {Width: 1024, Height: 768},
	"3:4":  {Width: 768, Height: 1024},
	"21:9": {Width: 1280, Height: 548},
	"9:21": {Width: 548, Height: 1280},
}

// AspectDimensions resolves a ratio tag to pixel dimensions. Unknown tags
// resolve to 1024x1024.
func AspectDimensions(tag string) Dimensions {
	if d, ok := aspectRatioTable[strings.TrimSpace(tag)]; ok {
		return d
	}
	return fallbackDimensions
}

// IsAspectRatio reports whether tag is one of the supported ratios.
func IsAspectRatio(tag string) bool {
	_, ok := aspectRatioTable[strings.TrimSpace(tag)]
	return ok
}

// AspectRatios lists the supported tags in selector order.
func AspectRatios() []string {
	out := make([]string, len(aspectRatioOrder))
	copy(out, aspectRatioOrder)
	return out
}
