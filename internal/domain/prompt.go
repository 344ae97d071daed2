package domain

import "math/rand"

var examplePrompts = []string{
	"A serene beach at sunrise with gentle waves and seagulls",
	"A mystical forest with glowing mushrooms and fairy lights",
	"A steampunk airship floating above Victorian London",
	"A minimalist modern kitchen with marble countertops",
	"A vibrant street art mural on a brick wall",
	"A peaceful mountain lake reflecting snow-capped peaks",
	"A cozy library with floor-to-ceiling bookshelves",
	"A futuristic robot in a high-tech laboratory",
}

// ExamplePrompts returns the suggestions offered next to the prompt box.
func ExamplePrompts() []string {
	out := make([]string, len(examplePrompts))
	copy(out, examplePrompts)
	return out
}

// ExamplePrompt returns the i-th suggestion, ok=false when out of range.
func ExamplePrompt(i int) (string, bool) {
	if i < 0 || i >= len(examplePrompts) {
		return "", false
	}
	return examplePrompts[i], true
}

// RandomExample picks one suggestion.
func RandomExample() string {
	return examplePrompts[rand.Intn(len(examplePrompts))]
}
