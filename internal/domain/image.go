package domain

// Image is a binary payload received from the image service.
type Image struct {
	Data        []byte
	ContentType string
}
