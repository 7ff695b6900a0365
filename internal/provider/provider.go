// Package provider defines the result types returned by external generation
// providers. Adapters under internal/adapter/provider implement the service
// layer's generator interfaces with these types.
package provider

// GeneratedImage is a rendered image returned by an image generation provider.
type GeneratedImage struct {
	Data     []byte
	MimeType string
	Width    int
	Height   int
	Model    string
}

// GeneratedAudio is an audio clip returned by a TTS or music provider.
// DurationSeconds is 0 when the provider cannot determine it.
type GeneratedAudio struct {
	Data            []byte
	MimeType        string
	DurationSeconds int
	Model           string
}
