package external

import "context"

// ImagePrompt is one request to the image provider
type ImagePrompt struct {
	Prompt string
	Width  int
	Height int
	Seed   int64
}

// ImageGenerator produces images for a prompt. A nil error with no URLs is a failed attempt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt ImagePrompt) ([]string, error)
}
