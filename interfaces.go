package imagedit

import (
	"context"
	"iter"
)

// StreamEditor is the core interface for streaming image generation models.
// Implement this interface to add support for new models or providers.
//
// Both operations return a fragment stream: the sequence of image and text
// fragments exactly as the model delivers them. Iteration pulls fragments
// one at a time; stopping early abandons the remainder of the response.
//
// The first model returned by Models() is considered the default model.
type StreamEditor interface {
	// GenerateStream creates images from a text prompt.
	GenerateStream(ctx context.Context, prompt string, config *EditConfig) iter.Seq2[Fragment, error]

	// EditStream modifies an existing image based on a text instruction.
	EditStream(ctx context.Context, image InputImage, instruction string, config *EditConfig) iter.Seq2[Fragment, error]

	// Models returns the model definitions supported by this provider.
	// The first model in the list is the default.
	Models() []ModelInfo

	// Close releases any resources held by the editor.
	Close() error
}
