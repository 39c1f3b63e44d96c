package imagedit

// Model identifies a specific image generation model by its API name.
type Model string

// ImageSize represents the output resolution class for generated images.
type ImageSize string

const (
	ImageSize1K ImageSize = "1K"
	ImageSize2K ImageSize = "2K"
	ImageSize4K ImageSize = "4K"
)

// AspectRatio represents the aspect ratio for generated images.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio3x4  AspectRatio = "3:4"
	AspectRatioAuto AspectRatio = ""
)

// EditConfig holds configuration options for a streaming request.
type EditConfig struct {
	// Model to use (if empty, the editor's default model is used)
	Model Model

	// Size of the output image (1K, 2K, 4K)
	Size ImageSize

	// AspectRatio of the output image
	AspectRatio AspectRatio
}

// WithModel returns a copy of the config with the specified model.
func (c *EditConfig) WithModel(model Model) *EditConfig {
	if c == nil {
		return &EditConfig{Model: model}
	}
	cX := *c
	cX.Model = model
	return &cX
}

// DefaultConfig returns an EditConfig with sensible defaults.
func DefaultConfig() *EditConfig {
	return &EditConfig{
		Size:        ImageSize1K,
		AspectRatio: AspectRatioAuto,
	}
}

// InputImage represents an image input for editing operations.
type InputImage struct {
	// Data is the raw image bytes
	Data []byte

	// MIMEType of the image (e.g., "image/jpeg", "image/png")
	MIMEType string
}

// String returns the string representation for API calls.
func (s ImageSize) String() string {
	return string(s)
}

// String returns the string representation for API calls.
func (a AspectRatio) String() string {
	return string(a)
}

// String returns the model identifier.
func (m Model) String() string {
	return string(m)
}
