package gemini

import "github.com/mhpenta/imagedit"

// FlashImageInfo is the model info for Gemini 2.5 Flash Image, the default
// model for this provider.
var FlashImageInfo = imagedit.ModelInfo{
	Name:         "flash",
	APIModelName: APIModelFlashImage,

	// Flash Image only supports ~1024px output (1K)
	SupportedSizes: []imagedit.ImageSize{
		imagedit.ImageSize1K,
	},
}

// ProImageInfo is the model info for Gemini 3 Pro Image.
var ProImageInfo = imagedit.ModelInfo{
	Name:         "pro",
	APIModelName: APIModelProImage,

	SupportedSizes: []imagedit.ImageSize{
		imagedit.ImageSize1K,
		imagedit.ImageSize2K,
		imagedit.ImageSize4K,
	},
}
