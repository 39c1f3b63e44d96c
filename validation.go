package imagedit

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrEmptyPrompt     = errors.New("prompt cannot be empty")
	ErrEmptyImageData  = errors.New("image data cannot be empty")
	ErrInvalidMIMEType = errors.New("invalid or unsupported MIME type")
	ErrImageTooLarge   = errors.New("image data exceeds maximum size")
)

// MaxImageSize is the maximum allowed input image size in bytes (20MB)
const MaxImageSize = 20 * 1024 * 1024

// ValidMIMETypes contains the supported image MIME types
var ValidMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ValidatePrompt validates a text prompt.
func ValidatePrompt(prompt string) error {
	if prompt == "" {
		return ErrEmptyPrompt
	}
	return nil
}

// ValidateInputImage validates an input image.
func ValidateInputImage(img InputImage) error {
	if len(img.Data) == 0 {
		return ErrEmptyImageData
	}

	if len(img.Data) > MaxImageSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrImageTooLarge, len(img.Data), MaxImageSize)
	}

	if img.MIMEType == "" {
		return fmt.Errorf("%w: MIME type is required", ErrInvalidMIMEType)
	}

	if !ValidMIMETypes[img.MIMEType] {
		return fmt.Errorf("%w: %s", ErrInvalidMIMEType, img.MIMEType)
	}

	return nil
}
