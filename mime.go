package imagedit

import (
	"path/filepath"
	"strings"
)

// MIMETypeForPath guesses an image MIME type from a file extension.
// Unknown extensions default to image/png.
func MIMETypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}

// ExtensionForMIME returns the file extension (with leading dot) for common
// image MIME types. Unknown types default to .png.
func ExtensionForMIME(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
