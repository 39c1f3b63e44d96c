package imagedit

// ModelInfo contains metadata for a model.
type ModelInfo struct {
	// Name is the short public name (e.g., "flash")
	Name string

	// APIModelName is the actual API name (e.g., "gemini-2.5-flash-image")
	APIModelName string

	// SupportedSizes lists the output size classes the model accepts.
	SupportedSizes []ImageSize
}

// SupportsSize reports whether the model accepts the given size class.
// The auto size (empty string) is always accepted.
func (m ModelInfo) SupportsSize(size ImageSize) bool {
	if size == "" {
		return true
	}
	for _, s := range m.SupportedSizes {
		if s == size {
			return true
		}
	}
	return false
}
