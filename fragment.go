package imagedit

// FragmentKind identifies the payload carried by a Fragment.
type FragmentKind int

const (
	// FragmentEmpty marks a fragment with no usable payload. These occur in
	// real streams and are skipped rather than treated as protocol errors.
	FragmentEmpty FragmentKind = iota

	// FragmentImage marks a fragment carrying binary image data.
	FragmentImage

	// FragmentText marks a fragment carrying model commentary.
	FragmentText
)

// GeneratedImage is the binary payload of an image fragment.
type GeneratedImage struct {
	// Data contains the raw image bytes
	Data []byte

	// MIMEType of the generated image
	MIMEType string
}

// Fragment is one element of a streamed model response. Exactly one of the
// payload fields is populated; Kind reports which, so consumers can match
// exhaustively instead of probing fields.
//
// Fragments carry no identity beyond their position in the stream.
type Fragment struct {
	// Image holds the binary payload for image fragments, nil otherwise.
	Image *GeneratedImage

	// Text holds commentary for text fragments.
	Text string
}

// Kind returns the payload kind of the fragment.
func (f Fragment) Kind() FragmentKind {
	switch {
	case f.Image != nil && len(f.Image.Data) > 0:
		return FragmentImage
	case f.Text != "":
		return FragmentText
	default:
		return FragmentEmpty
	}
}

// ImageFragment builds an image fragment.
func ImageFragment(data []byte, mimeType string) Fragment {
	return Fragment{Image: &GeneratedImage{Data: data, MIMEType: mimeType}}
}

// TextFragment builds a text fragment.
func TextFragment(text string) Fragment {
	return Fragment{Text: text}
}
