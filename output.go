package imagedit

import (
	"fmt"
	"os"
	"path/filepath"
)

// autoNamePrefix is the fixed prefix for synthesized output file names.
const autoNamePrefix = "gemini_edit"

// OutputPlan resolves on-disk names for streamed image fragments.
//
// With an explicit file target, that path is used for every image fragment,
// gaining the fragment's extension if it has none. Otherwise names are
// synthesized as <prefix>_<index><ext> in the output directory: the target
// directory when one was given, else the source image's directory.
type OutputPlan struct {
	explicit string
	dir      string
}

// NewOutputPlan derives an OutputPlan from the source image path and an
// optional output path. An output path naming an existing directory is
// treated as the output directory; any other non-empty output path is an
// explicit file target.
func NewOutputPlan(imagePath, outputPath string) OutputPlan {
	if outputPath == "" {
		return OutputPlan{dir: filepath.Dir(imagePath)}
	}
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		return OutputPlan{dir: outputPath}
	}
	return OutputPlan{explicit: outputPath, dir: filepath.Dir(outputPath)}
}

// FileName returns the destination path for the image fragment at the given
// zero-based index, choosing an extension from its MIME type.
func (p OutputPlan) FileName(index int, mimeType string) string {
	ext := ExtensionForMIME(mimeType)
	if p.explicit != "" {
		if filepath.Ext(p.explicit) == "" {
			return p.explicit + ext
		}
		return p.explicit
	}
	return filepath.Join(p.dir, fmt.Sprintf("%s_%d%s", autoNamePrefix, index, ext))
}
