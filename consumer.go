package imagedit

import (
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
)

// Consumer drains a fragment stream: each image fragment is written to disk
// at a path chosen by the OutputPlan, each text fragment is forwarded to the
// console, and empty fragments are skipped.
//
// Fragments are processed strictly in delivery order, exactly once each,
// with no buffering beyond the current fragment. A stream error stops
// processing and is returned; files already written stay on disk.
type Consumer struct {
	// Plan chooses destination paths for image fragments.
	Plan OutputPlan

	// Text receives model commentary as it arrives. Defaults to os.Stdout.
	Text io.Writer

	// OnSave is invoked after each image fragment is written. Defaults to
	// printing a "File saved to:" line on Text.
	OnSave func(path string, size int)
}

// Run consumes the stream and returns the paths written, in write order.
func (c *Consumer) Run(fragments iter.Seq2[Fragment, error]) ([]string, error) {
	out := c.Text
	if out == nil {
		out = os.Stdout
	}
	report := c.OnSave
	if report == nil {
		report = func(path string, size int) {
			fmt.Fprintf(out, "File saved to: %s\n", path)
		}
	}

	var written []string
	index := 0
	for frag, err := range fragments {
		if err != nil {
			return written, err
		}

		switch frag.Kind() {
		case FragmentImage:
			name := c.Plan.FileName(index, frag.Image.MIMEType)
			if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
				return written, fmt.Errorf("creating output directory: %w", err)
			}
			if err := os.WriteFile(name, frag.Image.Data, 0o644); err != nil {
				return written, fmt.Errorf("writing %s: %w", name, err)
			}
			written = append(written, name)
			report(name, len(frag.Image.Data))
			index++

		case FragmentText:
			fmt.Fprint(out, frag.Text)

		case FragmentEmpty:
			// no usable payload
		}
	}

	return written, nil
}
