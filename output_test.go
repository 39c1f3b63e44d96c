package imagedit

import (
	"path/filepath"
	"testing"
)

func TestOutputPlan_AutoNaming(t *testing.T) {
	plan := NewOutputPlan(filepath.Join("photos", "input.png"), "")

	tests := []struct {
		name     string
		index    int
		mimeType string
		want     string
	}{
		{
			name:     "first fragment",
			index:    0,
			mimeType: "image/png",
			want:     filepath.Join("photos", "gemini_edit_0.png"),
		},
		{
			name:     "second fragment",
			index:    1,
			mimeType: "image/png",
			want:     filepath.Join("photos", "gemini_edit_1.png"),
		},
		{
			name:     "jpeg fragment",
			index:    2,
			mimeType: "image/jpeg",
			want:     filepath.Join("photos", "gemini_edit_2.jpg"),
		},
		{
			name:     "unrecognized MIME type falls back to png",
			index:    3,
			mimeType: "application/octet-stream",
			want:     filepath.Join("photos", "gemini_edit_3.png"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plan.FileName(tt.index, tt.mimeType); got != tt.want {
				t.Errorf("FileName(%d, %q) = %q, want %q", tt.index, tt.mimeType, got, tt.want)
			}
		})
	}
}

func TestOutputPlan_ExplicitPath(t *testing.T) {
	tests := []struct {
		name       string
		outputPath string
		mimeType   string
		want       string
	}{
		{
			name:       "path without extension gains one",
			outputPath: filepath.Join("out", "result"),
			mimeType:   "image/png",
			want:       filepath.Join("out", "result.png"),
		},
		{
			name:       "path without extension, jpeg fragment",
			outputPath: filepath.Join("out", "result"),
			mimeType:   "image/jpeg",
			want:       filepath.Join("out", "result.jpg"),
		},
		{
			name:       "path with extension used verbatim",
			outputPath: filepath.Join("out", "result.png"),
			mimeType:   "image/jpeg",
			want:       filepath.Join("out", "result.png"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewOutputPlan("input.png", tt.outputPath)
			if got := plan.FileName(0, tt.mimeType); got != tt.want {
				t.Errorf("FileName(0, %q) = %q, want %q", tt.mimeType, got, tt.want)
			}
		})
	}
}

func TestOutputPlan_DirectoryTarget(t *testing.T) {
	dir := t.TempDir()

	plan := NewOutputPlan(filepath.Join("photos", "input.png"), dir)

	want := filepath.Join(dir, "gemini_edit_0.png")
	if got := plan.FileName(0, "image/png"); got != want {
		t.Errorf("FileName(0, image/png) = %q, want %q", got, want)
	}
}
