package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mhpenta/imagedit"
	"github.com/mhpenta/imagedit/provider/gemini"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    imagedit.Model
		wantErr bool
	}{
		{name: "flash alias", input: "flash", want: imagedit.Model(gemini.APIModelFlashImage)},
		{name: "pro alias", input: "pro", want: imagedit.Model(gemini.APIModelProImage)},
		{name: "full API name", input: gemini.APIModelProImage, want: imagedit.Model(gemini.APIModelProImage)},
		{name: "unlisted full name passes through", input: "gemini-2.0-flash-exp", want: "gemini-2.0-flash-exp"},
		{name: "unknown alias", input: "turbo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := resolveModel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveModel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRun_MissingSourceImage(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "absent.png")

	// A key is present, so a failure here can only come from the image check.
	t.Setenv(imagedit.EnvAPIKey, "test-key")

	rootCmd.SetArgs([]string{"make the background white", missing})
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "image file not found") {
		t.Fatalf("error = %v, want missing-image failure", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("reading dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("directory has %d entries, want 0 (no output files)", len(entries))
	}
}

func TestRun_MissingCredential(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.png")
	if err := os.WriteFile(src, []byte("fake png"), 0o644); err != nil {
		t.Fatalf("writing source image: %v", err)
	}

	t.Setenv(imagedit.EnvAPIKey, "")

	rootCmd.SetArgs([]string{"make the background white", src})
	err := rootCmd.Execute()
	if !errors.Is(err, imagedit.ErrMissingAPIKey) {
		t.Fatalf("error = %v, want ErrMissingAPIKey", err)
	}
	if !strings.Contains(err.Error(), imagedit.EnvAPIKey) {
		t.Errorf("error %q should name %s with remediation", err, imagedit.EnvAPIKey)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("reading dir: %v", readErr)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the source image", len(entries))
	}
}

func TestResolveSize(t *testing.T) {
	tests := []struct {
		name    string
		size    string
		info    imagedit.ModelInfo
		wantErr bool
	}{
		{name: "1K on flash", size: "1K", info: gemini.FlashImageInfo},
		{name: "4K on pro", size: "4K", info: gemini.ProImageInfo},
		{name: "4K on flash rejected", size: "4K", info: gemini.FlashImageInfo, wantErr: true},
		{name: "unknown size rejected", size: "8K", info: gemini.ProImageInfo, wantErr: true},
		{name: "unconstrained model accepts any valid size", size: "4K", info: imagedit.ModelInfo{APIModelName: "gemini-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveSize(tt.size, tt.info)
			if (err != nil) != tt.wantErr {
				t.Errorf("resolveSize(%q) error = %v, wantErr %v", tt.size, err, tt.wantErr)
			}
		})
	}
}
