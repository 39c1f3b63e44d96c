// Package gemini provides a StreamEditor implementation using Google's
// Gemini API.
//
// This provider uses the Gemini API backend via the official Go SDK:
// https://github.com/googleapis/go-genai
package gemini

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/mhpenta/imagedit"
	"google.golang.org/genai"
)

// Model name constants - the actual API model names.
const (
	// APIModelFlashImage is the API name for Gemini 2.5 Flash Image
	APIModelFlashImage = "gemini-2.5-flash-image"

	// APIModelProImage is the API name for Gemini 3 Pro Image
	APIModelProImage = "gemini-3-pro-image-preview"
)

// GeminiEditor implements StreamEditor using Google's Gemini API.
type GeminiEditor struct {
	client *genai.Client
}

var _ imagedit.StreamEditor = (*GeminiEditor)(nil)

// New creates a GeminiEditor for the Gemini API backend.
// If apiKey is empty, the SDK falls back to the GOOGLE_API_KEY or
// GEMINI_API_KEY environment variables.
func New(ctx context.Context, apiKey string) (*GeminiEditor, error) {
	clientCfg := &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
	}
	if apiKey != "" {
		clientCfg.APIKey = apiKey
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEditor{client: client}, nil
}

// GenerateStream creates images from a text prompt.
func (g *GeminiEditor) GenerateStream(ctx context.Context, prompt string, config *imagedit.EditConfig) iter.Seq2[imagedit.Fragment, error] {
	if err := imagedit.ValidatePrompt(prompt); err != nil {
		return imagedit.ErrorStream(err)
	}

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	return g.stream(ctx, contents, config)
}

// EditStream modifies an existing image based on a text instruction.
func (g *GeminiEditor) EditStream(ctx context.Context, image imagedit.InputImage, instruction string, config *imagedit.EditConfig) iter.Seq2[imagedit.Fragment, error] {
	if err := imagedit.ValidatePrompt(instruction); err != nil {
		return imagedit.ErrorStream(err)
	}
	if err := imagedit.ValidateInputImage(image); err != nil {
		return imagedit.ErrorStream(err)
	}

	// The image precedes the instruction, matching the API's multimodal
	// editing convention.
	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{
					InlineData: &genai.Blob{
						Data:     image.Data,
						MIMEType: image.MIMEType,
					},
				},
				{Text: instruction},
			},
		},
	}

	return g.stream(ctx, contents, config)
}

// Models returns the model definitions supported by this provider.
// The first model (Flash Image) is the default.
func (g *GeminiEditor) Models() []imagedit.ModelInfo {
	return []imagedit.ModelInfo{
		FlashImageInfo,
		ProImageInfo,
	}
}

// Close releases any resources held by the editor.
func (g *GeminiEditor) Close() error {
	// The genai.Client doesn't require explicit closing in the current SDK
	return nil
}

// stream runs the streaming call and converts each chunk into a Fragment.
func (g *GeminiEditor) stream(ctx context.Context, contents []*genai.Content, config *imagedit.EditConfig) iter.Seq2[imagedit.Fragment, error] {
	if config == nil {
		config = imagedit.DefaultConfig()
	}

	modelName := g.resolveModel(config)
	genConfig := buildGenerateContentConfig(config)

	src := g.client.Models.GenerateContentStream(ctx, modelName, contents, genConfig)

	return func(yield func(imagedit.Fragment, error) bool) {
		for resp, err := range src {
			if err != nil {
				yield(imagedit.Fragment{}, fmt.Errorf("streaming generation failed: %w", err))
				return
			}
			if !yield(fragmentFromResponse(resp), nil) {
				return
			}
		}
	}
}

// resolveModel determines which API model name to use.
// Falls back to the first model (default) if none specified.
func (g *GeminiEditor) resolveModel(config *imagedit.EditConfig) string {
	if config != nil && config.Model != "" {
		return string(config.Model)
	}
	models := g.Models()
	if len(models) == 0 {
		return APIModelFlashImage
	}
	return models[0].APIModelName
}

// buildGenerateContentConfig converts our config to Gemini's
// GenerateContentConfig format.
func buildGenerateContentConfig(config *imagedit.EditConfig) *genai.GenerateContentConfig {
	genConfig := &genai.GenerateContentConfig{
		// Request both binary image output and text commentary
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	imageConfig := &genai.ImageConfig{}
	if config.Size != "" {
		imageConfig.ImageSize = config.Size.String()
	}
	if config.AspectRatio != "" {
		imageConfig.AspectRatio = config.AspectRatio.String()
	}
	genConfig.ImageConfig = imageConfig

	return genConfig
}

// fragmentFromResponse converts one streamed chunk into a Fragment.
//
// The first candidate's parts are inspected: inline data with bytes wins as
// an image fragment; otherwise the parts' text is concatenated into a text
// fragment. Chunks with neither payload become empty fragments, not errors.
func fragmentFromResponse(resp *genai.GenerateContentResponse) imagedit.Fragment {
	if resp == nil || len(resp.Candidates) == 0 {
		return imagedit.Fragment{}
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return imagedit.Fragment{}
	}

	for _, part := range candidate.Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return imagedit.ImageFragment(part.InlineData.Data, part.InlineData.MIMEType)
		}
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Thought {
			continue
		}
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return imagedit.Fragment{}
	}
	return imagedit.TextFragment(text.String())
}
