package imagedit

import (
	"context"
	"iter"
	"log/slog"
	"time"
)

// Editor wraps a StreamEditor with structured logging and default-model
// resolution. It implements StreamEditor itself, so callers interact with
// the wrapped provider through the same interface.
type Editor struct {
	provider     StreamEditor
	logger       *slog.Logger
	defaultModel Model
}

var _ StreamEditor = (*Editor)(nil)

// EditorOption configures the Editor.
type EditorOption func(*Editor)

// WithLogger sets a structured logger for the editor.
func WithLogger(logger *slog.Logger) EditorOption {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithDefaultModel sets the model used when config.Model is empty.
func WithDefaultModel(model Model) EditorOption {
	return func(e *Editor) {
		e.defaultModel = model
	}
}

// NewEditor creates an Editor wrapping the given provider.
//
// Example:
//
//	provider, err := gemini.New(ctx, apiKey)
//	if err != nil {
//	    return err
//	}
//	editor := imagedit.NewEditor(provider, imagedit.WithLogger(slog.Default()))
func NewEditor(provider StreamEditor, opts ...EditorOption) *Editor {
	e := &Editor{
		provider: provider,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateStream creates images from a text prompt.
func (e *Editor) GenerateStream(ctx context.Context, prompt string, config *EditConfig) iter.Seq2[Fragment, error] {
	config = e.resolveConfig(config)

	e.logger.Debug("starting image generation",
		"model", string(config.Model),
		"prompt_length", len(prompt),
	)

	return e.instrument("generation", config.Model,
		e.provider.GenerateStream(ctx, prompt, config))
}

// EditStream modifies an existing image based on a text instruction.
func (e *Editor) EditStream(ctx context.Context, image InputImage, instruction string, config *EditConfig) iter.Seq2[Fragment, error] {
	config = e.resolveConfig(config)

	e.logger.Debug("starting image edit",
		"model", string(config.Model),
		"instruction_length", len(instruction),
		"image_size", len(image.Data),
	)

	return e.instrument("edit", config.Model,
		e.provider.EditStream(ctx, image, instruction, config))
}

// Models returns the model definitions of the wrapped provider.
func (e *Editor) Models() []ModelInfo {
	return e.provider.Models()
}

// Close releases the wrapped provider's resources.
func (e *Editor) Close() error {
	return e.provider.Close()
}

// resolveConfig fills in the model: config, then the editor default, then
// the provider's first model.
func (e *Editor) resolveConfig(config *EditConfig) *EditConfig {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Model != "" {
		return config
	}

	model := e.defaultModel
	if model == "" {
		if models := e.provider.Models(); len(models) > 0 {
			model = Model(models[0].APIModelName)
		}
	}
	return config.WithModel(model)
}

// instrument passes fragments through unchanged while counting them, and
// logs stream completion or failure.
func (e *Editor) instrument(op string, model Model, src iter.Seq2[Fragment, error]) iter.Seq2[Fragment, error] {
	start := time.Now()
	return func(yield func(Fragment, error) bool) {
		var images, texts int
		for frag, err := range src {
			if err != nil {
				e.logger.Error(op+" failed",
					"model", string(model),
					"duration_ms", time.Since(start).Milliseconds(),
					"error", err.Error(),
				)
				yield(frag, err)
				return
			}
			switch frag.Kind() {
			case FragmentImage:
				images++
			case FragmentText:
				texts++
			}
			if !yield(frag, nil) {
				return
			}
		}
		e.logger.Info(op+" completed",
			"model", string(model),
			"duration_ms", time.Since(start).Milliseconds(),
			"image_fragments", images,
			"text_fragments", texts,
		)
	}
}

// ErrorStream returns a stream that yields a single failure. Providers use
// it to surface precondition errors through the stream interface.
func ErrorStream(err error) iter.Seq2[Fragment, error] {
	return func(yield func(Fragment, error) bool) {
		yield(Fragment{}, err)
	}
}
