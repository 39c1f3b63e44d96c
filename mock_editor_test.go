package imagedit

import (
	"context"
	"iter"
)

// MockStreamEditor is a mock implementation of StreamEditor.
type MockStreamEditor struct {
	GenerateStreamFunc func(ctx context.Context, prompt string, config *EditConfig) iter.Seq2[Fragment, error]
	EditStreamFunc     func(ctx context.Context, image InputImage, instruction string, config *EditConfig) iter.Seq2[Fragment, error]
	ModelsFunc         func() []ModelInfo
	CloseFunc          func() error
}

func (m *MockStreamEditor) GenerateStream(ctx context.Context, prompt string, config *EditConfig) iter.Seq2[Fragment, error] {
	if m.GenerateStreamFunc != nil {
		return m.GenerateStreamFunc(ctx, prompt, config)
	}
	return stream()
}

func (m *MockStreamEditor) EditStream(ctx context.Context, image InputImage, instruction string, config *EditConfig) iter.Seq2[Fragment, error] {
	if m.EditStreamFunc != nil {
		return m.EditStreamFunc(ctx, image, instruction, config)
	}
	return stream()
}

func (m *MockStreamEditor) Models() []ModelInfo {
	if m.ModelsFunc != nil {
		return m.ModelsFunc()
	}
	return []ModelInfo{}
}

func (m *MockStreamEditor) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
