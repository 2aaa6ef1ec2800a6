package mocks

import (
	"context"
	"sync"
)

// MockGenerator is a mock analysis generator that replays a canned answer
type MockGenerator struct {
	mu      sync.Mutex
	Text    string
	Err     error
	Prompts []string
}

// NewMockGenerator creates a MockGenerator with a default answer
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{Text: "Rows ending in 7 are gold mines tonight."}
}

// Generate records the prompt and returns the configured answer
func (g *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Prompts = append(g.Prompts, prompt)
	return g.Text, g.Err
}

// SetResponse replaces the canned answer
func (g *MockGenerator) SetResponse(text string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Text = text
	g.Err = err
}
