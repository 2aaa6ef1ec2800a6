package mocks

import (
	"fmt"

	"github.com/graretg02/Superbowl-app2/internal/dependencies/ids"
)

// MockIDGenerator returns queued ids, then sequential "participant-N" ids
type MockIDGenerator struct {
	queue []string
	next  int
}

// Ensure MockIDGenerator implements Generator
var _ ids.Generator = (*MockIDGenerator)(nil)

// NewMockIDGenerator creates a new MockIDGenerator
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

// NewID returns the next queued id, or a sequential one once the queue is drained
func (g *MockIDGenerator) NewID() string {
	if len(g.queue) > 0 {
		id := g.queue[0]
		g.queue = g.queue[1:]
		return id
	}
	g.next++
	return fmt.Sprintf("participant-%d", g.next)
}

// QueueIDs adds ids to be returned by NewID
func (g *MockIDGenerator) QueueIDs(values ...string) {
	g.queue = append(g.queue, values...)
}
