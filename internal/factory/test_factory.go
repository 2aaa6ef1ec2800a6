package factory

import (
	"context"
	"time"

	"github.com/graretg02/Superbowl-app2/internal/dependencies/mocks"
	"github.com/graretg02/Superbowl-app2/internal/services/persistence"
	"github.com/graretg02/Superbowl-app2/internal/storage/memory"
	"github.com/graretg02/Superbowl-app2/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
	MockIDs       *mocks.MockIDGenerator
	MockGenerator *mocks.MockGenerator
	MemoryStorage *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 2, 9, 18, 30, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockIDs := mocks.NewMockIDGenerator()
	mockGenerator := mocks.NewMockGenerator()

	app := newWithDependencies(store, mockClock, mockRandom, mockIDs, mockGenerator, persistence.DefaultSaveDelay, testutil.NopLogger())
	app.GameController.Load(context.Background())

	return &TestApp{
		App:           app,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
		MockIDs:       mockIDs,
		MockGenerator: mockGenerator,
		MemoryStorage: store,
	}
}

// SettleSaves advances the mock clock past the save delay so pending writes land
func (t *TestApp) SettleSaves() {
	t.MockClock.Advance(persistence.DefaultSaveDelay)
}
