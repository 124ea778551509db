package factory

import (
	"time"

	"github.com/mcoot/rummyledger/internal/blob/memory"
	"github.com/mcoot/rummyledger/internal/dependencies/mocks"
	"github.com/mcoot/rummyledger/internal/narrative"
	"github.com/mcoot/rummyledger/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Identifier generation draws from MockRandom, so tests must queue a string
// for every player and game they create.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(
		store,
		mockClock,
		mockRandom,
		&narrative.Static{Text: "A hard-fought session."},
		testutil.NopLogger(),
	)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
