package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/graretg02/Superbowl-app2/internal/model"
	"github.com/graretg02/Superbowl-app2/internal/testutil"
)

// fakeGenerator records prompts and replays a canned answer
type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string

	// block, when set, holds Generate until it is closed
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.block != nil {
		f.entered <- struct{}{}
		<-f.block
	}
	return f.text, f.err
}

type AnalysisSuite struct {
	suite.Suite
	generator *fakeGenerator
	service   *Service
	ctx       context.Context
}

func TestAnalysisSuite(t *testing.T) {
	suite.Run(t, new(AnalysisSuite))
}

func (s *AnalysisSuite) SetupTest() {
	s.generator = &fakeGenerator{text: "Row 7, Col 0 is a gold mine."}
	s.service = New(s.generator, testutil.NopLogger())
	s.ctx = context.Background()
}

func axis(values ...int) model.Axis {
	var a model.Axis
	for i := range values {
		v := values[i]
		a[i] = &v
	}
	return a
}

func (s *AnalysisSuite) lockedState() *model.GameState {
	state := model.NewGameState()
	state.RowNumbers = axis(3, 1, 4, 0, 5, 9, 2, 6, 8, 7)
	state.ColNumbers = axis(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	state.IsLocked = true
	return state
}

func (s *AnalysisSuite) TestAnalyzeReturnsGeneratedText() {
	text, err := s.service.Analyze(s.ctx, s.lockedState())

	s.Require().NoError(err)
	s.Equal("Row 7, Col 0 is a gold mine.", text)
	s.Len(s.generator.prompts, 1)
}

func (s *AnalysisSuite) TestAnalyzeRequiresLock() {
	state := model.NewGameState()

	_, err := s.service.Analyze(s.ctx, state)

	s.ErrorIs(err, model.ErrBoardNotLocked)
	s.Empty(s.generator.prompts, "no remote call for an unlocked board")
}

func (s *AnalysisSuite) TestAnalyzeRejectsLockWithoutAxes() {
	state := model.NewGameState()
	state.IsLocked = true

	_, err := s.service.Analyze(s.ctx, state)

	s.ErrorIs(err, model.ErrBoardNotLocked)
}

func (s *AnalysisSuite) TestRemoteFailureBecomesFallback() {
	s.generator.err = errors.New("503 service unavailable")

	text, err := s.service.Analyze(s.ctx, s.lockedState())

	s.NoError(err)
	s.Equal(FallbackText, text)
}

func (s *AnalysisSuite) TestEmptyResponseBecomesUnavailable() {
	s.generator.text = "  \n"

	text, err := s.service.Analyze(s.ctx, s.lockedState())

	s.NoError(err)
	s.Equal(UnavailableText, text)
}

func (s *AnalysisSuite) TestDisabledGeneratorFallsBack() {
	service := New(DisabledGenerator{}, testutil.NopLogger())

	text, err := service.Analyze(s.ctx, s.lockedState())

	s.NoError(err)
	s.Equal(FallbackText, text)
}

func (s *AnalysisSuite) TestOneRequestInFlight() {
	s.generator.block = make(chan struct{})
	s.generator.entered = make(chan struct{}, 1)

	done := make(chan string)
	go func() {
		text, _ := s.service.Analyze(s.ctx, s.lockedState())
		done <- text
	}()
	<-s.generator.entered

	_, err := s.service.Analyze(s.ctx, s.lockedState())
	s.ErrorIs(err, model.ErrAnalysisInProgress)

	close(s.generator.block)
	s.Equal("Row 7, Col 0 is a gold mine.", <-done)

	// Once the first finishes another may start
	s.generator.block = nil
	_, err = s.service.Analyze(s.ctx, s.lockedState())
	s.NoError(err)
}

func (s *AnalysisSuite) TestPromptCarriesTeamsAndNumbers() {
	state := s.lockedState()
	state.Team1 = "Chiefs"
	state.Team2 = "Eagles"

	_, err := s.service.Analyze(s.ctx, state)
	s.Require().NoError(err)

	prompt := s.generator.prompts[0]
	s.Contains(prompt, "between Chiefs (Rows) and Eagles (Columns)")
	s.Contains(prompt, "The randomized numbers for Chiefs are: 3, 1, 4, 0, 5, 9, 2, 6, 8, 7.")
	s.Contains(prompt, "The randomized numbers for Eagles are: 0, 1, 2, 3, 4, 5, 6, 7, 8, 9.")
}

func (s *AnalysisSuite) TestRequestFor() {
	req, err := RequestFor(s.lockedState())

	s.Require().NoError(err)
	s.Equal(model.DefaultTeam1, req.Team1)
	s.Equal(model.DefaultTeam2, req.Team2)
	s.Equal([]int{3, 1, 4, 0, 5, 9, 2, 6, 8, 7}, req.RowNumbers)
}

func (s *AnalysisSuite) TestGenAIGeneratorRequiresKey() {
	_, err := NewGenAIGenerator(s.ctx, "", "")
	s.Error(err)
}

func (s *AnalysisSuite) TestGenAIGeneratorDefaultsModel() {
	g, err := NewGenAIGenerator(s.ctx, "test-key", "")
	s.Require().NoError(err)
	s.Equal(DefaultModel, g.Model())
}
