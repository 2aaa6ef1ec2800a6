package analysis

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/graretg02/Superbowl-app2/internal/model"
)

const (
	// FallbackText replaces the analysis when the remote call fails
	FallbackText = "The analyst is currently grabbing a hot dog. Please try again later!"

	// UnavailableText replaces an empty analysis
	UnavailableText = "Analysis unavailable."
)

// ErrGeneratorDisabled is returned by a generator that has no credentials
var ErrGeneratorDisabled = errors.New("analysis generator not configured")

// Request is everything the analyst is told about a board
type Request struct {
	Team1      string
	Team2      string
	RowNumbers []int
	ColNumbers []int
}

// Generator produces freeform text for a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service asks the remote analyst for commentary on a locked board.
// Only one request is allowed in flight at a time.
type Service struct {
	generator Generator
	logger    *slog.Logger

	inFlight sync.Mutex
}

// New creates a new analysis Service
func New(generator Generator, logger *slog.Logger) *Service {
	return &Service{
		generator: generator,
		logger:    logger,
	}
}

// Analyze returns commentary for a locked board. Remote failures never
// surface as errors; they become FallbackText.
func (s *Service) Analyze(ctx context.Context, state *model.GameState) (string, error) {
	req, err := RequestFor(state)
	if err != nil {
		return "", err
	}

	if !s.inFlight.TryLock() {
		return "", model.ErrAnalysisInProgress
	}
	defer s.inFlight.Unlock()

	text, err := s.generator.Generate(ctx, BuildPrompt(req))
	if err != nil {
		s.logger.Warn("analysis request failed",
			slog.String("team1", req.Team1),
			slog.String("team2", req.Team2),
			slog.String("error", err.Error()),
		)
		return FallbackText, nil
	}
	if strings.TrimSpace(text) == "" {
		return UnavailableText, nil
	}
	return text, nil
}

// RequestFor extracts the analyst's inputs from a board. The board must be
// locked with both axes drawn.
func RequestFor(state *model.GameState) (Request, error) {
	if !state.IsLocked {
		return Request{}, model.ErrBoardNotLocked
	}
	rows, rowsOK := state.RowNumbers.Values()
	cols, colsOK := state.ColNumbers.Values()
	if !rowsOK || !colsOK {
		return Request{}, model.ErrBoardNotLocked
	}
	return Request{
		Team1:      state.Team1,
		Team2:      state.Team2,
		RowNumbers: rows,
		ColNumbers: cols,
	}, nil
}

// DisabledGenerator fails every request; used when no API key is configured
type DisabledGenerator struct{}

// Generate always returns ErrGeneratorDisabled
func (DisabledGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrGeneratorDisabled
}
