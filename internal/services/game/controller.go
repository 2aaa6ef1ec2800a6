package game

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/graretg02/Superbowl-app2/internal/model"
	"github.com/graretg02/Superbowl-app2/internal/services/analysis"
	"github.com/graretg02/Superbowl-app2/internal/services/board"
	"github.com/graretg02/Superbowl-app2/internal/services/persistence"
	"github.com/graretg02/Superbowl-app2/internal/services/transfer"
)

// Session is a point-in-time view of the organizer's board and preferences
type Session struct {
	State             *model.GameState
	ActiveParticipant model.ParticipantID
	View              model.View
	Analysis          string
	SaveStatus        persistence.SaveStatus
	LastSaved         time.Time
}

// Controller owns the current board. It applies board operations one at a
// time, keeps the organizer's preferences, and hands every new state to the
// persistence adapter.
type Controller struct {
	boardService    board.ServiceInterface
	persistence     *persistence.Adapter
	analysisService *analysis.Service
	logger          *slog.Logger

	mu       sync.Mutex
	state    *model.GameState
	active   model.ParticipantID
	view     model.View
	analysis string
}

// NewController creates a new Controller holding the default board.
// Call Load to restore the saved board.
func NewController(
	boardService board.ServiceInterface,
	persistence *persistence.Adapter,
	analysisService *analysis.Service,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		boardService:    boardService,
		persistence:     persistence,
		analysisService: analysisService,
		logger:          logger,
		state:           model.NewGameState(),
		view:            model.ViewGrid,
	}
}

// Load restores the board and preferences from durable storage
func (c *Controller) Load(ctx context.Context) {
	state := c.persistence.LoadState(ctx)
	active := c.persistence.LoadActiveParticipant(ctx)
	view := c.persistence.LoadView(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	c.active = active
	c.view = view
	c.analysis = ""

	c.logger.Info("board loaded",
		slog.Int("participants", len(state.Participants)),
		slog.Int("filled", state.FilledCount()),
		slog.Bool("locked", state.IsLocked),
	)
}

// Snapshot returns the current session. The returned state must not be modified.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() Session {
	status, lastSaved := c.persistence.Status()
	return Session{
		State:             c.state,
		ActiveParticipant: c.active,
		View:              c.view,
		Analysis:          c.analysis,
		SaveStatus:        status,
		LastSaved:         lastSaved,
	}
}

// AddParticipant registers a participant and makes them the active one
func (c *Controller) AddParticipant(ctx context.Context, firstName, lastName string) (model.Participant, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return model.Participant{}, model.ErrInvalidName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next, p := c.boardService.AddParticipant(c.state, firstName, lastName)
	if p == nil {
		return model.Participant{}, model.ErrInvalidName
	}
	c.commit(next)
	c.setActive(ctx, p.ID)

	c.logger.Info("participant added",
		slog.String("participant_id", string(p.ID)),
		slog.String("name", p.FullName()),
		slog.Int("participant_count", len(next.Participants)),
	)
	return *p, nil
}

// RemoveParticipant removes a participant and frees their squares. A locked
// board keeps its participants.
func (c *Controller) RemoveParticipant(ctx context.Context, id model.ParticipantID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.HasParticipant(id) {
		return model.ErrParticipantNotFound
	}
	if c.state.IsLocked {
		return model.ErrBoardLocked
	}

	freed := c.state.SquareCounts()[id]
	c.commit(c.boardService.RemoveParticipant(c.state, id))
	if c.active == id {
		c.setActive(ctx, "")
	}

	c.logger.Info("participant removed",
		slog.String("participant_id", string(id)),
		slog.Int("squares_freed", freed),
	)
	return nil
}

// SetActiveParticipant selects who empty squares are assigned to; "" clears the selection
func (c *Controller) SetActiveParticipant(ctx context.Context, id model.ParticipantID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id != "" && !c.state.HasParticipant(id) {
		return model.ErrParticipantNotFound
	}
	c.setActive(ctx, id)
	return nil
}

// ToggleCell clears an occupied square or claims an empty one for the active
// participant. Tapping an empty square with nobody selected changes nothing.
func (c *Controller) ToggleCell(ctx context.Context, pos model.Position) error {
	if !pos.IsValid() {
		return model.ErrInvalidPosition
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.IsLocked {
		return model.ErrBoardLocked
	}
	c.commit(c.boardService.ToggleCell(c.state, pos, c.active))
	return nil
}

// Randomize draws the axis numbers and locks the board
func (c *Controller) Randomize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.IsLocked {
		return model.ErrBoardLocked
	}
	if !c.state.IsFull() {
		return model.ErrGridNotFull
	}

	next := c.boardService.Randomize(c.state)
	c.commit(next)

	rows, _ := next.RowNumbers.Values()
	cols, _ := next.ColNumbers.Values()
	c.logger.Info("board randomized",
		slog.Any("row_numbers", rows),
		slog.Any("col_numbers", cols),
	)
	return nil
}

// Unlock discards the drawn numbers so squares can be edited again
func (c *Controller) Unlock(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.IsLocked {
		return model.ErrBoardNotLocked
	}
	c.commit(c.boardService.Unlock(c.state))
	c.analysis = ""

	c.logger.Info("board unlocked")
	return nil
}

// Reset discards the whole board. This cannot be undone.
func (c *Controller) Reset(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.commit(c.boardService.Reset())
	c.analysis = ""
	c.setActive(ctx, "")

	c.logger.Warn("board reset")
}

// SetTeamName renames the row or column team
func (c *Controller) SetTeamName(ctx context.Context, team model.Team, name string) error {
	if _, ok := model.ParseTeam(string(team)); !ok {
		return model.ErrInvalidTeam
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.commit(c.boardService.SetTeamName(c.state, team, name))
	return nil
}

// SetView records which screen the organizer is on
func (c *Controller) SetView(ctx context.Context, view model.View) error {
	if _, ok := model.ParseView(string(view)); !ok {
		return model.ErrInvalidView
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.view = view
	c.persistence.SaveView(ctx, view)
	return nil
}

// Export returns a transfer code for the current board
func (c *Controller) Export() (string, error) {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	return transfer.Encode(state)
}

// Import replaces the board with one decoded from a transfer code. An invalid
// code leaves the current board untouched.
func (c *Controller) Import(ctx context.Context, code string) error {
	state, err := transfer.Decode(code)
	if err != nil {
		c.logger.Warn("import rejected",
			slog.String("error", err.Error()),
		)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.commit(state)
	c.analysis = ""
	if c.active != "" && !state.HasParticipant(c.active) {
		c.setActive(ctx, "")
	}

	c.logger.Info("board imported",
		slog.Int("participants", len(state.Participants)),
		slog.Int("filled", state.FilledCount()),
		slog.Bool("locked", state.IsLocked),
	)
	return nil
}

// Analyze asks the analyst about the locked board and keeps the answer
func (c *Controller) Analyze(ctx context.Context) (string, error) {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	text, err := c.analysisService.Analyze(ctx, state)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// The board may have been unlocked while the analyst was thinking
	if c.state == state {
		c.analysis = text
	}
	return text, nil
}

// Flush writes any pending save immediately
func (c *Controller) Flush(ctx context.Context) error {
	return c.persistence.Flush(ctx)
}

// commit installs next as the current board and schedules it to be saved.
// Callers hold c.mu.
func (c *Controller) commit(next *model.GameState) {
	if next == c.state {
		return
	}
	c.state = next
	c.persistence.ScheduleSave(next)
}

// setActive updates and persists the active participant. Callers hold c.mu.
func (c *Controller) setActive(ctx context.Context, id model.ParticipantID) {
	if c.active == id {
		return
	}
	c.active = id
	c.persistence.SaveActiveParticipant(ctx, id)
}
