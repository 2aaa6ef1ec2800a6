package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/graretg02/Superbowl-app2/internal/dependencies/clock"
	"github.com/graretg02/Superbowl-app2/internal/model"
	"github.com/graretg02/Superbowl-app2/internal/storage"
)

// Storage keys. The state key carries a version suffix; bump it if the
// envelope ever changes incompatibly.
const (
	StateKey             = "superbowl_squares_state_v3"
	ActiveParticipantKey = "squares_active_player"
	ViewKey              = "squares_current_view"
)

// DefaultSaveDelay is the quiet period before a state change is written
const DefaultSaveDelay = 500 * time.Millisecond

const writeTimeout = 5 * time.Second

// SaveStatus describes the durable copy of the board
type SaveStatus string

const (
	SaveStatusIdle   SaveStatus = "idle"   // nothing written since start
	SaveStatusSaving SaveStatus = "saving" // a write is scheduled
	SaveStatusSaved  SaveStatus = "saved"  // the latest scheduled state is on disk
	SaveStatusFailed SaveStatus = "failed" // the last write failed; the next change retries
)

// Adapter keeps the durable store eventually consistent with the board.
// Storage failures are logged and never returned to callers that cannot act on them.
type Adapter struct {
	store     storage.Store
	clock     clock.Clock
	logger    *slog.Logger
	debouncer *Debouncer

	// writeMu serializes state writes so an older snapshot never lands after a newer one
	writeMu sync.Mutex

	mu        sync.Mutex
	pending   *model.GameState
	status    SaveStatus
	lastSaved time.Time
}

// New creates a persistence Adapter. A non-positive delay uses DefaultSaveDelay.
func New(store storage.Store, clk clock.Clock, delay time.Duration, logger *slog.Logger) *Adapter {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	return &Adapter{
		store:     store,
		clock:     clk,
		logger:    logger,
		debouncer: NewDebouncer(clk, delay),
		status:    SaveStatusIdle,
	}
}

// LoadState reads the saved board. A missing or unreadable record yields the
// default board; a saved record is merged over the defaults so fields added
// later keep their default values.
func (a *Adapter) LoadState(ctx context.Context) *model.GameState {
	raw, err := a.store.Get(ctx, StateKey)
	if err != nil {
		if !errors.Is(err, model.ErrKeyNotFound) {
			a.logger.Warn("failed to read saved state, starting fresh",
				slog.String("error", err.Error()),
			)
		}
		return model.NewGameState()
	}

	state, err := DecodeState([]byte(raw))
	if err != nil {
		a.logger.Warn("saved state is corrupt, starting fresh",
			slog.String("error", err.Error()),
		)
		return model.NewGameState()
	}
	return state
}

// DecodeState merges a JSON envelope over the default board and repairs any
// broken invariants
func DecodeState(data []byte) (*model.GameState, error) {
	state := model.NewGameState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	state.Normalize()
	return state, nil
}

// ScheduleSave queues state to be written once changes go quiet
func (a *Adapter) ScheduleSave(state *model.GameState) {
	a.mu.Lock()
	a.pending = state
	a.status = SaveStatusSaving
	a.mu.Unlock()

	a.debouncer.Trigger(a.writePending)
}

// Flush writes any queued state immediately
func (a *Adapter) Flush(ctx context.Context) error {
	a.debouncer.Stop()
	return a.write(ctx)
}

// Status returns the save status and the time of the last successful write
func (a *Adapter) Status() (SaveStatus, time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status, a.lastSaved
}

func (a *Adapter) writePending() {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	_ = a.write(ctx)
}

func (a *Adapter) write(ctx context.Context) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	state := a.pending
	a.pending = nil
	a.mu.Unlock()
	if state == nil {
		return nil
	}

	now := a.clock.Now()
	snapshot := state.Clone()
	millis := now.UnixMilli()
	snapshot.LastSaved = &millis
	if snapshot.Participants == nil {
		snapshot.Participants = []model.Participant{}
	}

	data, err := json.Marshal(snapshot)
	if err == nil {
		err = a.store.Set(ctx, StateKey, string(data))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		if a.pending == nil {
			a.status = SaveStatusFailed
		}
		a.logger.Error("failed to save state",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("save state: %w", err)
	}
	a.lastSaved = now
	if a.pending == nil {
		a.status = SaveStatusSaved
	}
	a.logger.Debug("state saved",
		slog.Int("participants", len(snapshot.Participants)),
		slog.Int("filled", snapshot.FilledCount()),
		slog.Bool("locked", snapshot.IsLocked),
	)
	return nil
}

// LoadActiveParticipant returns the saved selection, or "" if none
func (a *Adapter) LoadActiveParticipant(ctx context.Context) model.ParticipantID {
	value, err := a.store.Get(ctx, ActiveParticipantKey)
	if err != nil {
		if !errors.Is(err, model.ErrKeyNotFound) {
			a.logger.Warn("failed to read active participant",
				slog.String("error", err.Error()),
			)
		}
		return ""
	}
	return model.ParticipantID(value)
}

// SaveActiveParticipant writes the selection immediately; "" removes it
func (a *Adapter) SaveActiveParticipant(ctx context.Context, id model.ParticipantID) {
	var err error
	if id == "" {
		err = a.store.Delete(ctx, ActiveParticipantKey)
	} else {
		err = a.store.Set(ctx, ActiveParticipantKey, string(id))
	}
	if err != nil {
		a.logger.Error("failed to save active participant",
			slog.String("participant_id", string(id)),
			slog.String("error", err.Error()),
		)
	}
}

// LoadView returns the saved view, or the grid view if none or unknown
func (a *Adapter) LoadView(ctx context.Context) model.View {
	value, err := a.store.Get(ctx, ViewKey)
	if err != nil {
		if !errors.Is(err, model.ErrKeyNotFound) {
			a.logger.Warn("failed to read view",
				slog.String("error", err.Error()),
			)
		}
		return model.ViewGrid
	}
	view, ok := model.ParseView(value)
	if !ok {
		return model.ViewGrid
	}
	return view
}

// SaveView writes the view immediately
func (a *Adapter) SaveView(ctx context.Context, view model.View) {
	if err := a.store.Set(ctx, ViewKey, string(view)); err != nil {
		a.logger.Error("failed to save view",
			slog.String("view", string(view)),
			slog.String("error", err.Error()),
		)
	}
}
