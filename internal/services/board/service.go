package board

import (
	"strings"

	"github.com/graretg02/Superbowl-app2/internal/dependencies/ids"
	"github.com/graretg02/Superbowl-app2/internal/dependencies/random"
	"github.com/graretg02/Superbowl-app2/internal/model"
)

// Service implements the board operations. Every operation returns a new
// state and never modifies its input; an operation whose preconditions do
// not hold returns the input unchanged.
type Service struct {
	random random.Random
	ids    ids.Generator
}

// New creates a new board Service
func New(random random.Random, ids ids.Generator) *Service {
	return &Service{
		random: random,
		ids:    ids,
	}
}

// AddParticipant appends a participant with a fresh id and the next palette color.
// Names are trimmed; if either is empty the state is returned unchanged with a nil participant.
func (s *Service) AddParticipant(state *model.GameState, firstName, lastName string) (*model.GameState, *model.Participant) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return state, nil
	}

	p := model.Participant{
		ID:        model.ParticipantID(s.ids.NewID()),
		FirstName: firstName,
		LastName:  lastName,
		Color:     model.ColorFor(len(state.Participants)),
	}

	next := state.Clone()
	next.Participants = append(next.Participants, p)
	return next, &p
}

// RemoveParticipant drops the participant and clears every cell they held
func (s *Service) RemoveParticipant(state *model.GameState, id model.ParticipantID) *model.GameState {
	if !state.HasParticipant(id) {
		return state
	}

	next := state.Clone()
	participants := make([]model.Participant, 0, len(state.Participants)-1)
	for _, p := range state.Participants {
		if p.ID != id {
			participants = append(participants, p)
		}
	}
	next.Participants = participants

	for row := 0; row < model.GridSize; row++ {
		for col := 0; col < model.GridSize; col++ {
			if cell := next.Grid[row][col]; cell != nil && *cell == id {
				next.Grid[row][col] = nil
			}
		}
	}
	return next
}

// ToggleCell clears an occupied cell, or assigns an empty one to the active
// participant. Locked boards, out-of-range positions, and an empty cell with
// no usable active participant are left unchanged. An active id that no
// longer names a participant is treated as no selection.
func (s *Service) ToggleCell(state *model.GameState, pos model.Position, active model.ParticipantID) *model.GameState {
	if state.IsLocked || !pos.IsValid() {
		return state
	}

	next := state.Clone()
	if next.Grid[pos.Row][pos.Col] != nil {
		next.Grid[pos.Row][pos.Col] = nil
		return next
	}

	if active == "" || !state.HasParticipant(active) {
		return state
	}
	id := active
	next.Grid[pos.Row][pos.Col] = &id
	return next
}

// Randomize draws independent row and column permutations and locks the board.
// Only a full, unlocked grid can be randomized.
func (s *Service) Randomize(state *model.GameState) *model.GameState {
	if state.IsLocked || !state.IsFull() {
		return state
	}

	next := state.Clone()
	next.RowNumbers = s.permutation()
	next.ColNumbers = s.permutation()
	next.IsLocked = true
	return next
}

// Unlock discards the drawn axis numbers. Participants and cells are kept.
func (s *Service) Unlock(state *model.GameState) *model.GameState {
	next := state.Clone()
	next.RowNumbers = model.Axis{}
	next.ColNumbers = model.Axis{}
	next.IsLocked = false
	return next
}

// Reset returns the default empty board. Everything on the previous board is
// discarded and cannot be recovered.
func (s *Service) Reset() *model.GameState {
	return model.NewGameState()
}

// SetTeamName updates one axis label. Any text is accepted, including empty.
func (s *Service) SetTeamName(state *model.GameState, team model.Team, name string) *model.GameState {
	next := state.Clone()
	switch team {
	case model.Team1:
		next.Team1 = name
	case model.Team2:
		next.Team2 = name
	default:
		return state
	}
	return next
}

// permutation returns a uniformly shuffled 0..9 using Fisher-Yates
func (s *Service) permutation() model.Axis {
	var nums [model.GridSize]int
	for i := range nums {
		nums[i] = i
	}
	for i := len(nums) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		nums[i], nums[j] = nums[j], nums[i]
	}

	var axis model.Axis
	for i := range nums {
		v := nums[i]
		axis[i] = &v
	}
	return axis
}

// Interface for dependency injection
type ServiceInterface interface {
	AddParticipant(state *model.GameState, firstName, lastName string) (*model.GameState, *model.Participant)
	RemoveParticipant(state *model.GameState, id model.ParticipantID) *model.GameState
	ToggleCell(state *model.GameState, pos model.Position, active model.ParticipantID) *model.GameState
	Randomize(state *model.GameState) *model.GameState
	Unlock(state *model.GameState) *model.GameState
	Reset() *model.GameState
	SetTeamName(state *model.GameState, team model.Team, name string) *model.GameState
}

var _ ServiceInterface = (*Service)(nil)
