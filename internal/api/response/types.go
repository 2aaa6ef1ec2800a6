package response

import (
	"time"

	"github.com/graretg02/Superbowl-app2/internal/model"
	"github.com/graretg02/Superbowl-app2/internal/services/game"
)

// Participant represents a participant in API responses
type Participant struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Color       string `json:"color"`
	Initials    string `json:"initials"`
	SquareCount int    `json:"square_count"`
}

// ParticipantFromModel converts a model.Participant
func ParticipantFromModel(p model.Participant, squares int) Participant {
	return Participant{
		ID:          string(p.ID),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Color:       p.Color,
		Initials:    p.Initials(),
		SquareCount: squares,
	}
}

// Board is the full board plus the organizer's session
type Board struct {
	Participants   []Participant `json:"participants"`
	Grid           [][]*string   `json:"grid"`
	RowNumbers     []*int        `json:"row_numbers"`
	ColNumbers     []*int        `json:"col_numbers"`
	Team1          string        `json:"team1"`
	Team2          string        `json:"team2"`
	IsLocked       bool          `json:"is_locked"`
	FilledCount    int           `json:"filled_count"`
	RemainingCount int           `json:"remaining_count"`

	ActiveParticipantID *string    `json:"active_participant_id"`
	View                string     `json:"view"`
	Analysis            string     `json:"analysis,omitempty"`
	SaveStatus          string     `json:"save_status"`
	LastSavedAt         *time.Time `json:"last_saved_at,omitempty"`
}

// BoardFromSession converts a controller session
func BoardFromSession(s game.Session) Board {
	state := s.State
	counts := state.SquareCounts()

	participants := make([]Participant, len(state.Participants))
	for i, p := range state.Participants {
		participants[i] = ParticipantFromModel(p, counts[p.ID])
	}

	grid := make([][]*string, model.GridSize)
	for row := range grid {
		grid[row] = make([]*string, model.GridSize)
		for col := range grid[row] {
			if id := state.Grid[row][col]; id != nil {
				v := string(*id)
				grid[row][col] = &v
			}
		}
	}

	filled := state.FilledCount()
	resp := Board{
		Participants:   participants,
		Grid:           grid,
		RowNumbers:     axis(state.RowNumbers),
		ColNumbers:     axis(state.ColNumbers),
		Team1:          state.Team1,
		Team2:          state.Team2,
		IsLocked:       state.IsLocked,
		FilledCount:    filled,
		RemainingCount: model.CellCount - filled,
		View:           string(s.View),
		Analysis:       s.Analysis,
		SaveStatus:     string(s.SaveStatus),
	}
	if s.ActiveParticipant != "" {
		active := string(s.ActiveParticipant)
		resp.ActiveParticipantID = &active
	}
	if !s.LastSaved.IsZero() {
		saved := s.LastSaved
		resp.LastSavedAt = &saved
	}
	return resp
}

func axis(a model.Axis) []*int {
	out := make([]*int, len(a))
	copy(out, a[:])
	return out
}

// AddParticipantResponse is returned when a participant is added
type AddParticipantResponse struct {
	Participant Participant `json:"participant"`
	Board       Board       `json:"board"`
}

// TeamPreset represents a quick-pick team name
type TeamPreset struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TeamPresetsFromModel converts the preset list
func TeamPresetsFromModel(presets []model.TeamPreset) []TeamPreset {
	out := make([]TeamPreset, len(presets))
	for i, p := range presets {
		out[i] = TeamPreset{Name: p.Name, Color: p.Color}
	}
	return out
}

// TransferCode carries an export code
type TransferCode struct {
	Code string `json:"code"`
}

// Analysis carries the analyst's commentary
type Analysis struct {
	Text string `json:"text"`
}

// Health is the health check response
type Health struct {
	Status     string `json:"status"`
	SaveStatus string `json:"save_status"`
}
