package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Board:
		o.printBoard(v)
	case AddParticipantResult:
		fmt.Fprintf(o.w, "Added %s %s (%s) [%s]\n", v.Participant.FirstName, v.Participant.LastName, v.Participant.Initials, v.Participant.ID)
		fmt.Fprintln(o.w, "Now active.")
	case []TeamPreset:
		for _, p := range v {
			fmt.Fprintf(o.w, "%-14s %s\n", p.Name, p.Color)
		}
	case TransferCode:
		fmt.Fprintln(o.w, v.Code)
	case AnalysisResult:
		fmt.Fprintln(o.w, v.Text)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
		fmt.Fprintf(o.w, "Save: %s\n", v.SaveStatus)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Participant response type (matches API)
type Participant struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Color       string `json:"color"`
	Initials    string `json:"initials"`
	SquareCount int    `json:"square_count"`
}

// Board response type
type Board struct {
	Participants        []Participant `json:"participants"`
	Grid                [][]*string   `json:"grid"`
	RowNumbers          []*int        `json:"row_numbers"`
	ColNumbers          []*int        `json:"col_numbers"`
	Team1               string        `json:"team1"`
	Team2               string        `json:"team2"`
	IsLocked            bool          `json:"is_locked"`
	FilledCount         int           `json:"filled_count"`
	RemainingCount      int           `json:"remaining_count"`
	ActiveParticipantID *string       `json:"active_participant_id"`
	View                string        `json:"view"`
	Analysis            string        `json:"analysis,omitempty"`
	SaveStatus          string        `json:"save_status"`
}

// AddParticipantResult response type
type AddParticipantResult struct {
	Participant Participant `json:"participant"`
	Board       Board       `json:"board"`
}

// TeamPreset response type
type TeamPreset struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TransferCode response type
type TransferCode struct {
	Code string `json:"code"`
}

// AnalysisResult response type
type AnalysisResult struct {
	Text string `json:"text"`
}

// HealthResult response type
type HealthResult struct {
	Status     string `json:"status"`
	SaveStatus string `json:"save_status"`
}

func (o *Output) printBoard(b Board) {
	initials := make(map[string]string, len(b.Participants))
	for _, p := range b.Participants {
		initials[p.ID] = p.Initials
	}

	state := "open"
	if b.IsLocked {
		state = "locked"
	}
	fmt.Fprintf(o.w, "%s (rows) vs %s (columns) - %s\n", b.Team1, b.Team2, state)
	fmt.Fprintf(o.w, "Filled: %d  Remaining: %d  Save: %s\n\n", b.FilledCount, b.RemainingCount, b.SaveStatus)

	size := len(b.Grid)

	// Column headers are the drawn numbers once locked
	fmt.Fprint(o.w, "     ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(o.w, " %2s ", axisLabel(b.ColNumbers, col))
	}
	fmt.Fprintln(o.w)

	border := "    +" + strings.Repeat("----", size) + "+"
	fmt.Fprintln(o.w, border)

	for row := 0; row < size; row++ {
		fmt.Fprintf(o.w, " %2s |", axisLabel(b.RowNumbers, row))
		for col := 0; col < size; col++ {
			cell := " ."
			if id := b.Grid[row][col]; id != nil {
				cell = initials[*id]
				if cell == "" {
					cell = "??"
				}
			}
			fmt.Fprintf(o.w, " %2s ", cell)
		}
		fmt.Fprintln(o.w, "|")
	}
	fmt.Fprintln(o.w, border)

	if len(b.Participants) > 0 {
		fmt.Fprintf(o.w, "\nParticipants (%d):\n", len(b.Participants))
		for _, p := range b.Participants {
			marker := " "
			if b.ActiveParticipantID != nil && *b.ActiveParticipantID == p.ID {
				marker = "*"
			}
			fmt.Fprintf(o.w, " %s %-2s %s %s - %d squares [%s]\n", marker, p.Initials, p.FirstName, p.LastName, p.SquareCount, p.ID)
		}
	}

	if b.Analysis != "" {
		fmt.Fprintf(o.w, "\nAnalysis:\n%s\n", b.Analysis)
	}
}

// axisLabel shows the drawn number, or "?" before the draw
func axisLabel(nums []*int, i int) string {
	if i < len(nums) && nums[i] != nil {
		return fmt.Sprint(*nums[i])
	}
	return "?"
}
