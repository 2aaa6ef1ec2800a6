package model

// GridSize is the dimension of the squares grid and the length of each axis
const GridSize = 10

// CellCount is the number of squares on a full board
const CellCount = GridSize * GridSize

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// IsValid returns true if the position is within the grid
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

// Grid is the 10x10 matrix of cell assignments, nil meaning unclaimed.
// Cells name participants by id; the grid does not own them.
type Grid [GridSize][GridSize]*ParticipantID

// Axis is a row or column number sequence, all nil until randomized
type Axis [GridSize]*int

// GameState is the whole board: participants, grid, axis numbers, teams and lock.
// The field names on the wire match the saved-state envelope.
type GameState struct {
	Participants []Participant `json:"participants"`
	Grid         Grid          `json:"grid"`
	RowNumbers   Axis          `json:"rowNumbers"`
	ColNumbers   Axis          `json:"colNumbers"`
	Team1        string        `json:"team1"`
	Team2        string        `json:"team2"`
	IsLocked     bool          `json:"isLocked"`

	// LastSaved is unix milliseconds, set only when serialized to storage
	LastSaved *int64 `json:"lastSaved,omitempty"`
}

// NewGameState returns the default empty board
func NewGameState() *GameState {
	return &GameState{
		Participants: []Participant{},
		Team1:        DefaultTeam1,
		Team2:        DefaultTeam2,
	}
}

// Clone returns a deep copy of the state
func (s *GameState) Clone() *GameState {
	c := *s
	if s.Participants != nil {
		c.Participants = make([]Participant, len(s.Participants))
		copy(c.Participants, s.Participants)
	}
	if s.LastSaved != nil {
		ts := *s.LastSaved
		c.LastSaved = &ts
	}
	// Grid and axes are arrays of pointers to immutable values, so the value copy suffices
	return &c
}

// Cell returns the participant occupying pos, if any
func (s *GameState) Cell(pos Position) (ParticipantID, bool) {
	if !pos.IsValid() {
		return "", false
	}
	id := s.Grid[pos.Row][pos.Col]
	if id == nil {
		return "", false
	}
	return *id, true
}

// Participant returns the participant with the given id
func (s *GameState) Participant(id ParticipantID) (Participant, bool) {
	for _, p := range s.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// HasParticipant reports whether id is a current participant
func (s *GameState) HasParticipant(id ParticipantID) bool {
	_, ok := s.Participant(id)
	return ok
}

// FilledCount returns the number of claimed cells
func (s *GameState) FilledCount() int {
	count := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if s.Grid[row][col] != nil {
				count++
			}
		}
	}
	return count
}

// IsFull returns true if every cell is claimed
func (s *GameState) IsFull() bool {
	return s.FilledCount() == CellCount
}

// SquareCounts returns the number of cells held by each participant
func (s *GameState) SquareCounts() map[ParticipantID]int {
	counts := make(map[ParticipantID]int, len(s.Participants))
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if id := s.Grid[row][col]; id != nil {
				counts[*id]++
			}
		}
	}
	return counts
}

// Values returns the axis as plain ints, or false unless it is a permutation of 0..9
func (a Axis) Values() ([]int, bool) {
	var seen [GridSize]bool
	values := make([]int, GridSize)
	for i, v := range a {
		if v == nil || *v < 0 || *v >= GridSize || seen[*v] {
			return nil, false
		}
		seen[*v] = true
		values[i] = *v
	}
	return values, true
}

// IsEmpty returns true if no axis entry is set
func (a Axis) IsEmpty() bool {
	for _, v := range a {
		if v != nil {
			return false
		}
	}
	return true
}

// Normalize repairs a state decoded from storage or a transfer code so the
// board invariants hold: participants non-nil, cells only reference known
// participants, and the lock flag agrees with the axes. A well-formed state
// is left unchanged.
func (s *GameState) Normalize() {
	if s.Participants == nil {
		s.Participants = []Participant{}
	}

	known := make(map[ParticipantID]bool, len(s.Participants))
	for _, p := range s.Participants {
		known[p.ID] = true
	}
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if id := s.Grid[row][col]; id != nil && !known[*id] {
				s.Grid[row][col] = nil
			}
		}
	}

	_, rowsOK := s.RowNumbers.Values()
	_, colsOK := s.ColNumbers.Values()
	if !s.IsLocked || !rowsOK || !colsOK {
		s.IsLocked = false
		s.RowNumbers = Axis{}
		s.ColNumbers = Axis{}
	}
}
