package request

// AddParticipantRequest is the request body for adding a participant
type AddParticipantRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
}

// SetActiveRequest is the request body for selecting the active participant.
// An empty id clears the selection.
type SetActiveRequest struct {
	ParticipantID string `json:"participant_id" validate:"max=64"`
}

// SetTeamNameRequest is the request body for renaming a team
type SetTeamNameRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// SetViewRequest is the request body for switching views
type SetViewRequest struct {
	View string `json:"view" validate:"required,oneof=grid settings"`
}

// ImportRequest is the request body for importing a transfer code
type ImportRequest struct {
	Code string `json:"code" validate:"required"`
}
