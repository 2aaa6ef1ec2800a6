package model

import "errors"

// Common errors used across the application
var (
	// Participant errors
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidName         = errors.New("first and last name are required")

	// Board errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrBoardLocked     = errors.New("board is locked")
	ErrBoardNotLocked  = errors.New("board is not locked")
	ErrGridNotFull     = errors.New("grid is not full")
	ErrInvalidTeam     = errors.New("invalid team")
	ErrInvalidView     = errors.New("invalid view")

	// Transfer errors
	ErrInvalidTransferCode = errors.New("invalid game code")

	// Analysis errors
	ErrAnalysisInProgress = errors.New("analysis already in progress")

	// Storage errors
	ErrKeyNotFound = errors.New("key not found")
)
