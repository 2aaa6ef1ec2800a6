package model

import (
	"strings"
	"unicode/utf8"
)

// ParticipantID uniquely identifies a participant on the board
type ParticipantID string

// Participant is a registered player eligible to occupy grid cells
type Participant struct {
	ID        ParticipantID `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Color     string        `json:"color"`
}

// Initials returns the upper-cased first letters of the first and last name
func (p Participant) Initials() string {
	return strings.ToUpper(firstRune(p.FirstName) + firstRune(p.LastName))
}

// FullName returns "First Last"
func (p Participant) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// Palette is the fixed set of participant colors, assigned by insertion index
var Palette = []string{
	"#ef4444", "#f97316", "#f59e0b", "#84cc16", "#10b981",
	"#06b6d4", "#3b82f6", "#6366f1", "#8b5cf6", "#d946ef",
	"#f43f5e", "#64748b",
}

// ColorFor returns the palette color for the participant at the given index
func ColorFor(index int) string {
	if index < 0 {
		index = -index
	}
	return Palette[index%len(Palette)]
}
