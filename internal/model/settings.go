package model

// View is the organizer's current screen
type View string

const (
	ViewGrid     View = "grid"
	ViewSettings View = "settings"
)

// ParseView validates a view name
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewGrid, ViewSettings:
		return View(s), true
	}
	return "", false
}

// Team selects one of the two axis teams
type Team string

const (
	Team1 Team = "team1" // rows
	Team2 Team = "team2" // columns
)

// ParseTeam validates a team selector
func ParseTeam(s string) (Team, bool) {
	switch Team(s) {
	case Team1, Team2:
		return Team(s), true
	}
	return "", false
}

// Default team labels for a fresh board
const (
	DefaultTeam1 = "Patriots"
	DefaultTeam2 = "Seahawks"
)

// TeamPreset is a suggested team label with its primary color
type TeamPreset struct {
	Name  string
	Color string
}

// TeamPresets are the quick-pick team names offered in settings
var TeamPresets = []TeamPreset{
	{Name: "NE Patriots", Color: "#002244"},
	{Name: "SEA Seahawks", Color: "#002244"},
	{Name: "KC Chiefs", Color: "#E31837"},
	{Name: "SF 49ers", Color: "#AA0000"},
	{Name: "PHI Eagles", Color: "#004C54"},
	{Name: "CIN Bengals", Color: "#FB4F14"},
	{Name: "DAL Cowboys", Color: "#003594"},
	{Name: "BUF Bills", Color: "#00338D"},
}
