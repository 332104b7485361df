package match

import (
	"strings"
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusPostponed Status = "postponed"
)

// Match is a single fixture between two teams of a season. Scores stay nil
// until the match has been played.
type Match struct {
	ID              string
	SeasonID        string
	Matchday        int
	HomeTeamID      string
	AwayTeamID      string
	HomeScore       *int
	AwayScore       *int
	Status          Status
	MatchDate       time.Time
	Venue           string
	Referee         string
	CompetitionType string
}

// NormalizeStatus maps provider spellings onto the four known statuses.
// Unknown values are returned lower-cased so callers can still report them.
func NormalizeStatus(value string) Status {
	status := strings.ToLower(strings.TrimSpace(value))
	switch status {
	case "", "scheduled", "not_started", "ns", "upcoming":
		return StatusScheduled
	case "live", "in_play", "ht", "1h", "2h", "et":
		return StatusLive
	case "completed", "finished", "ft", "aet", "pen":
		return StatusCompleted
	case "postponed", "pst", "cancelled", "canceled", "abandoned":
		return StatusPostponed
	default:
		return Status(status)
	}
}

func (m Match) IsCompleted() bool {
	return NormalizeStatus(string(m.Status)) == StatusCompleted
}

func (m Match) IsLive() bool {
	return NormalizeStatus(string(m.Status)) == StatusLive
}

func (m Match) HasScore() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// Involves reports whether teamID played in the match.
func (m Match) Involves(teamID string) bool {
	return teamID != "" && (m.HomeTeamID == teamID || m.AwayTeamID == teamID)
}

// TotalGoals is zero for unplayed matches.
func (m Match) TotalGoals() int {
	total := 0
	if m.HomeScore != nil {
		total += *m.HomeScore
	}
	if m.AwayScore != nil {
		total += *m.AwayScore
	}
	return total
}

// ScoresFor returns the team's score first and the opponent's second.
func (m Match) ScoresFor(teamID string) (own, opponent int, ok bool) {
	if !m.HasScore() {
		return 0, 0, false
	}
	switch teamID {
	case m.HomeTeamID:
		return *m.HomeScore, *m.AwayScore, true
	case m.AwayTeamID:
		return *m.AwayScore, *m.HomeScore, true
	default:
		return 0, 0, false
	}
}

// OpponentOf returns the other participant, or "" when teamID did not play.
func (m Match) OpponentOf(teamID string) string {
	switch teamID {
	case m.HomeTeamID:
		return m.AwayTeamID
	case m.AwayTeamID:
		return m.HomeTeamID
	default:
		return ""
	}
}
