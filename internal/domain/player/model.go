package player

import (
	"fmt"
	"strings"
	"time"
)

const (
	PositionGoalkeeper = "goalkeeper"
	PositionDefender   = "defender"
	PositionMidfielder = "midfielder"
	PositionStriker    = "striker"
)

// Stats are the season totals reported for a player.
type Stats struct {
	Goals         int
	Assists       int
	MatchesPlayed int
	Rating        float64
	Wins          int
	Losses        int
}

// Player is a registered member who plays for a club.
type Player struct {
	ID                string
	Username          string
	Email             string
	FirstName         string
	LastName          string
	AvatarURL         string
	Country           string
	DateOfBirth       *time.Time
	PreferredPosition string
	TeamID            string
	TeamName          string
	TeamAbbreviation  string
	IsActive          bool
	Stats             Stats
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Username == "" {
		return fmt.Errorf("player username is required")
	}

	return nil
}

// DisplayName prefers the full name and falls back to the username.
func (p Player) DisplayName() string {
	full := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if full == "" {
		return p.Username
	}
	return full
}

// WinRate is a percentage of matches played, zero when nothing was played.
func (s Stats) WinRate() float64 {
	if s.MatchesPlayed <= 0 {
		return 0
	}
	return float64(s.Wins) * 100 / float64(s.MatchesPlayed)
}
