package postgres

import (
	"database/sql"
	"time"

	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type seasonTableModel struct {
	ID              int64        `db:"id"`
	PublicID        string       `db:"public_id"`
	Name            string       `db:"name"`
	CompetitionType string       `db:"competition_type"`
	StartDate       time.Time    `db:"start_date"`
	EndDate         sql.NullTime `db:"end_date"`
	IsActive        bool         `db:"is_active"`
}

type teamTableModel struct {
	ID           int64         `db:"id"`
	PublicID     string        `db:"public_id"`
	Name         string        `db:"name"`
	Abbreviation string        `db:"abbreviation"`
	LogoURL      string        `db:"logo_url"`
	HomeVenue    string        `db:"home_venue"`
	FoundedYear  sql.NullInt64 `db:"founded_year"`
	IsActive     bool          `db:"is_active"`
}

type matchTableModel struct {
	ID              int64         `db:"id"`
	PublicID        string        `db:"public_id"`
	SeasonID        string        `db:"season_public_id"`
	Matchday        int           `db:"matchday"`
	HomeTeamID      string        `db:"home_team_public_id"`
	AwayTeamID      string        `db:"away_team_public_id"`
	HomeScore       sql.NullInt64 `db:"home_score"`
	AwayScore       sql.NullInt64 `db:"away_score"`
	Status          string        `db:"status"`
	MatchDate       time.Time     `db:"match_date"`
	Venue           string        `db:"venue"`
	Referee         string        `db:"referee"`
	CompetitionType string        `db:"competition_type"`
}

var (
	seasonColumns = qb.MustColumnsOf(seasonTableModel{}, "")
	teamColumns   = qb.MustColumnsOf(teamTableModel{}, "")
	matchColumns  = qb.MustColumnsOf(matchTableModel{}, "")
)
