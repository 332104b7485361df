package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type userTableModel struct {
	ID                int64          `db:"id"`
	PublicID          string         `db:"public_id"`
	Username          string         `db:"username"`
	Email             string         `db:"email"`
	FirstName         string         `db:"first_name"`
	LastName          string         `db:"last_name"`
	AvatarURL         string         `db:"avatar_url"`
	Country           string         `db:"country"`
	DateOfBirth       sql.NullTime   `db:"date_of_birth"`
	PreferredPosition string         `db:"preferred_position"`
	TeamID            sql.NullString `db:"team_public_id"`
	IsActive          bool           `db:"is_active"`
}

// playerTableModel is a users row joined with its club and season stats.
type playerTableModel struct {
	userTableModel
	TeamName         sql.NullString  `db:"team_name"`
	TeamAbbreviation sql.NullString  `db:"team_abbreviation"`
	Goals            int             `db:"goals"`
	Assists          int             `db:"assists"`
	MatchesPlayed    int             `db:"matches_played"`
	Rating           sql.NullFloat64 `db:"rating"`
	Wins             int             `db:"wins"`
	Losses           int             `db:"losses"`
}

type freeAgentTableModel struct {
	ID                int64        `db:"id"`
	PublicID          string       `db:"public_id"`
	Username          string       `db:"username"`
	FirstName         string       `db:"first_name"`
	LastName          string       `db:"last_name"`
	AvatarURL         string       `db:"avatar_url"`
	PreferredPosition string       `db:"preferred_position"`
	Country           string       `db:"country"`
	Age               int          `db:"age"`
	Rating            float64      `db:"rating"`
	AskingPrice       int64        `db:"asking_price"`
	ContractLength    int          `db:"contract_length"`
	Status            string       `db:"status"`
	Goals             int          `db:"goals"`
	Assists           int          `db:"assists"`
	MatchesPlayed     int          `db:"matches_played"`
	PreviousTeam      string       `db:"previous_team"`
	TransferReason    string       `db:"transfer_reason"`
	AvailableUntil    sql.NullTime `db:"available_until"`
}

type newsTableModel struct {
	ID               int64          `db:"id"`
	PublicID         string         `db:"public_id"`
	Title            string         `db:"title"`
	Excerpt          string         `db:"excerpt"`
	Content          string         `db:"content"`
	Author           string         `db:"author"`
	AuthorAvatarURL  string         `db:"author_avatar_url"`
	Category         string         `db:"category"`
	FeaturedImageURL string         `db:"featured_image_url"`
	PublishedAt      time.Time      `db:"published_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
	Views            int            `db:"views"`
	Likes            int            `db:"likes"`
	Comments         int            `db:"comments"`
	IsFeatured       bool           `db:"is_featured"`
	Tags             pq.StringArray `db:"tags"`
}

type awardTableModel struct {
	ID          int64  `db:"id"`
	PublicID    string `db:"public_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Category    string `db:"category"`
}

type awardWinnerTableModel struct {
	AwardID   string    `db:"award_public_id"`
	Name      string    `db:"name"`
	Team      string    `db:"team"`
	Value     string    `db:"value"`
	AvatarURL string    `db:"avatar_url"`
	Season    string    `db:"season"`
	IsCurrent bool      `db:"is_current"`
	AwardedAt time.Time `db:"awarded_at"`
}

var (
	freeAgentColumns   = qb.MustColumnsOf(freeAgentTableModel{}, "")
	newsColumns        = qb.MustColumnsOf(newsTableModel{}, "")
	awardColumns       = qb.MustColumnsOf(awardTableModel{}, "")
	awardWinnerColumns = qb.MustColumnsOf(awardWinnerTableModel{}, "")

	// Joined columns are spelled out; stats default to zero for members
	// without a player_stats row.
	playerColumns = append(qb.MustColumnsOf(userTableModel{}, "u"),
		"t.name AS team_name",
		"t.abbreviation AS team_abbreviation",
		"COALESCE(ps.goals, 0) AS goals",
		"COALESCE(ps.assists, 0) AS assists",
		"COALESCE(ps.matches_played, 0) AS matches_played",
		"ps.rating AS rating",
		"COALESCE(ps.wins, 0) AS wins",
		"COALESCE(ps.losses, 0) AS losses",
	)
)
