package rest

import (
	"strings"
	"time"
)

type seasonRow struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CompetitionType string  `json:"competition_type"`
	StartDate       string  `json:"start_date"`
	EndDate         *string `json:"end_date"`
	IsActive        bool    `json:"is_active"`
}

type teamRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LogoURL      string `json:"logo_url"`
	HomeVenue    string `json:"home_venue"`
	FoundedYear  *int   `json:"founded_year"`
	IsActive     bool   `json:"is_active"`
}

type matchRow struct {
	ID              string `json:"id"`
	SeasonID        string `json:"season_id"`
	Matchday        int    `json:"matchday"`
	HomeTeamID      string `json:"home_team_id"`
	AwayTeamID      string `json:"away_team_id"`
	HomeScore       *int   `json:"home_score"`
	AwayScore       *int   `json:"away_score"`
	Status          string `json:"status"`
	MatchDate       string `json:"match_date"`
	Venue           string `json:"venue"`
	Referee         string `json:"referee"`
	CompetitionType string `json:"competition_type"`
}

type embeddedTeam struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LogoURL      string `json:"logo_url"`
}

type embeddedPlayerStats struct {
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	MatchesPlayed int     `json:"matches_played"`
	Rating        float64 `json:"rating"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
}

type playerRow struct {
	ID                string               `json:"id"`
	Username          string               `json:"username"`
	Email             string               `json:"email"`
	FirstName         string               `json:"first_name"`
	LastName          string               `json:"last_name"`
	AvatarURL         string               `json:"avatar_url"`
	Country           string               `json:"country"`
	DateOfBirth       *string              `json:"date_of_birth"`
	PreferredPosition string               `json:"preferred_position"`
	TeamID            *string              `json:"team_id"`
	IsActive          bool                 `json:"is_active"`
	Team              *embeddedTeam        `json:"team"`
	Stats             *embeddedPlayerStats `json:"stats"`
}

type freeAgentRow struct {
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	AvatarURL         string  `json:"avatar_url"`
	PreferredPosition string  `json:"preferred_position"`
	Country           string  `json:"country"`
	Age               int     `json:"age"`
	Rating            float64 `json:"rating"`
	AskingPrice       int64   `json:"asking_price"`
	ContractLength    int     `json:"contract_length"`
	Status            string  `json:"status"`
	Goals             int     `json:"goals"`
	Assists           int     `json:"assists"`
	MatchesPlayed     int     `json:"matches_played"`
	PreviousTeam      string  `json:"previous_team"`
	TransferReason    string  `json:"transfer_reason"`
	AvailableUntil    *string `json:"available_until"`
}

type newsRow struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Excerpt          string   `json:"excerpt"`
	Content          string   `json:"content"`
	Author           string   `json:"author"`
	AuthorAvatarURL  string   `json:"author_avatar_url"`
	Category         string   `json:"category"`
	FeaturedImageURL string   `json:"featured_image_url"`
	PublishedAt      string   `json:"published_at"`
	UpdatedAt        string   `json:"updated_at"`
	Views            int      `json:"views"`
	Likes            int      `json:"likes"`
	Comments         int      `json:"comments"`
	IsFeatured       bool     `json:"is_featured"`
	Tags             []string `json:"tags"`
}

type awardWinnerRow struct {
	Name      string `json:"name"`
	Team      string `json:"team"`
	Value     string `json:"value"`
	AvatarURL string `json:"avatar_url"`
	Season    string `json:"season"`
	IsCurrent bool   `json:"is_current"`
	AwardedAt string `json:"awarded_at"`
}

type awardRow struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Winners     []awardWinnerRow `json:"winners"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	time.DateOnly,
}

// parseTime accepts the timestamp and date encodings PostgREST emits.
// Zone-less values are read as UTC.
func parseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseTimePtr(value *string) *time.Time {
	if value == nil {
		return nil
	}
	parsed, ok := parseTime(*value)
	if !ok {
		return nil
	}
	return &parsed
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func derefInt(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func copyInt(value *int) *int {
	if value == nil {
		return nil
	}
	out := *value
	return &out
}
