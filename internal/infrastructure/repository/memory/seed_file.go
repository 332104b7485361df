package memory

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/award"
	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Seasons    []seedSeason    `yaml:"seasons"`
	Teams      []seedTeam      `yaml:"teams"`
	Matches    []seedMatch     `yaml:"matches"`
	Players    []seedPlayer    `yaml:"players"`
	FreeAgents []seedFreeAgent `yaml:"free_agents"`
	News       []seedArticle   `yaml:"news"`
	Awards     []seedAward     `yaml:"awards"`
}

type seedSeason struct {
	ID              string     `yaml:"id"`
	Name            string     `yaml:"name"`
	CompetitionType string     `yaml:"competition_type"`
	StartDate       time.Time  `yaml:"start_date"`
	EndDate         *time.Time `yaml:"end_date"`
	IsActive        bool       `yaml:"is_active"`
}

type seedTeam struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Abbreviation string `yaml:"abbreviation"`
	LogoURL      string `yaml:"logo_url"`
	HomeVenue    string `yaml:"home_venue"`
	FoundedYear  int    `yaml:"founded_year"`
	IsActive     bool   `yaml:"is_active"`
}

type seedMatch struct {
	ID              string    `yaml:"id"`
	SeasonID        string    `yaml:"season_id"`
	Matchday        int       `yaml:"matchday"`
	HomeTeamID      string    `yaml:"home_team_id"`
	AwayTeamID      string    `yaml:"away_team_id"`
	HomeScore       *int      `yaml:"home_score"`
	AwayScore       *int      `yaml:"away_score"`
	Status          string    `yaml:"status"`
	MatchDate       time.Time `yaml:"match_date"`
	Venue           string    `yaml:"venue"`
	Referee         string    `yaml:"referee"`
	CompetitionType string    `yaml:"competition_type"`
}

type seedPlayerStats struct {
	Goals         int     `yaml:"goals"`
	Assists       int     `yaml:"assists"`
	MatchesPlayed int     `yaml:"matches_played"`
	Rating        float64 `yaml:"rating"`
	Wins          int     `yaml:"wins"`
	Losses        int     `yaml:"losses"`
}

type seedPlayer struct {
	ID                string          `yaml:"id"`
	Username          string          `yaml:"username"`
	Email             string          `yaml:"email"`
	FirstName         string          `yaml:"first_name"`
	LastName          string          `yaml:"last_name"`
	AvatarURL         string          `yaml:"avatar_url"`
	Country           string          `yaml:"country"`
	DateOfBirth       *time.Time      `yaml:"date_of_birth"`
	PreferredPosition string          `yaml:"preferred_position"`
	TeamID            string          `yaml:"team_id"`
	IsActive          *bool           `yaml:"is_active"`
	Stats             seedPlayerStats `yaml:"stats"`
}

type seedFreeAgent struct {
	ID                string          `yaml:"id"`
	Username          string          `yaml:"username"`
	FirstName         string          `yaml:"first_name"`
	LastName          string          `yaml:"last_name"`
	AvatarURL         string          `yaml:"avatar_url"`
	PreferredPosition string          `yaml:"preferred_position"`
	Country           string          `yaml:"country"`
	Age               int             `yaml:"age"`
	Rating            float64         `yaml:"rating"`
	AskingPrice       int64           `yaml:"asking_price"`
	ContractLength    int             `yaml:"contract_length"`
	Status            string          `yaml:"status"`
	Stats             seedPlayerStats `yaml:"stats"`
	PreviousTeam      string          `yaml:"previous_team"`
	TransferReason    string          `yaml:"transfer_reason"`
	AvailableUntil    *time.Time      `yaml:"available_until"`
}

type seedArticle struct {
	ID               string    `yaml:"id"`
	Title            string    `yaml:"title"`
	Excerpt          string    `yaml:"excerpt"`
	Content          string    `yaml:"content"`
	Author           string    `yaml:"author"`
	AuthorAvatarURL  string    `yaml:"author_avatar_url"`
	Category         string    `yaml:"category"`
	FeaturedImageURL string    `yaml:"featured_image_url"`
	PublishedAt      time.Time `yaml:"published_at"`
	UpdatedAt        time.Time `yaml:"updated_at"`
	Views            int       `yaml:"views"`
	Likes            int       `yaml:"likes"`
	Comments         int       `yaml:"comments"`
	IsFeatured       bool      `yaml:"is_featured"`
	Tags             []string  `yaml:"tags"`
}

type seedWinner struct {
	Name      string `yaml:"name"`
	Team      string `yaml:"team"`
	Value     string `yaml:"value"`
	AvatarURL string `yaml:"avatar_url"`
	Season    string `yaml:"season"`
}

type seedAward struct {
	ID              string       `yaml:"id"`
	Name            string       `yaml:"name"`
	Description     string       `yaml:"description"`
	Category        string       `yaml:"category"`
	CurrentWinner   *seedWinner  `yaml:"current_winner"`
	PreviousWinners []seedWinner `yaml:"previous_winners"`
}

// LoadSeedFile reads a YAML dataset from disk.
func LoadSeedFile(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed file: %w", err)
	}

	data, err := ParseSeed(raw)
	if err != nil {
		return Dataset{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return data, nil
}

// ParseSeed decodes a YAML dataset. Unknown keys are rejected so typos in
// hand-written files do not silently drop data. Player team names are
// filled from the team list.
func ParseSeed(raw []byte) (Dataset, error) {
	var file seedFile
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return Dataset{}, fmt.Errorf("decode yaml: %w", err)
	}

	var out Dataset

	for i, item := range file.Seasons {
		value := season.Season{
			ID:              strings.TrimSpace(item.ID),
			Name:            item.Name,
			CompetitionType: item.CompetitionType,
			StartDate:       item.StartDate.UTC(),
			EndDate:         item.EndDate,
			IsActive:        item.IsActive,
		}
		if err := value.Validate(); err != nil {
			return Dataset{}, fmt.Errorf("seasons[%d]: %w", i, err)
		}
		out.Seasons = append(out.Seasons, value)
	}

	teamsByID := make(map[string]team.Team, len(file.Teams))
	for i, item := range file.Teams {
		value := team.Team{
			ID:           strings.TrimSpace(item.ID),
			Name:         item.Name,
			Abbreviation: item.Abbreviation,
			LogoURL:      item.LogoURL,
			HomeVenue:    item.HomeVenue,
			FoundedYear:  item.FoundedYear,
			IsActive:     item.IsActive,
		}
		if err := value.Validate(); err != nil {
			return Dataset{}, fmt.Errorf("teams[%d]: %w", i, err)
		}
		teamsByID[value.ID] = value
		out.Teams = append(out.Teams, value)
	}

	// Matches are kept as written; bad references are reported by the
	// standings build rather than rejected here.
	for i, item := range file.Matches {
		if strings.TrimSpace(item.ID) == "" {
			return Dataset{}, fmt.Errorf("matches[%d]: match id is required", i)
		}
		out.Matches = append(out.Matches, match.Match{
			ID:              strings.TrimSpace(item.ID),
			SeasonID:        item.SeasonID,
			Matchday:        item.Matchday,
			HomeTeamID:      item.HomeTeamID,
			AwayTeamID:      item.AwayTeamID,
			HomeScore:       item.HomeScore,
			AwayScore:       item.AwayScore,
			Status:          match.NormalizeStatus(item.Status),
			MatchDate:       item.MatchDate.UTC(),
			Venue:           item.Venue,
			Referee:         item.Referee,
			CompetitionType: item.CompetitionType,
		})
	}

	for i, item := range file.Players {
		value := player.Player{
			ID:                strings.TrimSpace(item.ID),
			Username:          item.Username,
			Email:             item.Email,
			FirstName:         item.FirstName,
			LastName:          item.LastName,
			AvatarURL:         item.AvatarURL,
			Country:           item.Country,
			DateOfBirth:       item.DateOfBirth,
			PreferredPosition: strings.ToLower(item.PreferredPosition),
			TeamID:            item.TeamID,
			IsActive:          item.IsActive == nil || *item.IsActive,
			Stats: player.Stats{
				Goals:         item.Stats.Goals,
				Assists:       item.Stats.Assists,
				MatchesPlayed: item.Stats.MatchesPlayed,
				Rating:        item.Stats.Rating,
				Wins:          item.Stats.Wins,
				Losses:        item.Stats.Losses,
			},
		}
		if err := value.Validate(); err != nil {
			return Dataset{}, fmt.Errorf("players[%d]: %w", i, err)
		}
		if t, ok := teamsByID[value.TeamID]; ok {
			value.TeamName = t.Name
			value.TeamAbbreviation = t.Abbreviation
		}
		out.Players = append(out.Players, value)
	}

	for i, item := range file.FreeAgents {
		status := freeagent.Status(strings.ToLower(strings.TrimSpace(item.Status)))
		if !status.Valid() {
			return Dataset{}, fmt.Errorf("free_agents[%d]: unknown status %q", i, item.Status)
		}
		out.FreeAgents = append(out.FreeAgents, freeagent.FreeAgent{
			ID:                strings.TrimSpace(item.ID),
			Username:          item.Username,
			FirstName:         item.FirstName,
			LastName:          item.LastName,
			AvatarURL:         item.AvatarURL,
			PreferredPosition: strings.ToLower(item.PreferredPosition),
			Country:           item.Country,
			Age:               item.Age,
			Rating:            item.Rating,
			AskingPrice:       item.AskingPrice,
			ContractLength:    item.ContractLength,
			Status:            status,
			Stats: freeagent.Stats{
				Goals:         item.Stats.Goals,
				Assists:       item.Stats.Assists,
				MatchesPlayed: item.Stats.MatchesPlayed,
				Rating:        item.Stats.Rating,
			},
			PreviousTeam:   item.PreviousTeam,
			TransferReason: item.TransferReason,
			AvailableUntil: item.AvailableUntil,
		})
	}

	for _, item := range file.News {
		out.News = append(out.News, news.Article{
			ID:               strings.TrimSpace(item.ID),
			Title:            item.Title,
			Excerpt:          item.Excerpt,
			Content:          item.Content,
			Author:           item.Author,
			AuthorAvatarURL:  item.AuthorAvatarURL,
			Category:         news.Category(strings.ToLower(item.Category)),
			FeaturedImageURL: item.FeaturedImageURL,
			PublishedAt:      item.PublishedAt.UTC(),
			UpdatedAt:        item.UpdatedAt.UTC(),
			Views:            item.Views,
			Likes:            item.Likes,
			Comments:         item.Comments,
			IsFeatured:       item.IsFeatured,
			Tags:             item.Tags,
		})
	}

	for _, item := range file.Awards {
		value := award.Award{
			ID:          strings.TrimSpace(item.ID),
			Name:        item.Name,
			Description: item.Description,
			Category:    award.Category(strings.ToLower(item.Category)),
		}
		if item.CurrentWinner != nil {
			value.CurrentWinner = &award.Winner{
				Name:      item.CurrentWinner.Name,
				Team:      item.CurrentWinner.Team,
				Value:     item.CurrentWinner.Value,
				AvatarURL: item.CurrentWinner.AvatarURL,
			}
		}
		for _, past := range item.PreviousWinners {
			value.PreviousWinners = append(value.PreviousWinners, award.PastWinner{
				Name:   past.Name,
				Team:   past.Team,
				Season: past.Season,
			})
		}
		out.Awards = append(out.Awards, value)
	}

	return out, nil
}
