package memory

import (
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/award"
	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/team"
)

const (
	SeasonIDCurrent  = "season-2026"
	SeasonIDPrevious = "season-2025"
)

// Dataset is everything the in-memory store serves.
type Dataset struct {
	Seasons    []season.Season
	Teams      []team.Team
	Matches    []match.Match
	Players    []player.Player
	FreeAgents []freeagent.FreeAgent
	News       []news.Article
	Awards     []award.Award
}

// Repositories wires one repository per entity over a dataset.
type Repositories struct {
	Seasons    *SeasonRepository
	Teams      *TeamRepository
	Matches    *MatchRepository
	Players    *PlayerRepository
	FreeAgents *FreeAgentRepository
	News       *NewsRepository
	Awards     *AwardRepository
}

func NewRepositories(data Dataset) Repositories {
	return Repositories{
		Seasons:    NewSeasonRepository(data.Seasons),
		Teams:      NewTeamRepository(data.Teams),
		Matches:    NewMatchRepository(data.Matches),
		Players:    NewPlayerRepository(data.Players),
		FreeAgents: NewFreeAgentRepository(data.FreeAgents),
		News:       NewNewsRepository(data.News),
		Awards:     NewAwardRepository(data.Awards),
	}
}

// Seed is the built-in demo league used when no seed file is configured.
func Seed() Dataset {
	return Dataset{
		Seasons:    SeedSeasons(),
		Teams:      SeedTeams(),
		Matches:    SeedMatches(),
		Players:    SeedPlayers(),
		FreeAgents: SeedFreeAgents(),
		News:       SeedNews(),
		Awards:     SeedAwards(),
	}
}

func date(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func goals(v int) *int {
	return &v
}

func SeedSeasons() []season.Season {
	previousEnd := date(2026, time.May, 24, 0)
	return []season.Season{
		{ID: SeasonIDPrevious, Name: "2025/26", CompetitionType: "league", StartDate: date(2025, time.August, 2, 0), EndDate: &previousEnd},
		{ID: SeasonIDCurrent, Name: "2026/27", CompetitionType: "league", StartDate: date(2026, time.August, 1, 0), IsActive: true},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-harbour", Name: "Harbour City", Abbreviation: "HBC", HomeVenue: "Quayside Arena", FoundedYear: 2014, IsActive: true},
		{ID: "team-northgate", Name: "Northgate Rangers", Abbreviation: "NGR", HomeVenue: "Northgate Park", FoundedYear: 2016, IsActive: true},
		{ID: "team-eastfield", Name: "Eastfield United", Abbreviation: "EFU", HomeVenue: "Eastfield Ground", FoundedYear: 2012, IsActive: true},
		{ID: "team-olympia", Name: "Ölympia Athletic", Abbreviation: "OLA", HomeVenue: "Ring Road Stadium", FoundedYear: 2019, IsActive: true},
		{ID: "team-riverside", Name: "Riverside Wanderers", Abbreviation: "RSW", HomeVenue: "Towpath Field", FoundedYear: 2015, IsActive: true},
		{ID: "team-vale", Name: "Vale Town", Abbreviation: "VLT", HomeVenue: "Old Mill Lane", FoundedYear: 2011},
	}
}

func SeedMatches() []match.Match {
	m := func(id, seasonID string, matchday int, home, away string, hs, as *int, status match.Status, at time.Time, venue string) match.Match {
		return match.Match{
			ID:              id,
			SeasonID:        seasonID,
			Matchday:        matchday,
			HomeTeamID:      home,
			AwayTeamID:      away,
			HomeScore:       hs,
			AwayScore:       as,
			Status:          status,
			MatchDate:       at,
			Venue:           venue,
			CompetitionType: "league",
		}
	}

	return []match.Match{
		// 2025/26.
		m("match-2025-01", SeasonIDPrevious, 1, "team-vale", "team-harbour", goals(2), goals(2), match.StatusCompleted, date(2025, time.August, 9, 15), "Old Mill Lane"),
		m("match-2025-02", SeasonIDPrevious, 1, "team-northgate", "team-eastfield", goals(1), goals(0), match.StatusCompleted, date(2025, time.August, 9, 17), "Northgate Park"),
		m("match-2025-03", SeasonIDPrevious, 2, "team-harbour", "team-northgate", goals(3), goals(1), match.StatusCompleted, date(2025, time.August, 16, 15), "Quayside Arena"),
		m("match-2025-04", SeasonIDPrevious, 2, "team-eastfield", "team-vale", goals(0), goals(1), match.StatusCompleted, date(2025, time.August, 16, 17), "Eastfield Ground"),

		// 2026/27.
		m("match-2026-01", SeasonIDCurrent, 1, "team-harbour", "team-northgate", goals(2), goals(1), match.StatusCompleted, date(2026, time.August, 8, 15), "Quayside Arena"),
		m("match-2026-02", SeasonIDCurrent, 1, "team-eastfield", "team-olympia", goals(1), goals(1), match.StatusCompleted, date(2026, time.August, 8, 17), "Eastfield Ground"),
		m("match-2026-03", SeasonIDCurrent, 2, "team-riverside", "team-harbour", goals(0), goals(2), match.StatusCompleted, date(2026, time.August, 15, 15), "Towpath Field"),
		m("match-2026-04", SeasonIDCurrent, 2, "team-northgate", "team-eastfield", goals(3), goals(0), match.StatusCompleted, date(2026, time.August, 15, 17), "Northgate Park"),
		m("match-2026-05", SeasonIDCurrent, 3, "team-olympia", "team-riverside", goals(2), goals(2), match.StatusCompleted, date(2026, time.August, 22, 15), "Ring Road Stadium"),
		m("match-2026-06", SeasonIDCurrent, 3, "team-eastfield", "team-harbour", goals(2), goals(1), match.StatusCompleted, date(2026, time.August, 22, 17), "Eastfield Ground"),
		m("match-2026-07", SeasonIDCurrent, 4, "team-harbour", "team-olympia", goals(1), goals(1), match.StatusCompleted, date(2026, time.September, 5, 15), "Quayside Arena"),
		m("match-2026-08", SeasonIDCurrent, 4, "team-riverside", "team-northgate", goals(1), goals(2), match.StatusCompleted, date(2026, time.September, 5, 17), "Towpath Field"),
		m("match-2026-09", SeasonIDCurrent, 5, "team-northgate", "team-olympia", nil, nil, match.StatusPostponed, date(2026, time.September, 12, 15), "Northgate Park"),
		m("match-2026-10", SeasonIDCurrent, 5, "team-eastfield", "team-riverside", goals(1), goals(0), match.StatusLive, date(2026, time.October, 15, 18), "Eastfield Ground"),
		m("match-2026-11", SeasonIDCurrent, 6, "team-olympia", "team-harbour", nil, nil, match.StatusScheduled, date(2026, time.October, 24, 15), "Ring Road Stadium"),
		m("match-2026-12", SeasonIDCurrent, 6, "team-riverside", "team-eastfield", nil, nil, match.StatusScheduled, date(2026, time.October, 24, 17), "Towpath Field"),
		m("match-2026-13", SeasonIDCurrent, 7, "team-harbour", "team-riverside", nil, nil, match.StatusScheduled, date(2026, time.October, 31, 15), "Quayside Arena"),
	}
}

func SeedPlayers() []player.Player {
	p := func(id, username, first, last, position, teamID, teamName, abbr string, stats player.Stats) player.Player {
		return player.Player{
			ID:                id,
			Username:          username,
			Email:             username + "@league.example",
			FirstName:         first,
			LastName:          last,
			PreferredPosition: position,
			TeamID:            teamID,
			TeamName:          teamName,
			TeamAbbreviation:  abbr,
			IsActive:          true,
			Stats:             stats,
		}
	}

	out := []player.Player{
		p("player-01", "quaywall", "Tomas", "Reyes", player.PositionGoalkeeper, "team-harbour", "Harbour City", "HBC", player.Stats{MatchesPlayed: 4, Wins: 2, Losses: 1, Rating: 7.4}),
		p("player-02", "harbourhammer", "Dev", "Okafor", player.PositionStriker, "team-harbour", "Harbour City", "HBC", player.Stats{Goals: 5, Assists: 1, MatchesPlayed: 4, Wins: 2, Losses: 1, Rating: 8.6}),
		p("player-03", "ngr_maestro", "Lena", "Brandt", player.PositionMidfielder, "team-northgate", "Northgate Rangers", "NGR", player.Stats{Goals: 2, Assists: 4, MatchesPlayed: 3, Wins: 2, Losses: 1, Rating: 8.1}),
		p("player-04", "rockback", "Sam", "Idowu", player.PositionDefender, "team-northgate", "Northgate Rangers", "NGR", player.Stats{Goals: 1, MatchesPlayed: 3, Wins: 2, Losses: 1, Rating: 7.2}),
		p("player-05", "eastpoacher", "Mira", "Kovac", player.PositionStriker, "team-eastfield", "Eastfield United", "EFU", player.Stats{Goals: 3, Assists: 1, MatchesPlayed: 4, Wins: 1, Losses: 1, Rating: 7.7}),
		p("player-06", "olympian", "Jonas", "Åberg", player.PositionMidfielder, "team-olympia", "Ölympia Athletic", "OLA", player.Stats{Goals: 2, Assists: 2, MatchesPlayed: 3, Rating: 7.5}),
		p("player-07", "towpath9", "Ike", "Mensah", player.PositionStriker, "team-riverside", "Riverside Wanderers", "RSW", player.Stats{Goals: 3, MatchesPlayed: 3, Losses: 2, Rating: 6.9}),
	}

	retired := p("player-08", "oldmill", "Rob", "Hale", player.PositionDefender, "team-vale", "Vale Town", "VLT", player.Stats{Goals: 1, MatchesPlayed: 2, Wins: 1, Rating: 6.8})
	retired.IsActive = false

	return append(out, retired)
}

func SeedFreeAgents() []freeagent.FreeAgent {
	until := date(2026, time.December, 31, 0)
	return []freeagent.FreeAgent{
		{ID: "agent-01", Username: "valevet", FirstName: "Rob", LastName: "Hale", PreferredPosition: player.PositionDefender, Country: "GB", Age: 33, Rating: 6.8, AskingPrice: 400, ContractLength: 1, Status: freeagent.StatusAvailable, PreviousTeam: "Vale Town", TransferReason: "Club folded", AvailableUntil: &until},
		{ID: "agent-02", Username: "wonderkid", FirstName: "Aiko", LastName: "Sato", PreferredPosition: player.PositionMidfielder, Country: "JP", Age: 19, Rating: 7.3, AskingPrice: 1200, ContractLength: 3, Status: freeagent.StatusNegotiating, TransferReason: "Looking for first-team football"},
		{ID: "agent-03", Username: "safehands", FirstName: "Pieter", LastName: "de Vries", PreferredPosition: player.PositionGoalkeeper, Country: "NL", Age: 27, Rating: 7.0, AskingPrice: 800, ContractLength: 2, Status: freeagent.StatusAvailable},
		{ID: "agent-04", Username: "finisher", FirstName: "Carla", LastName: "Mendes", PreferredPosition: player.PositionStriker, Country: "PT", Age: 24, Rating: 7.9, AskingPrice: 1500, ContractLength: 2, Status: freeagent.StatusSigned, PreviousTeam: "Eastfield United"},
	}
}

func SeedNews() []news.Article {
	return []news.Article{
		{ID: "news-01", Title: "Harbour City top the table after four rounds", Excerpt: "Okafor's brace keeps Harbour unbeaten at home.", Author: "League Desk", Category: news.CategoryMatch, PublishedAt: date(2026, time.September, 6, 9), Views: 1840, Likes: 120, Comments: 34, IsFeatured: true, Tags: []string{"harbour", "matchday-4"}},
		{ID: "news-02", Title: "Wonderkid Sato in talks with two clubs", Excerpt: "The 19-year-old midfielder is weighing offers.", Author: "Transfer Room", Category: news.CategoryTransfer, PublishedAt: date(2026, time.September, 20, 12), Views: 2210, Likes: 95, Comments: 88, Tags: []string{"transfer", "free-agent"}},
		{ID: "news-03", Title: "Vale Town withdraw from the league", Excerpt: "The founding club will not field a team in 2026/27.", Author: "League Desk", Category: news.CategoryLeague, PublishedAt: date(2026, time.July, 15, 8), Views: 3100, Likes: 40, Comments: 150},
		{ID: "news-04", Title: "Okafor named player of the month", Excerpt: "Five goals in four matches for the Harbour striker.", Author: "Awards Panel", Category: news.CategoryAward, PublishedAt: date(2026, time.October, 2, 10), Views: 990, Likes: 210, Comments: 12, IsFeatured: true, Tags: []string{"awards", "harbour"}},
	}
}

func SeedAwards() []award.Award {
	return []award.Award{
		{
			ID: "award-golden-boot", Name: "Golden Boot", Description: "Top scorer of the season", Category: award.CategoryPlayer,
			CurrentWinner:   &award.Winner{Name: "Dev Okafor", Team: "Harbour City", Value: "5 goals"},
			PreviousWinners: []award.PastWinner{{Name: "Rob Hale", Team: "Vale Town", Season: "2025/26"}},
		},
		{
			ID: "award-playmaker", Name: "Playmaker of the Season", Description: "Most assists", Category: award.CategoryPlayer,
			CurrentWinner: &award.Winner{Name: "Lena Brandt", Team: "Northgate Rangers", Value: "4 assists"},
		},
		{
			ID: "award-fair-play", Name: "Fair Play Trophy", Description: "Fewest disciplinary points", Category: award.CategoryTeam,
			CurrentWinner: &award.Winner{Name: "Riverside Wanderers"},
		},
		{
			ID: "award-champions", Name: "League Champions", Description: "Winner of the league table", Category: award.CategorySeason,
			PreviousWinners: []award.PastWinner{{Name: "Harbour City", Season: "2025/26"}},
		},
	}
}
