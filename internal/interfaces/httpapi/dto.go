package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/award"
	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/platform/listquery"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

type pageDTO[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

type seasonDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CompetitionType string  `json:"competitionType"`
	StartDate       string  `json:"startDate"`
	EndDate         *string `json:"endDate"`
	IsActive        bool    `json:"isActive"`
}

type teamDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LogoURL      string `json:"logoUrl"`
	HomeVenue    string `json:"homeVenue"`
	FoundedYear  int    `json:"foundedYear"`
	IsActive     bool   `json:"isActive"`
}

type standingRowDTO struct {
	Position         int      `json:"position"`
	PreviousPosition int      `json:"previousPosition"`
	Movement         string   `json:"movement"`
	TeamID           string   `json:"teamId"`
	TeamName         string   `json:"teamName"`
	TeamAbbreviation string   `json:"teamAbbreviation"`
	Played           int      `json:"played"`
	Won              int      `json:"won"`
	Drawn            int      `json:"drawn"`
	Lost             int      `json:"lost"`
	GoalsFor         int      `json:"goalsFor"`
	GoalsAgainst     int      `json:"goalsAgainst"`
	GoalDifference   int      `json:"goalDifference"`
	Points           int      `json:"points"`
	Form             []string `json:"form"`
}

type skippedMatchDTO struct {
	MatchID string `json:"matchId"`
	Reason  string `json:"reason"`
}

type standingTableDTO struct {
	Season         seasonDTO         `json:"season"`
	Rows           []standingRowDTO  `json:"rows"`
	CountedMatches int               `json:"countedMatches"`
	SkippedMatches []skippedMatchDTO `json:"skippedMatches"`
}

type teamSummaryDTO struct {
	Team     teamDTO         `json:"team"`
	Standing *standingRowDTO `json:"standing"`
}

type teamDetailsDTO struct {
	Team            teamDTO         `json:"team"`
	Standing        *standingRowDTO `json:"standing"`
	Season          *seasonDTO      `json:"season"`
	RecentMatches   []matchDTO      `json:"recentMatches"`
	UpcomingMatches []matchDTO      `json:"upcomingMatches"`
}

type matchTeamDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LogoURL      string `json:"logoUrl"`
}

type matchDTO struct {
	ID              string       `json:"id"`
	SeasonID        string       `json:"seasonId"`
	Matchday        int          `json:"matchday"`
	HomeTeam        matchTeamDTO `json:"homeTeam"`
	AwayTeam        matchTeamDTO `json:"awayTeam"`
	HomeScore       *int         `json:"homeScore"`
	AwayScore       *int         `json:"awayScore"`
	Status          string       `json:"status"`
	MatchDate       string       `json:"matchDate"`
	Venue           string       `json:"venue"`
	Referee         string       `json:"referee"`
	CompetitionType string       `json:"competitionType"`
}

type playerStatsDTO struct {
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	MatchesPlayed int     `json:"matchesPlayed"`
	Rating        float64 `json:"rating"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinRate       float64 `json:"winRate"`
}

type playerTeamDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type playerDTO struct {
	ID                string         `json:"id"`
	Username          string         `json:"username"`
	FirstName         string         `json:"firstName"`
	LastName          string         `json:"lastName"`
	DisplayName       string         `json:"displayName"`
	AvatarURL         string         `json:"avatarUrl"`
	Country           string         `json:"country"`
	DateOfBirth       *string        `json:"dateOfBirth"`
	PreferredPosition string         `json:"preferredPosition"`
	Team              *playerTeamDTO `json:"team"`
	IsActive          bool           `json:"isActive"`
	Stats             playerStatsDTO `json:"stats"`
}

type freeAgentStatsDTO struct {
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	MatchesPlayed int     `json:"matchesPlayed"`
	Rating        float64 `json:"rating"`
}

type freeAgentDTO struct {
	ID                string            `json:"id"`
	Username          string            `json:"username"`
	FirstName         string            `json:"firstName"`
	LastName          string            `json:"lastName"`
	AvatarURL         string            `json:"avatarUrl"`
	PreferredPosition string            `json:"preferredPosition"`
	Country           string            `json:"country"`
	Age               int               `json:"age"`
	Rating            float64           `json:"rating"`
	AskingPrice       int64             `json:"askingPrice"`
	ContractLength    int               `json:"contractLength"`
	Status            string            `json:"status"`
	Stats             freeAgentStatsDTO `json:"stats"`
	PreviousTeam      string            `json:"previousTeam"`
	TransferReason    string            `json:"transferReason"`
	AvailableUntil    *string           `json:"availableUntil"`
}

type newsDTO struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Excerpt          string   `json:"excerpt"`
	Content          string   `json:"content,omitempty"`
	Author           string   `json:"author"`
	AuthorAvatarURL  string   `json:"authorAvatarUrl"`
	Category         string   `json:"category"`
	FeaturedImageURL string   `json:"featuredImageUrl"`
	PublishedAt      string   `json:"publishedAt"`
	UpdatedAt        string   `json:"updatedAt"`
	Views            int      `json:"views"`
	Likes            int      `json:"likes"`
	Comments         int      `json:"comments"`
	IsFeatured       bool     `json:"isFeatured"`
	Tags             []string `json:"tags"`
}

type newsFeedDTO struct {
	Featured   []newsDTO `json:"featured"`
	Regular    []newsDTO `json:"regular"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
}

type awardWinnerDTO struct {
	Name      string `json:"name"`
	Team      string `json:"team"`
	Value     string `json:"value"`
	AvatarURL string `json:"avatarUrl"`
}

type pastWinnerDTO struct {
	Name   string `json:"name"`
	Team   string `json:"team"`
	Season string `json:"season"`
}

type awardDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	CurrentWinner   *awardWinnerDTO `json:"currentWinner"`
	PreviousWinners []pastWinnerDTO `json:"previousWinners"`
}

type overviewDTO struct {
	Players       int `json:"players"`
	ActiveTeams   int `json:"activeTeams"`
	Matches       int `json:"matches"`
	ActiveSeasons int `json:"activeSeasons"`
}

type playerLeaderDTO struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	TeamName string `json:"teamName"`
	Value    int    `json:"value"`
}

type teamLeaderDTO struct {
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	Wins     int    `json:"wins"`
}

type statisticsDTO struct {
	TotalMatches     int              `json:"totalMatches"`
	CompletedMatches int              `json:"completedMatches"`
	TotalGoals       int              `json:"totalGoals"`
	GoalsPerMatch    float64          `json:"goalsPerMatch"`
	TotalPlayers     int              `json:"totalPlayers"`
	TotalTeams       int              `json:"totalTeams"`
	AverageRating    float64          `json:"averageRating"`
	TopScorer        *playerLeaderDTO `json:"topScorer"`
	TopAssister      *playerLeaderDTO `json:"topAssister"`
	MostWins         *teamLeaderDTO   `json:"mostWins"`
}

type dashboardDTO struct {
	Player          playerDTO       `json:"player"`
	WinRate         float64         `json:"winRate"`
	Team            *teamDTO        `json:"team"`
	Season          *seasonDTO      `json:"season"`
	Standing        *standingRowDTO `json:"standing"`
	UpcomingMatches []matchDTO      `json:"upcomingMatches"`
	RecentResults   []matchDTO      `json:"recentResults"`
}

func pageToDTO[S, T any](p listquery.Page[S], convert func(S) T) pageDTO[T] {
	items := make([]T, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, convert(item))
	}
	return pageDTO[T]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

func mapSlice[S, T any](items []S, convert func(S) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := formatDate(*t)
	return &v
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{
		ID:              v.ID,
		Name:            v.Name,
		CompetitionType: v.CompetitionType,
		StartDate:       formatDate(v.StartDate),
		EndDate:         formatDatePtr(v.EndDate),
		IsActive:        v.IsActive,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:           v.ID,
		Name:         v.Name,
		Abbreviation: v.Abbreviation,
		LogoURL:      v.LogoURL,
		HomeVenue:    v.HomeVenue,
		FoundedYear:  v.FoundedYear,
		IsActive:     v.IsActive,
	}
}

func standingRowToDTO(v standing.Row) standingRowDTO {
	form := make([]string, 0, len(v.Form))
	for _, result := range v.Form {
		form = append(form, string(result))
	}

	return standingRowDTO{
		Position:         v.Position,
		PreviousPosition: v.PreviousPosition,
		Movement:         string(v.Movement),
		TeamID:           v.TeamID,
		TeamName:         v.TeamName,
		TeamAbbreviation: v.TeamAbbreviation,
		Played:           v.Played,
		Won:              v.Won,
		Drawn:            v.Drawn,
		Lost:             v.Lost,
		GoalsFor:         v.GoalsFor,
		GoalsAgainst:     v.GoalsAgainst,
		GoalDifference:   v.GoalDifference(),
		Points:           v.Points(),
		Form:             form,
	}
}

func standingTableToDTO(ctx context.Context, v usecase.SeasonTable) standingTableDTO {
	_, span := startSpan(ctx, "httpapi.standingTableToDTO")
	defer span.End()

	skipped := make([]skippedMatchDTO, 0, len(v.Table.Issues))
	for _, issue := range v.Table.Issues {
		skipped = append(skipped, skippedMatchDTO{MatchID: issue.MatchID, Reason: issue.Err.Error()})
	}

	return standingTableDTO{
		Season:         seasonToDTO(v.Season),
		Rows:           mapSlice(v.Table.Rows, standingRowToDTO),
		CountedMatches: v.Table.CountedMatches,
		SkippedMatches: skipped,
	}
}

func teamSummaryToDTO(v usecase.TeamSummary) teamSummaryDTO {
	out := teamSummaryDTO{Team: teamToDTO(v.Team)}
	if v.Ranked {
		row := standingRowToDTO(v.Row)
		out.Standing = &row
	}
	return out
}

func teamDetailsToDTO(ctx context.Context, v usecase.TeamDetails) teamDetailsDTO {
	_, span := startSpan(ctx, "httpapi.teamDetailsToDTO")
	defer span.End()

	summary := teamSummaryToDTO(v.TeamSummary)
	out := teamDetailsDTO{
		Team:            summary.Team,
		Standing:        summary.Standing,
		RecentMatches:   mapSlice(v.RecentMatches, matchToDTO),
		UpcomingMatches: mapSlice(v.UpcomingMatches, matchToDTO),
	}
	if v.Season != nil {
		item := seasonToDTO(*v.Season)
		out.Season = &item
	}
	return out
}

func matchTeamToDTO(v team.Team) matchTeamDTO {
	return matchTeamDTO{
		ID:           v.ID,
		Name:         v.Name,
		Abbreviation: v.Abbreviation,
		LogoURL:      v.LogoURL,
	}
}

func matchToDTO(v usecase.MatchView) matchDTO {
	return matchDTO{
		ID:              v.Match.ID,
		SeasonID:        v.Match.SeasonID,
		Matchday:        v.Match.Matchday,
		HomeTeam:        matchTeamToDTO(v.HomeTeam),
		AwayTeam:        matchTeamToDTO(v.AwayTeam),
		HomeScore:       v.Match.HomeScore,
		AwayScore:       v.Match.AwayScore,
		Status:          string(v.Match.Status),
		MatchDate:       formatTimestamp(v.Match.MatchDate),
		Venue:           v.Match.Venue,
		Referee:         v.Match.Referee,
		CompetitionType: v.Match.CompetitionType,
	}
}

func playerToDTO(v player.Player) playerDTO {
	out := playerDTO{
		ID:                v.ID,
		Username:          v.Username,
		FirstName:         v.FirstName,
		LastName:          v.LastName,
		DisplayName:       v.DisplayName(),
		AvatarURL:         v.AvatarURL,
		Country:           v.Country,
		DateOfBirth:       formatDatePtr(v.DateOfBirth),
		PreferredPosition: v.PreferredPosition,
		IsActive:          v.IsActive,
		Stats: playerStatsDTO{
			Goals:         v.Stats.Goals,
			Assists:       v.Stats.Assists,
			MatchesPlayed: v.Stats.MatchesPlayed,
			Rating:        v.Stats.Rating,
			Wins:          v.Stats.Wins,
			Losses:        v.Stats.Losses,
			WinRate:       v.Stats.WinRate(),
		},
	}
	if v.TeamID != "" {
		out.Team = &playerTeamDTO{ID: v.TeamID, Name: v.TeamName, Abbreviation: v.TeamAbbreviation}
	}
	return out
}

func freeAgentToDTO(v freeagent.FreeAgent) freeAgentDTO {
	var until *string
	if v.AvailableUntil != nil {
		formatted := formatTimestamp(*v.AvailableUntil)
		until = &formatted
	}

	return freeAgentDTO{
		ID:                v.ID,
		Username:          v.Username,
		FirstName:         v.FirstName,
		LastName:          v.LastName,
		AvatarURL:         v.AvatarURL,
		PreferredPosition: v.PreferredPosition,
		Country:           v.Country,
		Age:               v.Age,
		Rating:            v.Rating,
		AskingPrice:       v.AskingPrice,
		ContractLength:    v.ContractLength,
		Status:            string(v.Status),
		Stats: freeAgentStatsDTO{
			Goals:         v.Stats.Goals,
			Assists:       v.Stats.Assists,
			MatchesPlayed: v.Stats.MatchesPlayed,
			Rating:        v.Stats.Rating,
		},
		PreviousTeam:   v.PreviousTeam,
		TransferReason: v.TransferReason,
		AvailableUntil: until,
	}
}

// newsSummaryToDTO leaves out the article body.
func newsSummaryToDTO(v news.Article) newsDTO {
	out := newsToDTO(v)
	out.Content = ""
	return out
}

func newsToDTO(v news.Article) newsDTO {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}

	return newsDTO{
		ID:               v.ID,
		Title:            v.Title,
		Excerpt:          v.Excerpt,
		Content:          v.Content,
		Author:           v.Author,
		AuthorAvatarURL:  v.AuthorAvatarURL,
		Category:         string(v.Category),
		FeaturedImageURL: v.FeaturedImageURL,
		PublishedAt:      formatTimestamp(v.PublishedAt),
		UpdatedAt:        formatTimestamp(v.UpdatedAt),
		Views:            v.Views,
		Likes:            v.Likes,
		Comments:         v.Comments,
		IsFeatured:       v.IsFeatured,
		Tags:             tags,
	}
}

func newsFeedToDTO(ctx context.Context, v usecase.NewsFeed) newsFeedDTO {
	_, span := startSpan(ctx, "httpapi.newsFeedToDTO")
	defer span.End()

	return newsFeedDTO{
		Featured:   mapSlice(v.Featured, newsSummaryToDTO),
		Regular:    mapSlice(v.Regular, newsSummaryToDTO),
		Page:       v.Page.Page,
		PageSize:   v.Page.PageSize,
		TotalItems: v.Page.TotalItems,
		TotalPages: v.Page.TotalPages,
	}
}

func awardToDTO(v award.Award) awardDTO {
	out := awardDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Category:    string(v.Category),
		PreviousWinners: mapSlice(v.PreviousWinners, func(w award.PastWinner) pastWinnerDTO {
			return pastWinnerDTO{Name: w.Name, Team: w.Team, Season: w.Season}
		}),
	}
	if w := v.CurrentWinner; w != nil {
		out.CurrentWinner = &awardWinnerDTO{Name: w.Name, Team: w.Team, Value: w.Value, AvatarURL: w.AvatarURL}
	}
	return out
}

func playerLeaderToDTO(v *usecase.PlayerLeader) *playerLeaderDTO {
	if v == nil {
		return nil
	}
	return &playerLeaderDTO{PlayerID: v.PlayerID, Name: v.Name, TeamName: v.TeamName, Value: v.Value}
}

func statisticsToDTO(v usecase.Statistics) statisticsDTO {
	out := statisticsDTO{
		TotalMatches:     v.TotalMatches,
		CompletedMatches: v.CompletedMatches,
		TotalGoals:       v.TotalGoals,
		GoalsPerMatch:    v.GoalsPerMatch,
		TotalPlayers:     v.TotalPlayers,
		TotalTeams:       v.TotalTeams,
		AverageRating:    v.AverageRating,
		TopScorer:        playerLeaderToDTO(v.TopScorer),
		TopAssister:      playerLeaderToDTO(v.TopAssister),
	}
	if v.MostWins != nil {
		out.MostWins = &teamLeaderDTO{TeamID: v.MostWins.TeamID, TeamName: v.MostWins.TeamName, Wins: v.MostWins.Wins}
	}
	return out
}

func dashboardToDTO(ctx context.Context, v usecase.Dashboard) dashboardDTO {
	_, span := startSpan(ctx, "httpapi.dashboardToDTO")
	defer span.End()

	out := dashboardDTO{
		Player:          playerToDTO(v.Player),
		WinRate:         v.WinRate,
		UpcomingMatches: mapSlice(v.UpcomingMatches, matchToDTO),
		RecentResults:   mapSlice(v.RecentResults, matchToDTO),
	}
	if v.Team != nil {
		item := teamToDTO(*v.Team)
		out.Team = &item
	}
	if v.Season != nil {
		item := seasonToDTO(*v.Season)
		out.Season = &item
	}
	if v.Standing != nil {
		row := standingRowToDTO(*v.Standing)
		out.Standing = &row
	}
	return out
}
