package usecase

import (
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/award"
	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/platform/listquery"
	"golang.org/x/text/language"
)

// ListSchemas holds the search/filter/sort declaration of every list page.
type ListSchemas struct {
	Teams      *listquery.Schema[TeamSummary]
	Matches    *listquery.Schema[MatchView]
	Players    *listquery.Schema[player.Player]
	FreeAgents *listquery.Schema[freeagent.FreeAgent]
	News       *listquery.Schema[news.Article]
	Awards     *listquery.Schema[award.Award]
}

func NewListSchemas(locale language.Tag) ListSchemas {
	return ListSchemas{
		Teams:      teamSchema(locale),
		Matches:    matchSchema(locale),
		Players:    playerSchema(locale),
		FreeAgents: freeAgentSchema(locale),
		News:       newsSchema(locale),
		Awards:     awardSchema(locale),
	}
}

func teamSchema(locale language.Tag) *listquery.Schema[TeamSummary] {
	return listquery.NewSchema[TeamSummary]("team").
		WithLocale(locale).
		SearchOn(
			func(t TeamSummary) string { return t.Team.Name },
			func(t TeamSummary) string { return t.Team.Abbreviation },
		).
		SortNumber("points", listquery.Descending, func(t TeamSummary) float64 { return float64(t.Row.Points()) }).
		SortNumber("wins", listquery.Descending, func(t TeamSummary) float64 { return float64(t.Row.Won) }).
		SortNumber("goal_difference", listquery.Descending, func(t TeamSummary) float64 { return float64(t.Row.GoalDifference()) }).
		SortString("name", listquery.Ascending, func(t TeamSummary) string { return t.Team.Name }).
		DefaultSort("points")
}

func matchSchema(locale language.Tag) *listquery.Schema[MatchView] {
	return listquery.NewSchema[MatchView]("match").
		WithLocale(locale).
		SearchOn(
			func(m MatchView) string { return m.HomeTeam.Name },
			func(m MatchView) string { return m.AwayTeam.Name },
		).
		CategoryOn(func(m MatchView) string { return string(match.NormalizeStatus(string(m.Match.Status))) }).
		SortTime("date", listquery.Descending, func(m MatchView) time.Time { return m.Match.MatchDate }).
		SortNumber("goals", listquery.Descending, func(m MatchView) float64 { return float64(m.Match.TotalGoals()) }).
		DefaultSort("date")
}

func playerSchema(locale language.Tag) *listquery.Schema[player.Player] {
	return listquery.NewSchema[player.Player]("player").
		WithLocale(locale).
		SearchOn(
			func(p player.Player) string { return p.Username },
			func(p player.Player) string { return p.FirstName },
			func(p player.Player) string { return p.LastName },
			func(p player.Player) string { return p.TeamName },
		).
		CategoryOn(func(p player.Player) string { return p.PreferredPosition }).
		SortNumber("rating", listquery.Descending, func(p player.Player) float64 { return p.Stats.Rating }).
		SortNumber("goals", listquery.Descending, func(p player.Player) float64 { return float64(p.Stats.Goals) }).
		SortNumber("assists", listquery.Descending, func(p player.Player) float64 { return float64(p.Stats.Assists) }).
		SortNumber("matches", listquery.Descending, func(p player.Player) float64 { return float64(p.Stats.MatchesPlayed) }).
		SortString("name", listquery.Ascending, func(p player.Player) string { return p.Username }).
		DefaultSort("rating")
}

func freeAgentSchema(locale language.Tag) *listquery.Schema[freeagent.FreeAgent] {
	return listquery.NewSchema[freeagent.FreeAgent]("free agent").
		WithLocale(locale).
		SearchOn(
			func(f freeagent.FreeAgent) string { return f.Username },
			func(f freeagent.FreeAgent) string { return f.FirstName },
			func(f freeagent.FreeAgent) string { return f.LastName },
			func(f freeagent.FreeAgent) string { return f.PreferredPosition },
		).
		CategoryOn(func(f freeagent.FreeAgent) string { return string(f.Status) }).
		SortNumber("rating", listquery.Descending, func(f freeagent.FreeAgent) float64 { return f.Rating }).
		SortNumber("price", listquery.Descending, func(f freeagent.FreeAgent) float64 { return float64(f.AskingPrice) }).
		SortNumber("age", listquery.Ascending, func(f freeagent.FreeAgent) float64 { return float64(f.Age) }).
		SortString("name", listquery.Ascending, func(f freeagent.FreeAgent) string { return f.Username }).
		DefaultSort("rating")
}

func newsSchema(locale language.Tag) *listquery.Schema[news.Article] {
	return listquery.NewSchema[news.Article]("news").
		WithLocale(locale).
		SearchOn(
			func(a news.Article) string { return a.Title },
			func(a news.Article) string { return a.Excerpt },
		).
		SearchOnEach(func(a news.Article) []string { return a.Tags }).
		CategoryOn(func(a news.Article) string { return string(a.Category) }).
		SortTime("latest", listquery.Descending, func(a news.Article) time.Time { return a.PublishedAt }).
		SortNumber("popular", listquery.Descending, func(a news.Article) float64 { return float64(a.Views) }).
		SortNumber("trending", listquery.Descending, func(a news.Article) float64 { return float64(a.Engagement()) }).
		SortString("title", listquery.Ascending, func(a news.Article) string { return a.Title }).
		DefaultSort("latest")
}

func awardSchema(locale language.Tag) *listquery.Schema[award.Award] {
	return listquery.NewSchema[award.Award]("award").
		WithLocale(locale).
		SearchOn(
			func(a award.Award) string { return a.Name },
			func(a award.Award) string {
				if a.CurrentWinner == nil {
					return ""
				}
				return a.CurrentWinner.Name
			},
		).
		CategoryOn(func(a award.Award) string { return string(a.Category) }).
		SortString("name", listquery.Ascending, func(a award.Award) string { return a.Name }).
		SortString("category", listquery.Ascending, func(a award.Award) string { return string(a.Category) }).
		DefaultSort("name")
}
