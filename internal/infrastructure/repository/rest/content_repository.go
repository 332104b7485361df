package rest

import (
	"context"
	"slices"

	"github.com/riskibarqy/league-portal/external/supabase"
	"github.com/riskibarqy/league-portal/internal/domain/award"
	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

type FreeAgentRepository struct {
	client Selector
}

func (r *FreeAgentRepository) List(ctx context.Context) ([]freeagent.FreeAgent, error) {
	var rows []freeAgentRow
	if err := r.client.Select(ctx, tableFreeAgents, supabase.Query{Order: []string{"id.asc"}}, &rows); err != nil {
		return nil, err
	}

	out := make([]freeagent.FreeAgent, 0, len(rows))
	for _, row := range rows {
		out = append(out, freeagent.FreeAgent{
			ID:                row.ID,
			Username:          row.Username,
			FirstName:         row.FirstName,
			LastName:          row.LastName,
			AvatarURL:         row.AvatarURL,
			PreferredPosition: row.PreferredPosition,
			Country:           row.Country,
			Age:               row.Age,
			Rating:            row.Rating,
			AskingPrice:       row.AskingPrice,
			ContractLength:    row.ContractLength,
			Status:            freeagent.Status(row.Status),
			Stats: freeagent.Stats{
				Goals:         row.Goals,
				Assists:       row.Assists,
				MatchesPlayed: row.MatchesPlayed,
				Rating:        row.Rating,
			},
			PreviousTeam:   row.PreviousTeam,
			TransferReason: row.TransferReason,
			AvailableUntil: parseTimePtr(row.AvailableUntil),
		})
	}
	return out, nil
}

type NewsRepository struct {
	client Selector
	logger *logging.Logger
}

func (r *NewsRepository) List(ctx context.Context) ([]news.Article, error) {
	var rows []newsRow
	if err := r.client.Select(ctx, tableNews, supabase.Query{Order: []string{"published_at.desc", "id.asc"}}, &rows); err != nil {
		return nil, err
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.fromRow(ctx, row))
	}
	return out, nil
}

func (r *NewsRepository) GetByID(ctx context.Context, articleID string) (news.Article, bool, error) {
	row, ok, err := selectOne[newsRow](ctx, r.client, tableNews, "", articleID)
	if err != nil || !ok {
		return news.Article{}, ok, err
	}
	return r.fromRow(ctx, row), true, nil
}

func (r *NewsRepository) fromRow(ctx context.Context, row newsRow) news.Article {
	published, ok := parseTime(row.PublishedAt)
	if !ok {
		r.logger.WarnContext(ctx, "news article has unreadable publish date", "article_id", row.ID, "published_at", row.PublishedAt)
	}
	updated, ok := parseTime(row.UpdatedAt)
	if !ok {
		updated = published
	}
	return news.Article{
		ID:               row.ID,
		Title:            row.Title,
		Excerpt:          row.Excerpt,
		Content:          row.Content,
		Author:           row.Author,
		AuthorAvatarURL:  row.AuthorAvatarURL,
		Category:         news.Category(row.Category),
		FeaturedImageURL: row.FeaturedImageURL,
		PublishedAt:      published,
		UpdatedAt:        updated,
		Views:            row.Views,
		Likes:            row.Likes,
		Comments:         row.Comments,
		IsFeatured:       row.IsFeatured,
		Tags:             slices.Clone(row.Tags),
	}
}

type AwardRepository struct {
	client Selector
}

func (r *AwardRepository) List(ctx context.Context) ([]award.Award, error) {
	var rows []awardRow
	if err := r.client.Select(ctx, tableAwards, supabase.Query{Select: awardSelect, Order: []string{"name.asc", "id.asc"}}, &rows); err != nil {
		return nil, err
	}

	out := make([]award.Award, 0, len(rows))
	for _, row := range rows {
		out = append(out, awardFromRow(row))
	}
	return out, nil
}

// awardFromRow orders the embedded winners newest first since PostgREST
// does not order embedded rows unless asked per relation.
func awardFromRow(row awardRow) award.Award {
	winners := slices.Clone(row.Winners)
	slices.SortStableFunc(winners, func(a, b awardWinnerRow) int {
		at, _ := parseTime(a.AwardedAt)
		bt, _ := parseTime(b.AwardedAt)
		return bt.Compare(at)
	})

	item := award.Award{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		Category:        award.Category(row.Category),
		PreviousWinners: []award.PastWinner{},
	}
	for _, w := range winners {
		if w.IsCurrent && item.CurrentWinner == nil {
			item.CurrentWinner = &award.Winner{Name: w.Name, Team: w.Team, Value: w.Value, AvatarURL: w.AvatarURL}
			continue
		}
		item.PreviousWinners = append(item.PreviousWinners, award.PastWinner{Name: w.Name, Team: w.Team, Season: w.Season})
	}
	return item
}
