package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-portal/internal/domain/award"
	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	qb "github.com/riskibarqy/league-portal/internal/platform/querybuilder"
)

type FreeAgentRepository struct {
	db *sqlx.DB
}

func NewFreeAgentRepository(db *sqlx.DB) *FreeAgentRepository {
	return &FreeAgentRepository{db: db}
}

func (r *FreeAgentRepository) List(ctx context.Context) ([]freeagent.FreeAgent, error) {
	builder := qb.Select(freeAgentColumns...).From("free_agents").
		Where(qb.NotDeleted("")).
		OrderBy("public_id")
	rows, err := selectRows[freeAgentTableModel](ctx, r.db, builder, "free agents")
	if err != nil {
		return nil, err
	}

	out := make([]freeagent.FreeAgent, 0, len(rows))
	for _, row := range rows {
		out = append(out, freeagent.FreeAgent{
			ID:                row.PublicID,
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
			AvailableUntil: nullTimePtr(row.AvailableUntil),
		})
	}
	return out, nil
}

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) List(ctx context.Context) ([]news.Article, error) {
	rows, err := selectRows[newsTableModel](ctx, r.db, newsBaseSelectBuilder().OrderBy("published_at DESC", "public_id"), "news articles")
	if err != nil {
		return nil, err
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, articleFromRow(row))
	}
	return out, nil
}

func (r *NewsRepository) GetByID(ctx context.Context, articleID string) (news.Article, bool, error) {
	row, ok, err := getByPublicID[newsTableModel](ctx, r.db, newsBaseSelectBuilder, "public_id", articleID, "news article")
	if err != nil || !ok {
		return news.Article{}, ok, err
	}
	return articleFromRow(row), true, nil
}

func newsBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(newsColumns...).From("news_articles").Where(qb.NotDeleted(""))
}

func articleFromRow(row newsTableModel) news.Article {
	return news.Article{
		ID:               row.PublicID,
		Title:            row.Title,
		Excerpt:          row.Excerpt,
		Content:          row.Content,
		Author:           row.Author,
		AuthorAvatarURL:  row.AuthorAvatarURL,
		Category:         news.Category(row.Category),
		FeaturedImageURL: row.FeaturedImageURL,
		PublishedAt:      row.PublishedAt.UTC(),
		UpdatedAt:        row.UpdatedAt.UTC(),
		Views:            row.Views,
		Likes:            row.Likes,
		Comments:         row.Comments,
		IsFeatured:       row.IsFeatured,
		Tags:             append([]string(nil), row.Tags...),
	}
}

type AwardRepository struct {
	db *sqlx.DB
}

func NewAwardRepository(db *sqlx.DB) *AwardRepository {
	return &AwardRepository{db: db}
}

// List loads awards and then their winners in a second query keyed by
// award id.
func (r *AwardRepository) List(ctx context.Context) ([]award.Award, error) {
	builder := qb.Select(awardColumns...).From("awards").
		Where(qb.NotDeleted("")).
		OrderBy("name", "public_id")
	rows, err := selectRows[awardTableModel](ctx, r.db, builder, "awards")
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []award.Award{}, nil
	}

	ids := make([]any, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.PublicID)
	}
	winnerRows, err := selectRows[awardWinnerTableModel](ctx, r.db,
		qb.Select(awardWinnerColumns...).From("award_winners").
			Where(qb.In("award_public_id", ids)).
			OrderBy("award_public_id", "awarded_at DESC", "id DESC"),
		"award winners")
	if err != nil {
		return nil, fmt.Errorf("load award winners: %w", err)
	}

	winners := make(map[string][]awardWinnerTableModel, len(rows))
	for _, w := range winnerRows {
		winners[w.AwardID] = append(winners[w.AwardID], w)
	}

	out := make([]award.Award, 0, len(rows))
	for _, row := range rows {
		item := award.Award{
			ID:              row.PublicID,
			Name:            row.Name,
			Description:     row.Description,
			Category:        award.Category(row.Category),
			PreviousWinners: []award.PastWinner{},
		}
		for _, w := range winners[row.PublicID] {
			if w.IsCurrent && item.CurrentWinner == nil {
				item.CurrentWinner = &award.Winner{Name: w.Name, Team: w.Team, Value: w.Value, AvatarURL: w.AvatarURL}
				continue
			}
			item.PreviousWinners = append(item.PreviousWinners, award.PastWinner{Name: w.Name, Team: w.Team, Season: w.Season})
		}
		out = append(out, item)
	}
	return out, nil
}
