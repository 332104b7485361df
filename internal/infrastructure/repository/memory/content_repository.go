package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-portal/internal/domain/award"
	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/domain/news"
)

type FreeAgentRepository struct {
	mu     sync.RWMutex
	agents []freeagent.FreeAgent
}

func NewFreeAgentRepository(agents []freeagent.FreeAgent) *FreeAgentRepository {
	return &FreeAgentRepository{agents: append([]freeagent.FreeAgent(nil), agents...)}
}

func (r *FreeAgentRepository) List(_ context.Context) ([]freeagent.FreeAgent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]freeagent.FreeAgent, 0, len(r.agents))
	out = append(out, r.agents...)

	return out, nil
}

type NewsRepository struct {
	mu       sync.RWMutex
	articles []news.Article
}

func NewNewsRepository(articles []news.Article) *NewsRepository {
	return &NewsRepository{articles: append([]news.Article(nil), articles...)}
}

func (r *NewsRepository) List(_ context.Context) ([]news.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]news.Article, 0, len(r.articles))
	out = append(out, r.articles...)

	return out, nil
}

func (r *NewsRepository) GetByID(_ context.Context, articleID string) (news.Article, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.articles {
		if item.ID == articleID {
			return item, true, nil
		}
	}

	return news.Article{}, false, nil
}

type AwardRepository struct {
	mu     sync.RWMutex
	awards []award.Award
}

func NewAwardRepository(awards []award.Award) *AwardRepository {
	return &AwardRepository{awards: append([]award.Award(nil), awards...)}
}

func (r *AwardRepository) List(_ context.Context) ([]award.Award, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]award.Award, 0, len(r.awards))
	out = append(out, r.awards...)

	return out, nil
}
