package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/platform/listquery"
	"golang.org/x/text/language"
)

// NewsFeed is one page of articles split the way the news page renders it.
// Featured and Regular partition Page.Items and keep its order.
type NewsFeed struct {
	Page     listquery.Page[news.Article]
	Featured []news.Article
	Regular  []news.Article
}

type NewsService struct {
	newsRepo news.Repository
	schema   *listquery.Schema[news.Article]
}

func NewNewsService(newsRepo news.Repository, schema *listquery.Schema[news.Article]) *NewsService {
	if schema == nil {
		schema = newsSchema(language.English)
	}

	return &NewsService{
		newsRepo: newsRepo,
		schema:   schema,
	}
}

func (s *NewsService) ListNews(ctx context.Context, query listquery.Query) (NewsFeed, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.ListNews")
	defer span.End()

	items, err := s.newsRepo.List(ctx)
	if err != nil {
		return NewsFeed{}, fmt.Errorf("list news: %w", err)
	}

	page, err := s.schema.Apply(items, query)
	if err != nil {
		return NewsFeed{}, listQueryError("news", err)
	}

	feed := NewsFeed{
		Page:     page,
		Featured: make([]news.Article, 0),
		Regular:  make([]news.Article, 0, len(page.Items)),
	}
	for _, item := range page.Items {
		if item.IsFeatured {
			feed.Featured = append(feed.Featured, item)
		} else {
			feed.Regular = append(feed.Regular, item)
		}
	}

	return feed, nil
}

func (s *NewsService) GetArticle(ctx context.Context, articleID string) (news.Article, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NewsService.GetArticle")
	defer span.End()

	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return news.Article{}, fmt.Errorf("%w: article id is required", ErrInvalidInput)
	}

	item, exists, err := s.newsRepo.GetByID(ctx, articleID)
	if err != nil {
		return news.Article{}, fmt.Errorf("get article by id: %w", err)
	}
	if !exists {
		return news.Article{}, fmt.Errorf("%w: article=%s", ErrNotFound, articleID)
	}

	return item, nil
}
