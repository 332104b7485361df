package news

import "context"

// Repository exposes published articles.
type Repository interface {
	List(ctx context.Context) ([]Article, error)
	GetByID(ctx context.Context, articleID string) (Article, bool, error)
}
