package match

import "context"

// Repository exposes match read operations.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	ListBySeason(ctx context.Context, seasonID string) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
}
