package freeagent

import "context"

type Repository interface {
	List(ctx context.Context) ([]FreeAgent, error)
}
