package award

import "context"

type Repository interface {
	List(ctx context.Context) ([]Award, error)
}
