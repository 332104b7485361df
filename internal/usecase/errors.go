package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/league-portal/internal/platform/listquery"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// listQueryError maps an unknown sort key or filter to ErrInvalidInput so the
// caller gets a 400 instead of a 500.
func listQueryError(entity string, err error) error {
	if errors.Is(err, listquery.ErrConfiguration) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return fmt.Errorf("query %s: %w", entity, err)
}
