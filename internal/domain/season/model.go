package season

import (
	"fmt"
	"time"
)

// Season is one competition year. Standings are always computed per season.
type Season struct {
	ID              string
	Name            string
	CompetitionType string
	StartDate       time.Time
	EndDate         *time.Time
	IsActive        bool
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("season name is required")
	}
	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("season end date is before start date")
	}

	return nil
}
