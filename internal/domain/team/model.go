package team

import "fmt"

// Team is a club in the league. Results are never stored on the team; they
// are derived from matches by the standing package.
type Team struct {
	ID           string
	Name         string
	Abbreviation string
	LogoURL      string
	HomeVenue    string
	FoundedYear  int
	IsActive     bool
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
