package award

type Category string

const (
	CategoryPlayer Category = "player"
	CategoryTeam   Category = "team"
	CategorySeason Category = "season"
)

type Winner struct {
	Name      string
	Team      string
	Value     string
	AvatarURL string
}

type PastWinner struct {
	Name   string
	Team   string
	Season string
}

// Award is a trophy with its current holder and history.
type Award struct {
	ID              string
	Name            string
	Description     string
	Category        Category
	CurrentWinner   *Winner
	PreviousWinners []PastWinner
}
