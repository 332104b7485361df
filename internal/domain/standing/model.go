package standing

type Result string

const (
	ResultWin  Result = "W"
	ResultDraw Result = "D"
	ResultLoss Result = "L"
)

type Movement string

const (
	MovementUp   Movement = "up"
	MovementDown Movement = "down"
	MovementSame Movement = "same"
	MovementNew  Movement = "new"
)

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
	formLength    = 5
)

// Row is one team's line in a table. Points and goal difference are derived
// from the tallies and cannot be set on their own.
type Row struct {
	TeamID           string
	TeamName         string
	TeamAbbreviation string
	Position         int
	PreviousPosition int
	Movement         Movement
	Played           int
	Won              int
	Drawn            int
	Lost             int
	GoalsFor         int
	GoalsAgainst     int
	Form             []Result
}

func (r Row) Points() int {
	return r.Won*pointsPerWin + r.Drawn*pointsPerDraw
}

func (r Row) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

// Issue is a match that was left out of the table and why.
type Issue struct {
	MatchID string
	Err     error
}

// Table is a ranked standings table. Issues lists every skipped match; a
// table with issues is still complete for the matches that could be counted.
type Table struct {
	Rows           []Row
	Issues         []Issue
	CountedMatches int
}

// Row looks up a team's row.
func (t Table) Row(teamID string) (Row, bool) {
	for _, row := range t.Rows {
		if row.TeamID == teamID {
			return row, true
		}
	}
	return Row{}, false
}
