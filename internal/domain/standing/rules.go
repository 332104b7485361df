package standing

import (
	"cmp"
	"slices"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Aggregator derives standings tables from raw matches. The zero value ranks
// names with English collation.
type Aggregator struct {
	locale language.Tag
}

func NewAggregator(locale language.Tag) *Aggregator {
	return &Aggregator{locale: locale}
}

func (a *Aggregator) collator() *collate.Collator {
	locale := language.English
	if a != nil && a.locale != language.Und {
		locale = a.locale
	}
	return collate.New(locale, collate.IgnoreCase)
}

// Build tallies every completed match between teams of the set and ranks the
// result. Matches that fail validation are reported in Table.Issues.
func (a *Aggregator) Build(teams []team.Team, matches []match.Match) Table {
	index := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		if t.ID == "" {
			continue
		}
		if _, dup := index[t.ID]; dup {
			continue
		}
		index[t.ID] = t
	}

	counted, issues := partition(index, matches)
	sortChronologically(counted)

	current := a.Rank(tally(teams, index, counted))
	applyForm(current, counted)

	previous := previousMatchday(counted)
	if previous == nil {
		for i := range current {
			current[i].Movement = MovementNew
		}
	} else {
		applyMovement(current, a.Rank(tally(teams, index, previous)))
	}

	return Table{
		Rows:           current,
		Issues:         issues,
		CountedMatches: len(counted),
	}
}

// Rank orders rows by points, goal difference, goals scored, team name and
// team id, and assigns 1-based positions. The input is not modified.
func (a *Aggregator) Rank(rows []Row) []Row {
	out := slices.Clone(rows)
	col := a.collator()

	slices.SortStableFunc(out, func(x, y Row) int {
		if c := cmp.Compare(y.Points(), x.Points()); c != 0 {
			return c
		}
		if c := cmp.Compare(y.GoalDifference(), x.GoalDifference()); c != 0 {
			return c
		}
		if c := cmp.Compare(y.GoalsFor, x.GoalsFor); c != 0 {
			return c
		}
		if c := col.CompareString(x.TeamName, y.TeamName); c != 0 {
			return c
		}
		return cmp.Compare(x.TeamID, y.TeamID)
	})

	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

func partition(index map[string]team.Team, matches []match.Match) ([]match.Match, []Issue) {
	counted := make([]match.Match, 0, len(matches))
	var issues []Issue

	for _, m := range matches {
		if !m.IsCompleted() {
			continue
		}
		if err := validate(index, m); err != nil {
			issues = append(issues, Issue{MatchID: m.ID, Err: err})
			continue
		}
		counted = append(counted, m)
	}

	return counted, issues
}

func validate(index map[string]team.Team, m match.Match) error {
	for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
		if _, ok := index[teamID]; !ok {
			return &ReferentialIntegrityError{MatchID: m.ID, TeamID: teamID}
		}
	}
	if m.HomeTeamID == m.AwayTeamID {
		return &MalformedRecordError{MatchID: m.ID, Reason: "home and away team are the same"}
	}
	if !m.HasScore() {
		return &MalformedRecordError{MatchID: m.ID, Reason: "completed match is missing a score"}
	}
	if *m.HomeScore < 0 || *m.AwayScore < 0 {
		return &MalformedRecordError{MatchID: m.ID, Reason: "score is negative"}
	}
	return nil
}

func tally(teams []team.Team, index map[string]team.Team, counted []match.Match) []Row {
	rows := make([]Row, 0, len(index))
	pos := make(map[string]int, len(index))
	for _, t := range teams {
		if _, ok := index[t.ID]; !ok {
			continue
		}
		if _, seen := pos[t.ID]; seen {
			continue
		}
		pos[t.ID] = len(rows)
		rows = append(rows, Row{
			TeamID:           t.ID,
			TeamName:         t.Name,
			TeamAbbreviation: t.Abbreviation,
		})
	}

	for _, m := range counted {
		for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
			own, opponent, _ := m.ScoresFor(teamID)
			row := &rows[pos[teamID]]
			row.Played++
			row.GoalsFor += own
			row.GoalsAgainst += opponent
			switch resultOf(own, opponent) {
			case ResultWin:
				row.Won++
			case ResultDraw:
				row.Drawn++
			default:
				row.Lost++
			}
		}
	}

	return rows
}

func resultOf(own, opponent int) Result {
	switch {
	case own > opponent:
		return ResultWin
	case own == opponent:
		return ResultDraw
	default:
		return ResultLoss
	}
}

// applyForm expects counted to be in chronological order.
func applyForm(rows []Row, counted []match.Match) {
	form := make(map[string][]Result, len(rows))
	for _, m := range counted {
		for _, teamID := range []string{m.HomeTeamID, m.AwayTeamID} {
			own, opponent, _ := m.ScoresFor(teamID)
			form[teamID] = append(form[teamID], resultOf(own, opponent))
		}
	}

	for i := range rows {
		results := form[rows[i].TeamID]
		if len(results) > formLength {
			results = results[len(results)-formLength:]
		}
		rows[i].Form = slices.Clone(results)
	}
}

// previousMatchday drops the matches played on the latest match day. It
// returns nil when there is no earlier match day to compare against.
func previousMatchday(counted []match.Match) []match.Match {
	if len(counted) == 0 {
		return nil
	}

	latest := matchDay(counted[0].MatchDate)
	for _, m := range counted[1:] {
		if d := matchDay(m.MatchDate); d.After(latest) {
			latest = d
		}
	}

	out := make([]match.Match, 0, len(counted))
	for _, m := range counted {
		if matchDay(m.MatchDate).Before(latest) {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func matchDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

func applyMovement(current, previous []Row) {
	before := make(map[string]int, len(previous))
	for _, row := range previous {
		before[row.TeamID] = row.Position
	}

	for i := range current {
		prev, ok := before[current[i].TeamID]
		if !ok {
			current[i].Movement = MovementNew
			continue
		}
		current[i].PreviousPosition = prev
		switch {
		case prev > current[i].Position:
			current[i].Movement = MovementUp
		case prev < current[i].Position:
			current[i].Movement = MovementDown
		default:
			current[i].Movement = MovementSame
		}
	}
}

func sortChronologically(matches []match.Match) {
	slices.SortStableFunc(matches, func(x, y match.Match) int {
		if c := x.MatchDate.Compare(y.MatchDate); c != 0 {
			return c
		}
		return cmp.Compare(x.ID, y.ID)
	})
}
