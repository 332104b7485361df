package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("open sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestMatchRepository_ListBySeason(t *testing.T) {
	db, mock := newMockDB(t)
	at := time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(matchColumns).
		AddRow(1, "m-1", "s-1", 1, "t-a", "t-b", 2, 1, "FT", at, "Harbour Park", "", "league").
		AddRow(2, "m-2", "s-1", 2, "t-b", "t-a", nil, nil, "scheduled", at.AddDate(0, 0, 7), "", "", "league")
	mock.ExpectQuery(regexp.QuoteMeta("FROM matches WHERE deleted_at IS NULL AND season_public_id = $1 ORDER BY match_date, public_id")).
		WithArgs("s-1").
		WillReturnRows(rows)

	got, err := NewMatchRepository(db).ListBySeason(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if !got[0].IsCompleted() || *got[0].HomeScore != 2 || *got[0].AwayScore != 1 {
		t.Fatalf("unexpected completed match: %+v", got[0])
	}
	if got[1].HomeScore != nil || got[1].AwayScore != nil {
		t.Fatalf("expected NULL scores to stay nil: %+v", got[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeasonRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM seasons WHERE deleted_at IS NULL AND public_id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(seasonColumns))

	_, ok, err := NewSeasonRepository(db).GetByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get season: %v", err)
	}
	if ok {
		t.Fatalf("expected season to be absent")
	}
}

func TestTeamRepository_GetByID_LiteralFallback(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM teams WHERE deleted_at IS NULL AND public_id = $1")).
		WithArgs("t-o'neil").
		WillReturnError(fakeErr("pq: unnamed prepared statement does not exist (26000)"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM teams WHERE deleted_at IS NULL AND public_id = 't-o''neil'")).
		WillReturnRows(sqlmock.NewRows(teamColumns).
			AddRow(7, "t-o'neil", "O'Neil Athletic", "ONA", "", "", nil, true))

	got, ok, err := NewTeamRepository(db).GetByID(context.Background(), "t-o'neil")
	if err != nil || !ok {
		t.Fatalf("expected fallback to find team, ok=%v err=%v", ok, err)
	}
	if got.Name != "O'Neil Athletic" || got.FoundedYear != 0 {
		t.Fatalf("unexpected team: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlayerRepository_List_JoinsTeamAndStats(t *testing.T) {
	db, mock := newMockDB(t)

	cols := []string{
		"id", "public_id", "username", "email", "first_name", "last_name", "avatar_url", "country",
		"date_of_birth", "preferred_position", "team_public_id", "is_active",
		"team_name", "team_abbreviation", "goals", "assists", "matches_played", "rating", "wins", "losses",
	}
	mock.ExpectQuery(regexp.QuoteMeta("FROM users u LEFT JOIN teams t ON t.public_id = u.team_public_id AND t.deleted_at IS NULL LEFT JOIN player_stats ps ON ps.user_public_id = u.public_id WHERE u.deleted_at IS NULL ORDER BY u.public_id")).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "p-1", "keeper", "k@example.com", "Kim", "Lee", "", "KR", nil, "goalkeeper", "t-a", true, "Arsenal Rovers", "ARR", 0, 1, 10, 7.25, 6, 2).
			AddRow(2, "p-2", "rookie", "", "", "", "", "", nil, "", nil, true, nil, nil, 0, 0, 0, nil, 0, 0))

	got, err := NewPlayerRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 players, got %d", len(got))
	}
	if got[0].TeamName != "Arsenal Rovers" || got[0].Stats.Rating != 7.25 || got[0].Stats.Wins != 6 {
		t.Fatalf("unexpected joined player: %+v", got[0])
	}
	if got[1].TeamID != "" || got[1].TeamName != "" || got[1].Stats.Rating != 0 {
		t.Fatalf("expected free player without stats: %+v", got[1])
	}
}

func TestNewsRepository_List_Tags(t *testing.T) {
	db, mock := newMockDB(t)
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM news_articles WHERE deleted_at IS NULL ORDER BY published_at DESC, public_id")).
		WillReturnRows(sqlmock.NewRows(newsColumns).
			AddRow(1, "n-1", "Derby preview", "", "", "Desk", "", "match", "", at, at, 10, 3, 1, true, "{derby,preview}"))

	got, err := NewNewsRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("list news: %v", err)
	}
	if len(got) != 1 || len(got[0].Tags) != 2 || got[0].Tags[0] != "derby" || got[0].Engagement() != 4 {
		t.Fatalf("unexpected articles: %+v", got)
	}
}

func TestAwardRepository_List_SplitsCurrentAndPreviousWinners(t *testing.T) {
	db, mock := newMockDB(t)
	at := time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM awards WHERE deleted_at IS NULL ORDER BY name, public_id")).
		WillReturnRows(sqlmock.NewRows(awardColumns).
			AddRow(1, "a-boot", "Golden Boot", "Top scorer", "player").
			AddRow(2, "a-new", "Fair Play", "", "team"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM award_winners WHERE award_public_id IN ($1, $2)")).
		WithArgs("a-boot", "a-new").
		WillReturnRows(sqlmock.NewRows(awardWinnerColumns).
			AddRow("a-boot", "Sam Striker", "Harbour", "21 goals", "", "2026", true, at).
			AddRow("a-boot", "Old Nine", "Vale", "", "", "2025", false, at.AddDate(-1, 0, 0)))

	got, err := NewAwardRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("list awards: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 awards, got %d", len(got))
	}
	if got[0].CurrentWinner == nil || got[0].CurrentWinner.Name != "Sam Striker" {
		t.Fatalf("unexpected current winner: %+v", got[0].CurrentWinner)
	}
	if len(got[0].PreviousWinners) != 1 || got[0].PreviousWinners[0].Season != "2025" {
		t.Fatalf("unexpected previous winners: %+v", got[0].PreviousWinners)
	}
	if got[1].CurrentWinner != nil || got[1].PreviousWinners == nil {
		t.Fatalf("expected empty winner history for new award: %+v", got[1])
	}
}
