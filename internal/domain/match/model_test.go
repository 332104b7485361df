package match

import "testing"

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	cases := map[string]Status{
		"":          StatusScheduled,
		"Upcoming":  StatusScheduled,
		" LIVE ":    StatusLive,
		"FT":        StatusCompleted,
		"completed": StatusCompleted,
		"cancelled": StatusPostponed,
		"suspended": Status("suspended"),
	}
	for raw, want := range cases {
		if got := NormalizeStatus(raw); got != want {
			t.Fatalf("NormalizeStatus(%q)=%q want %q", raw, got, want)
		}
	}
}

func TestMatch_ScoresFor(t *testing.T) {
	t.Parallel()

	home, away := 3, 1
	m := Match{ID: "m1", HomeTeamID: "a", AwayTeamID: "b", HomeScore: &home, AwayScore: &away, Status: StatusCompleted}

	own, opp, ok := m.ScoresFor("b")
	if !ok || own != 1 || opp != 3 {
		t.Fatalf("unexpected away scores: own=%d opp=%d ok=%v", own, opp, ok)
	}
	if _, _, ok := m.ScoresFor("c"); ok {
		t.Fatalf("expected non participant to report ok=false")
	}
	if m.OpponentOf("a") != "b" || m.OpponentOf("c") != "" {
		t.Fatalf("unexpected opponent resolution")
	}
	if m.TotalGoals() != 4 {
		t.Fatalf("expected 4 goals, got %d", m.TotalGoals())
	}

	m.AwayScore = nil
	if _, _, ok := m.ScoresFor("a"); ok {
		t.Fatalf("expected missing score to report ok=false")
	}
}
