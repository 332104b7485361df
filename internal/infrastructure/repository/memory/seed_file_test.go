package memory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/domain/match"
)

const sampleSeed = `
seasons:
  - id: s-1
    name: "2026"
    start_date: 2026-03-01
    is_active: true
teams:
  - id: t-1
    name: Lakeside
    abbreviation: LKS
    is_active: true
  - id: t-2
    name: Hillcrest
    abbreviation: HLC
    is_active: true
matches:
  - id: m-1
    season_id: s-1
    home_team_id: t-1
    away_team_id: t-2
    home_score: 2
    away_score: 1
    status: FT
    match_date: 2026-03-07T15:00:00Z
  - id: m-2
    season_id: s-1
    home_team_id: t-2
    away_team_id: t-1
    status: upcoming
    match_date: 2026-03-14T15:00:00Z
players:
  - id: p-1
    username: keeper
    team_id: t-2
    preferred_position: Goalkeeper
    stats:
      rating: 7.1
free_agents:
  - id: fa-1
    username: drifter
    status: Negotiating
news:
  - id: n-1
    title: Opening day
    category: Match
    published_at: 2026-03-08T09:00:00Z
    tags: [opening]
awards:
  - id: a-1
    name: Golden Boot
    category: player
    current_winner:
      name: Someone
    previous_winners:
      - name: Earlier
        season: "2025"
`

func TestParseSeed(t *testing.T) {
	t.Parallel()

	data, err := ParseSeed([]byte(sampleSeed))
	if err != nil {
		t.Fatalf("ParseSeed error: %v", err)
	}

	if len(data.Seasons) != 1 || !data.Seasons[0].StartDate.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected seasons: %+v", data.Seasons)
	}
	if len(data.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(data.Matches))
	}
	if data.Matches[0].Status != match.StatusCompleted || *data.Matches[0].HomeScore != 2 {
		t.Fatalf("unexpected first match: %+v", data.Matches[0])
	}
	if data.Matches[1].Status != match.StatusScheduled || data.Matches[1].HomeScore != nil {
		t.Fatalf("unplayed match must keep nil scores: %+v", data.Matches[1])
	}

	p := data.Players[0]
	if !p.IsActive || p.TeamName != "Hillcrest" || p.PreferredPosition != "goalkeeper" {
		t.Fatalf("unexpected player: %+v", p)
	}
	if data.FreeAgents[0].Status != freeagent.StatusNegotiating {
		t.Fatalf("unexpected free agent status: %s", data.FreeAgents[0].Status)
	}
	if data.News[0].Category != "match" || len(data.News[0].Tags) != 1 {
		t.Fatalf("unexpected article: %+v", data.News[0])
	}
	if data.Awards[0].CurrentWinner == nil || len(data.Awards[0].PreviousWinners) != 1 {
		t.Fatalf("unexpected award: %+v", data.Awards[0])
	}
}

func TestParseSeed_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown key":       "teams:\n  - id: t-1\n    name: X\n    colour: red\n",
		"missing team name": "teams:\n  - id: t-1\n",
		"bad agent status":  "free_agents:\n  - id: fa-1\n    status: retired\n",
		"match without id":  "matches:\n  - season_id: s-1\n",
	}
	for name, raw := range cases {
		if _, err := ParseSeed([]byte(raw)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadSeedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(sampleSeed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	data, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile error: %v", err)
	}
	if len(data.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(data.Teams))
	}

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read seed file") {
		t.Fatalf("expected read error, got %v", err)
	}
}
