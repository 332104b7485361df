package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/domain/award"
	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/platform/listquery"
	playermock "github.com/riskibarqy/league-portal/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_ListPlayers(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(newFixtureLeague().players, nil)

	page, err := service.ListPlayers(context.Background(), listquery.Query{})
	if err != nil {
		t.Fatalf("ListPlayers error: %v", err)
	}
	if page.TotalItems != 2 || page.Items[0].ID != "user-2" {
		t.Fatalf("expected active players by rating, got %+v", page.Items)
	}

	page, err = service.ListPlayers(context.Background(), listquery.Query{Search: "bristol", Category: "goalkeeper"})
	if err != nil {
		t.Fatalf("ListPlayers error: %v", err)
	}
	if page.TotalItems != 1 || page.Items[0].ID != "user-1" {
		t.Fatalf("expected team-name search within position, got %+v", page.Items)
	}

	_, err = service.ListPlayers(context.Background(), listquery.Query{SortKey: "salary"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_GetPlayer_UsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := playermock.NewRepository(t)
	repo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "user-9").
		Return(player.Player{}, false, nil).
		Once()
	repo.
		On("GetByID", mock.Anything, "user-1").
		Return(player.Player{ID: "user-1", Username: "bee_keeper"}, true, nil).
		Once()

	service := NewPlayerService(repo, nil)

	if _, err := service.GetPlayer(ctx, "user-9"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	got, err := service.GetPlayer(ctx, "user-1")
	if err != nil || got.Username != "bee_keeper" {
		t.Fatalf("unexpected player %+v err=%v", got, err)
	}
}

func TestFreeAgentService_ListFreeAgents(t *testing.T) {
	t.Parallel()

	repo := &stubFreeAgentRepository{items: []freeagent.FreeAgent{
		{ID: "fa-1", Username: "veteran", Age: 34, Rating: 7.1, AskingPrice: 500, Status: freeagent.StatusAvailable},
		{ID: "fa-2", Username: "prospect", Age: 19, Rating: 6.4, AskingPrice: 1500, Status: freeagent.StatusAvailable},
		{ID: "fa-3", Username: "signed", Age: 25, Rating: 8.0, AskingPrice: 900, Status: freeagent.StatusSigned},
	}}
	service := NewFreeAgentService(repo, nil)

	page, err := service.ListFreeAgents(context.Background(), listquery.Query{Category: "available", SortKey: "age"})
	if err != nil {
		t.Fatalf("ListFreeAgents error: %v", err)
	}
	if page.TotalItems != 2 || page.Items[0].ID != "fa-2" {
		t.Fatalf("expected youngest available first, got %+v", page.Items)
	}

	page, err = service.ListFreeAgents(context.Background(), listquery.Query{SortKey: "price"})
	if err != nil {
		t.Fatalf("ListFreeAgents error: %v", err)
	}
	if page.Items[0].ID != "fa-2" || page.Items[2].ID != "fa-1" {
		t.Fatalf("expected highest asking price first, got %+v", page.Items)
	}
}

func TestNewsService_ListNews_SplitsFeatured(t *testing.T) {
	t.Parallel()

	at := func(d int) time.Time { return time.Date(2025, time.September, d, 9, 0, 0, 0, time.UTC) }
	repo := &stubNewsRepository{items: []news.Article{
		{ID: "n1", Title: "Bees sign keeper", Category: news.CategoryTransfer, PublishedAt: at(1), Likes: 10, Comments: 1, Tags: []string{"bees"}},
		{ID: "n2", Title: "Derby report", Category: news.CategoryMatch, PublishedAt: at(2), Likes: 3, Comments: 30, IsFeatured: true},
		{ID: "n3", Title: "Season preview", Category: news.CategoryLeague, PublishedAt: at(3), Likes: 1, Comments: 0},
	}}
	service := NewNewsService(repo, nil)

	feed, err := service.ListNews(context.Background(), listquery.Query{})
	if err != nil {
		t.Fatalf("ListNews error: %v", err)
	}
	if feed.Page.Items[0].ID != "n3" {
		t.Fatalf("expected latest first, got %s", feed.Page.Items[0].ID)
	}
	if len(feed.Featured) != 1 || feed.Featured[0].ID != "n2" || len(feed.Regular) != 2 {
		t.Fatalf("unexpected featured split: featured=%d regular=%d", len(feed.Featured), len(feed.Regular))
	}

	feed, err = service.ListNews(context.Background(), listquery.Query{SortKey: "trending"})
	if err != nil {
		t.Fatalf("ListNews error: %v", err)
	}
	if feed.Page.Items[0].ID != "n2" || feed.Page.Items[1].ID != "n1" {
		t.Fatalf("unexpected trending order: %+v", feed.Page.Items)
	}

	feed, err = service.ListNews(context.Background(), listquery.Query{Search: "BEES"})
	if err != nil {
		t.Fatalf("ListNews error: %v", err)
	}
	if feed.Page.TotalItems != 1 || feed.Page.Items[0].ID != "n1" {
		t.Fatalf("unexpected search result: %+v", feed.Page.Items)
	}

	if _, err := service.GetArticle(context.Background(), "n404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAwardService_ListAwards(t *testing.T) {
	t.Parallel()

	repo := &stubAwardRepository{items: []award.Award{
		{ID: "a1", Name: "Golden Boot", Category: award.CategoryPlayer, CurrentWinner: &award.Winner{Name: "Ada Striker"}},
		{ID: "a2", Name: "Fair Play", Category: award.CategoryTeam},
		{ID: "a3", Name: "Best Goalkeeper", Category: award.CategoryPlayer, CurrentWinner: &award.Winner{Name: "Bea Keeper"}},
	}}
	service := NewAwardService(repo, nil)

	page, err := service.ListAwards(context.Background(), listquery.Query{Category: "player"})
	if err != nil {
		t.Fatalf("ListAwards error: %v", err)
	}
	if page.TotalItems != 2 || page.Items[0].ID != "a3" {
		t.Fatalf("expected player awards by name, got %+v", page.Items)
	}

	page, err = service.ListAwards(context.Background(), listquery.Query{Search: "striker"})
	if err != nil {
		t.Fatalf("ListAwards error: %v", err)
	}
	if page.TotalItems != 1 || page.Items[0].ID != "a1" {
		t.Fatalf("expected winner-name search, got %+v", page.Items)
	}
}
