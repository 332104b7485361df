package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/platform/listquery"
	"golang.org/x/text/language"
)

type PlayerService struct {
	playerRepo player.Repository
	schema     *listquery.Schema[player.Player]
}

func NewPlayerService(playerRepo player.Repository, schema *listquery.Schema[player.Player]) *PlayerService {
	if schema == nil {
		schema = playerSchema(language.English)
	}

	return &PlayerService{
		playerRepo: playerRepo,
		schema:     schema,
	}
}

// ListPlayers lists active players. The category is the preferred position.
func (s *PlayerService) ListPlayers(ctx context.Context, query listquery.Query) (listquery.Page[player.Player], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return listquery.Page[player.Player]{}, fmt.Errorf("list players: %w", err)
	}

	active := make([]player.Player, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			active = append(active, item)
		}
	}

	page, err := s.schema.Apply(active, query)
	if err != nil {
		return listquery.Page[player.Player]{}, listQueryError("players", err)
	}

	return page, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}
