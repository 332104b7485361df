package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/platform/listquery"
	"golang.org/x/text/language"
)

type FreeAgentService struct {
	freeAgentRepo freeagent.Repository
	schema        *listquery.Schema[freeagent.FreeAgent]
}

func NewFreeAgentService(freeAgentRepo freeagent.Repository, schema *listquery.Schema[freeagent.FreeAgent]) *FreeAgentService {
	if schema == nil {
		schema = freeAgentSchema(language.English)
	}

	return &FreeAgentService{
		freeAgentRepo: freeAgentRepo,
		schema:        schema,
	}
}

// ListFreeAgents filters by transfer status (available, negotiating, signed).
func (s *FreeAgentService) ListFreeAgents(ctx context.Context, query listquery.Query) (listquery.Page[freeagent.FreeAgent], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FreeAgentService.ListFreeAgents")
	defer span.End()

	items, err := s.freeAgentRepo.List(ctx)
	if err != nil {
		return listquery.Page[freeagent.FreeAgent]{}, fmt.Errorf("list free agents: %w", err)
	}

	page, err := s.schema.Apply(items, query)
	if err != nil {
		return listquery.Page[freeagent.FreeAgent]{}, listQueryError("free agents", err)
	}

	return page, nil
}
