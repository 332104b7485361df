package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-portal/internal/domain/award"
	"github.com/riskibarqy/league-portal/internal/platform/listquery"
	"golang.org/x/text/language"
)

type AwardService struct {
	awardRepo award.Repository
	schema    *listquery.Schema[award.Award]
}

func NewAwardService(awardRepo award.Repository, schema *listquery.Schema[award.Award]) *AwardService {
	if schema == nil {
		schema = awardSchema(language.English)
	}

	return &AwardService{
		awardRepo: awardRepo,
		schema:    schema,
	}
}

func (s *AwardService) ListAwards(ctx context.Context, query listquery.Query) (listquery.Page[award.Award], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.ListAwards")
	defer span.End()

	items, err := s.awardRepo.List(ctx)
	if err != nil {
		return listquery.Page[award.Award]{}, fmt.Errorf("list awards: %w", err)
	}

	page, err := s.schema.Apply(items, query)
	if err != nil {
		return listquery.Page[award.Award]{}, listQueryError("awards", err)
	}

	return page, nil
}
