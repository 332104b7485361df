package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-portal/internal/platform/listquery"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

// Services are the use cases the HTTP layer serves.
type Services struct {
	Seasons    *usecase.SeasonService
	Standings  *usecase.StandingService
	Teams      *usecase.TeamService
	Matches    *usecase.MatchService
	Players    *usecase.PlayerService
	FreeAgents *usecase.FreeAgentService
	News       *usecase.NewsService
	Awards     *usecase.AwardService
	Statistics *usecase.StatisticsService
	Dashboard  *usecase.DashboardService
}

type Handler struct {
	seasonService     *usecase.SeasonService
	standingService   *usecase.StandingService
	teamService       *usecase.TeamService
	matchService      *usecase.MatchService
	playerService     *usecase.PlayerService
	freeAgentService  *usecase.FreeAgentService
	newsService       *usecase.NewsService
	awardService      *usecase.AwardService
	statisticsService *usecase.StatisticsService
	dashboardService  *usecase.DashboardService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		seasonService:     services.Seasons,
		standingService:   services.Standings,
		teamService:       services.Teams,
		matchService:      services.Matches,
		playerService:     services.Players,
		freeAgentService:  services.FreeAgents,
		newsService:       services.News,
		awardService:      services.Awards,
		statisticsService: services.Statistics,
		dashboardService:  services.Dashboard,
		logger:            logger.Named("httpapi"),
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// listQueryRequest holds the raw list parameters shared by every list page.
type listQueryRequest struct {
	Search   string `validate:"max=100"`
	Category string `validate:"max=32"`
	Sort     string `validate:"max=32"`
	Order    string `validate:"omitempty,oneof=asc desc"`
	Page     int    `validate:"gte=1,lte=100000"`
	PageSize int    `validate:"gte=1,lte=100"`
}

// parseListQuery reads search, sort, order and paging from the URL. The
// category is read from categoryParam; pass "" for lists without one.
func (h *Handler) parseListQuery(ctx context.Context, r *http.Request, categoryParam string) (listquery.Query, error) {
	values := r.URL.Query()

	req := listQueryRequest{
		Search:   strings.TrimSpace(values.Get("search")),
		Sort:     strings.TrimSpace(values.Get("sort")),
		Order:    strings.ToLower(strings.TrimSpace(values.Get("order"))),
		Page:     1,
		PageSize: listquery.DefaultPageSize,
	}
	if categoryParam != "" {
		req.Category = strings.TrimSpace(values.Get(categoryParam))
	}

	var err error
	if req.Page, err = intParam(values.Get("page"), req.Page); err != nil {
		return listquery.Query{}, fmt.Errorf("%w: page must be a number", usecase.ErrInvalidInput)
	}
	if req.PageSize, err = intParam(values.Get("page_size"), req.PageSize); err != nil {
		return listquery.Query{}, fmt.Errorf("%w: page_size must be a number", usecase.ErrInvalidInput)
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return listquery.Query{}, err
	}

	return listquery.Query{
		Search:    req.Search,
		Category:  req.Category,
		SortKey:   req.Sort,
		Direction: listquery.ParseDirection(req.Order),
		Page:      req.Page,
		PageSize:  req.PageSize,
	}, nil
}

func intParam(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
