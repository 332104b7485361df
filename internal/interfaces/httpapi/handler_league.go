package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/league-portal/internal/usecase"
)

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	overview, err := h.statisticsService.Overview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewDTO{
		Players:       overview.Players,
		ActiveTeams:   overview.ActiveTeams,
		Matches:       overview.Matches,
		ActiveSeasons: overview.ActiveSeasons,
	})
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.seasonService.ListSeasons(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(seasons, seasonToDTO))
}

// GetStandings serves the table of the active season.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	table, err := h.standingService.TableBySeason(ctx, usecase.CurrentSeasonAlias)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingTableToDTO(ctx, table))
}

func (h *Handler) GetSeasonStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonStandings")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	table, err := h.standingService.TableBySeason(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingTableToDTO(ctx, table))
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatistics")
	defer span.End()

	stats, err := h.statisticsService.Summary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get statistics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statisticsToDTO(stats))
}
