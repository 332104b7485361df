package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	query, err := h.parseListQuery(ctx, r, "category")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	feed, err := h.newsService.ListNews(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "list news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsFeedToDTO(ctx, feed))
}

func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetArticle")
	defer span.End()

	articleID := strings.TrimSpace(r.PathValue("articleID"))
	item, err := h.newsService.GetArticle(ctx, articleID)
	if err != nil {
		h.logger.WarnContext(ctx, "get article failed", "article_id", articleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(item))
}

func (h *Handler) ListAwards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAwards")
	defer span.End()

	query, err := h.parseListQuery(ctx, r, "category")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.awardService.ListAwards(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "list awards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pageToDTO(page, awardToDTO))
}
