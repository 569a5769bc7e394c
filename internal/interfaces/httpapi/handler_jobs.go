package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/keeper-league/internal/usecase"
)

func (h *Handler) RunLeagueSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunLeagueSyncJob")
	defer span.End()

	if h.syncService == nil {
		writeError(ctx, w, usecase.ErrDependencyUnavailable)
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	result, err := h.syncService.SyncLeague(ctx, leagueID)
	if err != nil {
		h.logger.ErrorContext(ctx, "league sync job failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunSyncAllJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncAllJob")
	defer span.End()

	if h.syncService == nil {
		writeError(ctx, w, usecase.ErrDependencyUnavailable)
		return
	}

	maxWorkers := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("workers")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			maxWorkers = parsed
		}
	}

	result, err := h.syncService.SyncAllLeagues(ctx, maxWorkers)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync all leagues job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
