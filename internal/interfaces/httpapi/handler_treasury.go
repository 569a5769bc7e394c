package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/keeper-league/internal/usecase"
)

type recordPayoutRequest struct {
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Note   string `json:"note" validate:"omitempty,max=200"`
}

type vaultEntryDTO struct {
	ID         string    `json:"id"`
	SeasonYear int       `json:"season_year"`
	Amount     int64     `json:"amount"`
	Kind       string    `json:"kind"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *Handler) GetTeamVault(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamVault")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	vault, err := h.treasuryService.GetVault(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team vault failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	entries := make([]vaultEntryDTO, 0, len(vault.Entries))
	for _, e := range vault.Entries {
		entries = append(entries, vaultEntryDTO{
			ID:         e.ID,
			SeasonYear: e.SeasonYear,
			Amount:     e.Amount,
			Kind:       string(e.Kind),
			Note:       e.Note,
			CreatedAt:  e.CreatedAt,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"league_id": vault.LeagueID,
		"team_id":   vault.TeamID,
		"entries":   entries,
		"balance":   vault.Balance,
	})
}

func (h *Handler) RecordEntryFee(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordEntryFee")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	entry, err := h.treasuryService.RecordEntryFee(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "record entry fee failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, vaultEntryDTO{
		ID:         entry.ID,
		SeasonYear: entry.SeasonYear,
		Amount:     entry.Amount,
		Kind:       string(entry.Kind),
		Note:       entry.Note,
		CreatedAt:  entry.CreatedAt,
	})
}

func (h *Handler) RecordPayout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordPayout")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req recordPayoutRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.treasuryService.RecordPayout(ctx, leagueID, teamID, req.Amount, req.Note)
	if err != nil {
		h.logger.WarnContext(ctx, "record payout failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, vaultEntryDTO{
		ID:         entry.ID,
		SeasonYear: entry.SeasonYear,
		Amount:     entry.Amount,
		Kind:       string(entry.Kind),
		Note:       entry.Note,
		CreatedAt:  entry.CreatedAt,
	})
}
