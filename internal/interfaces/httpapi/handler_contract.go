package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/keeper-league/internal/usecase"
)

type createContractRequest struct {
	TeamID      string `json:"team_id" validate:"required"`
	PlayerID    string `json:"player_id" validate:"required"`
	DraftAmount int64  `json:"draft_amount" validate:"gte=0"`
	Duration    int    `json:"duration" validate:"omitempty,gte=1,lte=4"`
}

type setDurationRequest struct {
	Duration int `json:"duration" validate:"required,gte=1,lte=4"`
}

type contractDTO struct {
	ID          int64         `json:"id"`
	PlayerID    string        `json:"player_id"`
	TeamID      string        `json:"team_id"`
	LeagueID    string        `json:"league_id"`
	DraftAmount int64         `json:"draft_amount"`
	StartYear   int           `json:"start_year"`
	EndYear     int           `json:"end_year"`
	Duration    int           `json:"duration"`
	Active      bool          `json:"active"`
	Schedule    []yearCostDTO `json:"schedule,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type yearCostDTO struct {
	Year int   `json:"year"`
	Cost int64 `json:"cost"`
}

func (h *Handler) CreateContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateContract")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	var req createContractRequest
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

	created, err := h.contractService.CreateContract(ctx, usecase.CreateContractInput{
		LeagueID:    leagueID,
		TeamID:      req.TeamID,
		PlayerID:    req.PlayerID,
		DraftAmount: req.DraftAmount,
		Duration:    req.Duration,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create contract failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, contractDTO{
		ID:          created.ID,
		PlayerID:    created.PlayerID,
		TeamID:      created.TeamID,
		LeagueID:    created.LeagueID,
		DraftAmount: created.DraftAmount,
		StartYear:   created.StartYear,
		EndYear:     created.EndYear(),
		Duration:    created.Duration,
		Active:      created.Active,
		CreatedAt:   created.CreatedAt,
		UpdatedAt:   created.UpdatedAt,
	})
}

func (h *Handler) SetContractDuration(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetContractDuration")
	defer span.End()

	contractID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("contractID")), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: contract id must be an integer", usecase.ErrInvalidInput))
		return
	}

	var req setDurationRequest
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

	updated, err := h.contractService.SetDuration(ctx, contractID, req.Duration)
	if err != nil {
		h.logger.WarnContext(ctx, "set contract duration failed", "contract_id", contractID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, contractDTO{
		ID:          updated.ID,
		PlayerID:    updated.PlayerID,
		TeamID:      updated.TeamID,
		LeagueID:    updated.LeagueID,
		DraftAmount: updated.DraftAmount,
		StartYear:   updated.StartYear,
		EndYear:     updated.EndYear(),
		Duration:    updated.Duration,
		Active:      updated.Active,
		CreatedAt:   updated.CreatedAt,
		UpdatedAt:   updated.UpdatedAt,
	})
}

func (h *Handler) ListTeamContracts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamContracts")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	rows, err := h.contractService.ListTeamContracts(ctx, leagueID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team contracts failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]contractDTO, 0, len(rows))
	for _, row := range rows {
		schedule := make([]yearCostDTO, 0, len(row.Schedule))
		for _, yc := range row.Schedule {
			schedule = append(schedule, yearCostDTO{Year: yc.Year, Cost: yc.Cost})
		}
		items = append(items, contractDTO{
			ID:          row.Contract.ID,
			PlayerID:    row.Contract.PlayerID,
			TeamID:      row.Contract.TeamID,
			LeagueID:    row.Contract.LeagueID,
			DraftAmount: row.Contract.DraftAmount,
			StartYear:   row.Contract.StartYear,
			EndYear:     row.Contract.EndYear(),
			Duration:    row.Contract.Duration,
			Active:      row.Contract.Active,
			Schedule:    schedule,
			CreatedAt:   row.Contract.CreatedAt,
			UpdatedAt:   row.Contract.UpdatedAt,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
