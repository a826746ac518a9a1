package release

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akosarev/fundmart/internal/domain"
	"github.com/akosarev/fundmart/internal/dto"
	releaseservice "github.com/akosarev/fundmart/internal/service/releaseservice"
	"github.com/akosarev/fundmart/pkg/auth"
	"github.com/akosarev/fundmart/pkg/money"
	"github.com/akosarev/fundmart/pkg/utils"
	"github.com/akosarev/fundmart/pkg/validate"
)

type Service interface {
	SuspendAndReallocate(ctx context.Context, campaignID int, alloc map[int]int64) (*domain.Campaign, error)
	ReleaseMoney(ctx context.Context, campaignID int, callerID int) (*domain.Campaign, error)
}

type ReleaseHandler struct {
	releaseService Service
}

func New(releaseService Service) *ReleaseHandler {
	return &ReleaseHandler{
		releaseService: releaseService,
	}
}

// SuspendReallocate godoc
//
//	@Summary		Suspend a campaign and reallocate its funds
//	@Description	Suspend the campaign and move its raised amount into the supplied target campaigns. An empty allocations map lets the server compute a needs-based split over open campaigns. Admin only.
//	@Tags			Release
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SuspendReallocateRequestDTO		true	"Suspension payload"
//	@Success		200		{object}	dto.SuspendReallocateResponseDTO	"Suspended campaign"
//	@Failure		400		{object}	utils.Response						"Allocation mismatch or invalid mapping"
//	@Failure		404		{object}	utils.Response						"Campaign or target not found"
//	@Failure		409		{object}	utils.Response						"Campaign already suspended or completed"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/release/suspendreallocate [post]
func (h *ReleaseHandler) SuspendReallocate(w http.ResponseWriter, r *http.Request) {
	var req dto.SuspendReallocateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SuspendedCampaignID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "suspendedCampaignId is required")
		return
	}

	alloc := make(map[int]int64, len(req.Allocations))
	for rawID, amount := range req.Allocations {
		targetID, err := strconv.Atoi(rawID)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid target campaign id: "+rawID)
			return
		}
		alloc[targetID] = money.FromFloat(amount)
	}

	campaign, err := h.releaseService.SuspendAndReallocate(r.Context(), req.SuspendedCampaignID, alloc)
	if err != nil {
		switch {
		case errors.Is(err, releaseservice.ErrCampaignNotFound),
			errors.Is(err, releaseservice.ErrTargetNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, releaseservice.ErrAllocationMismatch),
			errors.Is(err, releaseservice.ErrInvalidAllocation),
			errors.Is(err, releaseservice.ErrNoEligibleTargets):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, releaseservice.ErrAlreadySuspended),
			errors.Is(err, releaseservice.ErrCampaignCompleted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SuspendReallocateResponseDTO{
		Success: true,
		Data:    dto.NewCampaignResponse(campaign),
	})
}

// ReleaseMoney godoc
//
//	@Summary		Release campaign funds to the owner
//	@Description	Move the campaign's raised amount to the owner's withdrawable balance. The payout card number must pass the Luhn check.
//	@Tags			Release
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Campaign id"
//	@Param			request	body		dto.ReleaseMoneyRequestDTO	true	"Payout destination"
//	@Success		200		{object}	dto.CampaignResponseDTO	"Released campaign"
//	@Failure		403		{object}	utils.Response			"Caller is not the owner"
//	@Failure		404		{object}	utils.Response			"Campaign not found"
//	@Failure		409		{object}	utils.Response			"Campaign cannot be released"
//	@Failure		422		{object}	utils.Response			"Invalid payout card number"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/release/releasemoney/{id} [post]
func (h *ReleaseHandler) ReleaseMoney(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	campaignID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || campaignID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req dto.ReleaseMoneyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsLuhn(req.Account) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payout card number")
		return
	}

	campaign, err := h.releaseService.ReleaseMoney(r.Context(), campaignID, userID)
	if err != nil {
		switch {
		case errors.Is(err, releaseservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, releaseservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, releaseservice.ErrNotReleasable),
			errors.Is(err, releaseservice.ErrNothingToRelease):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignResponse(campaign))
}
