package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akosarev/fundmart/internal/domain"
	"github.com/akosarev/fundmart/internal/dto"
	campaignservice "github.com/akosarev/fundmart/internal/service/campaignservice"
	"github.com/akosarev/fundmart/pkg/auth"
	"github.com/akosarev/fundmart/pkg/money"
	"github.com/akosarev/fundmart/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, ownerID int, title, category string, goal int64) (*domain.Campaign, error)
	Get(ctx context.Context, id int) (*domain.Campaign, error)
	Review(ctx context.Context, id int, approve bool) (*domain.Campaign, error)
	ApplyDonation(ctx context.Context, campaignID int, userID *int, refID string, amount int64) (*domain.LedgerEntry, error)
	Reconcile(ctx context.Context, campaignID int) (bool, error)
}

type CampaignHandler struct {
	campaignService Service
}

func New(campaignService Service) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

func campaignIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// Create godoc
//
//	@Summary		Create a campaign
//	@Description	Create a new fundraising campaign in pending status.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCampaignRequestDTO	true	"Campaign payload"
//	@Success		201		{object}	dto.CampaignResponseDTO			"Created campaign"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "title is required")
		return
	}

	campaign, err := h.campaignService.Create(r.Context(), userID, req.Title, req.Category, money.FromFloat(req.Goal))
	if err != nil {
		if errors.Is(err, campaignservice.ErrInvalidGoal) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCampaignResponse(campaign))
}

// Get godoc
//
//	@Summary	Get a campaign
//	@Tags		Campaigns
//	@Produce	json
//	@Param		id	path		int						true	"Campaign id"
//	@Success	200	{object}	dto.CampaignResponseDTO	"Campaign"
//	@Failure	404	{object}	utils.Response			"Campaign not found"
//	@Failure	500	{object}	utils.Response			"Internal server error"
//	@Router		/api/campaigns/{id} [get]
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignIDParam(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	campaign, err := h.campaignService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, campaignservice.ErrCampaignNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignResponse(campaign))
}

// Review godoc
//
//	@Summary		Review a pending campaign
//	@Description	Approve or reject a pending campaign. Admin only.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Campaign id"
//	@Param			request	body		dto.ReviewCampaignRequestDTO	true	"Review decision"
//	@Success		200		{object}	dto.CampaignResponseDTO			"Reviewed campaign"
//	@Failure		400		{object}	utils.Response					"Invalid decision"
//	@Failure		404		{object}	utils.Response					"Campaign not found"
//	@Failure		409		{object}	utils.Response					"Campaign is not pending"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/campaigns/{id}/review [post]
func (h *CampaignHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignIDParam(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req dto.ReviewCampaignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Decision != domain.CampaignStatusApproved && req.Decision != domain.CampaignStatusRejected {
		utils.RespondWithError(w, http.StatusBadRequest, "decision must be approved or rejected")
		return
	}

	campaign, err := h.campaignService.Review(r.Context(), id, req.Decision == domain.CampaignStatusApproved)
	if err != nil {
		switch {
		case errors.Is(err, campaignservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, campaignservice.ErrNotReviewable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCampaignResponse(campaign))
}

// AddDonation godoc
//
//	@Summary		Record a settled donation
//	@Description	Record the outcome of an already settled payment as an approved donation ledger entry.
//	@Tags			Campaigns
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Campaign id"
//	@Param			request	body		dto.DonationRequestDTO	true	"Donation payload"
//	@Success		200		{object}	utils.Response			"Donation recorded"
//	@Failure		400		{object}	utils.Response			"Invalid amount"
//	@Failure		404		{object}	utils.Response			"Campaign not found"
//	@Failure		409		{object}	utils.Response			"Campaign not open or duplicate reference"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/campaigns/{id}/donations [post]
func (h *CampaignHandler) AddDonation(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignIDParam(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req dto.DonationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.campaignService.ApplyDonation(r.Context(), id, req.UserID, req.Ref, money.FromFloat(req.Amount))
	if err != nil {
		switch {
		case errors.Is(err, campaignservice.ErrCampaignNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, campaignservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, campaignservice.ErrCampaignNotOpen),
			errors.Is(err, campaignservice.ErrDuplicateRef):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "donation recorded"})
}

// Reconcile godoc
//
//	@Summary		Reconcile a campaign balance
//	@Description	Re-derive the raised amount from approved ledger entries and compare it with the stored balance. Admin only.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Campaign id"
//	@Success		200	{object}	map[string]bool	"Consistency result"
//	@Failure		404	{object}	utils.Response	"Campaign not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{id}/reconcile [post]
func (h *CampaignHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignIDParam(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}

	consistent, err := h.campaignService.Reconcile(r.Context(), id)
	if err != nil {
		if errors.Is(err, campaignservice.ErrCampaignNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"consistent": consistent})
}
