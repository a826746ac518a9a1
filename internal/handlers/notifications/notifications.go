package notifications

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akosarev/fundmart/internal/domain"
	"github.com/akosarev/fundmart/internal/dto"
	notifyservice "github.com/akosarev/fundmart/internal/service/notifyservice"
	"github.com/akosarev/fundmart/pkg/auth"
	"github.com/akosarev/fundmart/pkg/utils"
)

type Service interface {
	ListByUser(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int, userID int) error
	Delete(ctx context.Context, id int, userID int) error
}

type NotificationHandler struct {
	notifyService Service
}

func New(notifyService Service) *NotificationHandler {
	return &NotificationHandler{
		notifyService: notifyService,
	}
}

// List godoc
//
//	@Summary	Get notifications
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.NotificationResponseDTO	"Notifications"
//	@Success	204	{object}	utils.Response				"No notifications"
//	@Failure	401	{object}	utils.Response				"User not authorized"
//	@Failure	500	{object}	utils.Response				"Internal server error"
//	@Router		/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	notifications, err := h.notifyService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}
	if len(notifications) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Notifications not found")
		return
	}

	response := make([]dto.NotificationResponseDTO, len(notifications))
	for i, n := range notifications {
		response[i] = dto.NewNotificationResponse(n)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead godoc
//
//	@Summary	Mark a notification read
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int				true	"Notification id"
//	@Success	200	{object}	utils.Response	"Marked read"
//	@Failure	404	{object}	utils.Response	"Notification not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.notifyService.MarkRead(r.Context(), id, userID); err != nil {
		if errors.Is(err, notifyservice.ErrNotificationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "notification marked read"})
}

// Delete godoc
//
//	@Summary	Delete a notification
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int				true	"Notification id"
//	@Success	200	{object}	utils.Response	"Deleted"
//	@Failure	404	{object}	utils.Response	"Notification not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/notifications/{id} [delete]
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.notifyService.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, notifyservice.ErrNotificationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "notification deleted"})
}
