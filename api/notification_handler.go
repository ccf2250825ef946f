package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taskdeck-app/taskdeck/backend/database"
	"github.com/taskdeck-app/taskdeck/backend/errs"
)

// The notification inbox is independent of the mutation pipeline; no wire
// contract connects them.
type notificationHandler struct {
	responder        Responder
	logger           zerolog.Logger
	notificationRepo *database.NotificationRepo
}

func newNotificationHandler(notificationRepo *database.NotificationRepo) notificationHandler {
	logger := log.With().Str("handlerName", "notificationHandler").Logger()

	return notificationHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		notificationRepo: notificationRepo,
	}
}

// getNotifications lists the acting user's notifications
func (h notificationHandler) getNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		notifications, err := h.notificationRepo.FindAllByUser(r.Context(), userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find notifications", "notifications", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"notifications": notifications,
			"total":         len(notifications),
		})
	}
}

// markNotificationRead flags one notification as read
func (h notificationHandler) markNotificationRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notificationID, err := uuid.Parse(chi.URLParam(r, "notificationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid notificationID"))
			return
		}

		notification, err := h.notificationRepo.FindByID(r.Context(), notificationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find notification", "notification", err))
			return
		}
		if notification == nil {
			h.responder.WriteError(w, errs.NewNotFound("notification"))
			return
		}

		if err := h.notificationRepo.MarkRead(r.Context(), notificationID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update notification", "notification", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
