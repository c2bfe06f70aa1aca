package handler

import (
	"net/http"

	"github.com/learnhouse-dev/learnhouse/frontend/internal/middleware"
	"github.com/learnhouse-dev/learnhouse/frontend/internal/notify"
	"github.com/learnhouse-dev/learnhouse/shared/utils"
)

// GetNotifications hands the caller's notifications to the browser. Resolved
// ones are removed; loading ones are repeated until they resolve.
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r)

	notifications := h.Board.Drain(session.Owner)
	if notifications == nil {
		notifications = []notify.Notification{}
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}
