package handler

import (
	"net/http"

	"github.com/learnhouse-dev/learnhouse/frontend/internal/apiclient"
	"github.com/learnhouse-dev/learnhouse/frontend/internal/middleware"
	"github.com/learnhouse-dev/learnhouse/frontend/internal/notify"
	"github.com/learnhouse-dev/learnhouse/shared/utils"
)

type Handler struct {
	APIClient *apiclient.APIClient
	Board     *notify.Board
}

func New(apiClient *apiclient.APIClient, board *notify.Board) *Handler {
	return &Handler{
		APIClient: apiClient,
		Board:     board,
	}
}

// MutationResponse is returned by every state-changing route. Data is null
// when the backend call failed; the notifications say what happened.
type MutationResponse struct {
	Data          any                   `json:"data"`
	Notifications []notify.Notification `json:"notifications"`
}

// clientFor binds the api client to the caller's notifications.
func (h *Handler) clientFor(session *middleware.Session) *apiclient.APIClient {
	return h.APIClient.WithNotifier(h.Board.For(session.Owner))
}

func (h *Handler) writeMutation(w http.ResponseWriter, session *middleware.Session, data any) {
	notifications := h.Board.Drain(session.Owner)
	if notifications == nil {
		notifications = []notify.Notification{}
	}
	utils.WriteJSON(w, http.StatusOK, MutationResponse{Data: data, Notifications: notifications})
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
