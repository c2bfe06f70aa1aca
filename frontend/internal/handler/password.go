package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/learnhouse-dev/learnhouse/frontend/internal/middleware"
	"github.com/learnhouse-dev/learnhouse/shared/api"
	"github.com/learnhouse-dev/learnhouse/shared/utils"
)

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r)
	userID := chi.URLParam(r, "userID")

	var body api.UpdatePasswordRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user := h.clientFor(session).UpdatePassword(r.Context(), userID, body, session.Token)
	h.writeMutation(w, session, user)
}
