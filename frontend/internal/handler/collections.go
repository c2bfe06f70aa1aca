package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/learnhouse-dev/learnhouse/frontend/internal/middleware"
	"github.com/learnhouse-dev/learnhouse/shared/api"
	"github.com/learnhouse-dev/learnhouse/shared/logger"
	"github.com/learnhouse-dev/learnhouse/shared/utils"
)

func (h *Handler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r)

	var body api.CreateCollectionRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	collection := h.clientFor(session).CreateCollection(r.Context(), body, session.Token)
	h.writeMutation(w, session, collection)
}

func (h *Handler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r)
	collectionUUID := chi.URLParam(r, "collectionUUID")

	result := h.clientFor(session).DeleteCollection(r.Context(), collectionUUID, session.Token)
	h.writeMutation(w, session, result)
}

func (h *Handler) GetCollection(w http.ResponseWriter, r *http.Request) {
	collectionUUID := chi.URLParam(r, "collectionUUID")

	collection, err := h.APIClient.GetCollectionByID(r.Context(), collectionUUID, middleware.Token(r), nil)
	if err != nil {
		logger.Log.Error("getting collection from API", "collection_uuid", collectionUUID, "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, collection)
}

func (h *Handler) GetOrgCollections(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgID")

	collections, err := h.APIClient.GetOrgCollections(r.Context(), orgID, middleware.Token(r), nil)
	if err != nil {
		logger.Log.Error("getting org collections from API", "org_id", orgID, "error", err)
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, collections)
}
