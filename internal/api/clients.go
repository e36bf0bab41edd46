package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"banco-api/internal/domain"
)

const (
	msgBadJSON = "cuerpo JSON invalido"
	msgBadID   = "id invalido"
)

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.ListClients())
}

func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadID)
		return
	}
	client, err := h.store.GetClient(id)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, client)
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadJSON)
		return
	}
	client, err := h.store.CreateClient(req.Name, req.Email)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, client)
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadID)
		return
	}
	var req domain.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadJSON)
		return
	}
	client, err := h.store.UpdateClient(id, req.Name, req.Email)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, client)
}

func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadID)
		return
	}
	if err := h.store.DeleteClient(id); err != nil {
		h.respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
