package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"banco-api/internal/domain"
)

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var clientID *int
	if raw := q.Get("cliente_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, "cliente_id invalido")
			return
		}
		clientID = &id
	}

	var accType *domain.AccountType
	if raw := q.Get("tipo"); raw != "" {
		t, err := domain.ParseAccountType(raw)
		if err != nil {
			h.respondDomainError(w, err)
			return
		}
		accType = &t
	}

	respondWithJSON(w, http.StatusOK, h.store.ListAccounts(clientID, accType))
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.store.GetAccount(mux.Vars(r)["numero"])
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, account)
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadJSON)
		return
	}
	accType, err := domain.ParseAccountType(req.Type)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	account, err := h.store.CreateAccount(req.ClientID, accType)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, account)
}

// UpdateAccountType takes the new type as the query parameter `tipo`, not a
// body, for compatibility with the published surface.
func (h *Handler) UpdateAccountType(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("tipo")
	if raw == "" {
		respondWithError(w, http.StatusUnprocessableEntity, "el parametro tipo es obligatorio")
		return
	}
	accType, err := domain.ParseAccountType(raw)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	account, err := h.store.UpdateAccountType(mux.Vars(r)["numero"], accType)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, account)
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAccount(mux.Vars(r)["numero"]); err != nil {
		h.respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
