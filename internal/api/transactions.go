package api

import (
	"encoding/json"
	"net/http"
	"time"

	"banco-api/internal/domain"
)

const dateLayout = "2006-01-02"

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var account *string
	if raw := q.Get("cuenta"); raw != "" {
		account = &raw
	}

	parseDate := func(key string) (*time.Time, bool) {
		raw := q.Get(key)
		if raw == "" {
			return nil, true
		}
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, key+" invalida, formato YYYY-MM-DD")
			return nil, false
		}
		return &d, true
	}

	from, ok := parseDate("desde")
	if !ok {
		return
	}
	to, ok := parseDate("hasta")
	if !ok {
		return
	}

	respondWithJSON(w, http.StatusOK, h.store.ListTransactions(account, from, to))
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadID)
		return
	}
	tx, err := h.store.GetTransaction(id)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tx)
}

func (h *Handler) UpdateTransactionNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadID)
		return
	}
	var req domain.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadJSON)
		return
	}
	tx, err := h.store.UpdateTransactionNote(id, req.Note)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tx)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadID)
		return
	}
	if err := h.store.DeleteTransaction(id); err != nil {
		h.respondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req domain.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadJSON)
		return
	}
	tx, err := h.store.Deposit(req.Account, req.Amount)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, tx)
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req domain.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadJSON)
		return
	}
	tx, err := h.store.Withdraw(req.Account, req.Amount)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, tx)
}

func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req domain.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, msgBadJSON)
		return
	}
	tx, err := h.store.Transfer(req.Origin, req.Destination, req.Amount)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, tx)
}
