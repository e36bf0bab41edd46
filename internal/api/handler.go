package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"banco-api/internal/domain"
	"banco-api/internal/store"
)

// Handler carries the registries and logger into the route handlers.
type Handler struct {
	store  *store.Store
	logger *logrus.Logger
}

func NewHandler(s *store.Store, logger *logrus.Logger) *Handler {
	return &Handler{store: s, logger: logger}
}

// Health answers the root healthcheck.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "msg": "API Banco corriendo"})
}

// statusFor maps a domain error to its HTTP status: absent entities to 404,
// business-rule conflicts to 409, malformed input to 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrClientHasAccounts),
		errors.Is(err, domain.ErrBalanceNotZero),
		errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrSameAccount),
		errors.Is(err, domain.ErrInvalidAccountType),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidNote):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// respondDomainError translates a registry error into the uniform error
// body. Anything outside the domain taxonomy surfaces as a 500 and gets
// logged.
func (h *Handler) respondDomainError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		h.logger.WithError(err).Error("unhandled domain error")
	}
	respondWithError(w, code, err.Error())
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}
