package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the full HTTP surface. The literal transaction subroutes
// are registered before the {id} route so /deposito, /retiro and
// /transferencia never match as ids.
func NewRouter(h *Handler, logger *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger(logger), Metrics)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/", h.Health).Methods("GET")

	r.HandleFunc("/clientes", h.ListClients).Methods("GET")
	r.HandleFunc("/clientes", h.CreateClient).Methods("POST")
	r.HandleFunc("/clientes/{id}", h.GetClient).Methods("GET")
	r.HandleFunc("/clientes/{id}", h.UpdateClient).Methods("PUT")
	r.HandleFunc("/clientes/{id}", h.DeleteClient).Methods("DELETE")

	r.HandleFunc("/cuentas", h.ListAccounts).Methods("GET")
	r.HandleFunc("/cuentas", h.CreateAccount).Methods("POST")
	r.HandleFunc("/cuentas/{numero}", h.GetAccount).Methods("GET")
	r.HandleFunc("/cuentas/{numero}", h.UpdateAccountType).Methods("PUT")
	r.HandleFunc("/cuentas/{numero}", h.DeleteAccount).Methods("DELETE")

	r.HandleFunc("/transacciones", h.ListTransactions).Methods("GET")
	r.HandleFunc("/transacciones/deposito", h.Deposit).Methods("POST")
	r.HandleFunc("/transacciones/retiro", h.Withdraw).Methods("POST")
	r.HandleFunc("/transacciones/transferencia", h.Transfer).Methods("POST")
	r.HandleFunc("/transacciones/{id}", h.GetTransaction).Methods("GET")
	r.HandleFunc("/transacciones/{id}", h.UpdateTransactionNote).Methods("PUT")
	r.HandleFunc("/transacciones/{id}", h.DeleteTransaction).Methods("DELETE")

	return r
}
