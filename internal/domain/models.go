package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel over the wire as plain JSON numbers, matching the
	// documented payload shapes.
	decimal.MarshalJSONWithoutQuotes = true
}

// AccountType classifies an account. Values are the wire-level enum.
type AccountType string

const (
	AccountSavings  AccountType = "AHORROS"
	AccountChecking AccountType = "CORRIENTE"
	AccountCredit   AccountType = "CREDITO"
)

// ParseAccountType validates a raw type value from a body or query param.
func ParseAccountType(s string) (AccountType, error) {
	switch t := AccountType(s); t {
	case AccountSavings, AccountChecking, AccountCredit:
		return t, nil
	}
	return "", ErrInvalidAccountType
}

// TransactionKind tags the three balance-affecting operations.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "DEPOSITO"
	KindWithdrawal TransactionKind = "RETIRO"
	KindTransfer   TransactionKind = "TRANSFERENCIA"
)

// Client is a bank customer.
type Client struct {
	ID    int    `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

// Account holds a balance for exactly one client. Number is assigned by the
// registry and never reused.
type Account struct {
	Number   string          `json:"numero"`
	ClientID int             `json:"cliente_id"`
	Type     AccountType     `json:"tipo"`
	Balance  decimal.Decimal `json:"saldo"`
}

// Transaction records a deposit, withdrawal or transfer. CounterAccount is
// set only for transfers (the destination). Everything but Note is immutable
// after creation.
type Transaction struct {
	ID             int             `json:"id"`
	Kind           TransactionKind `json:"tipo"`
	Account        string          `json:"cuenta"`
	CounterAccount string          `json:"cuenta_destino,omitempty"`
	Amount         decimal.Decimal `json:"monto"`
	Timestamp      time.Time       `json:"fecha"`
	Note           string          `json:"nota,omitempty"`
}

// CreateClientRequest is the POST /clientes payload.
type CreateClientRequest struct {
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

// UpdateClientRequest is the PUT /clientes/{id} payload. Nil fields are left
// untouched.
type UpdateClientRequest struct {
	Name  *string `json:"nombre"`
	Email *string `json:"email"`
}

// CreateAccountRequest is the POST /cuentas payload.
type CreateAccountRequest struct {
	ClientID int    `json:"cliente_id"`
	Type     string `json:"tipo"`
}

// UpdateTransactionRequest is the PUT /transacciones/{id} payload.
type UpdateTransactionRequest struct {
	Note string `json:"nota"`
}

// DepositRequest is the POST /transacciones/deposito payload.
type DepositRequest struct {
	Account string          `json:"cuenta"`
	Amount  decimal.Decimal `json:"monto"`
}

// WithdrawRequest is the POST /transacciones/retiro payload.
type WithdrawRequest struct {
	Account string          `json:"cuenta"`
	Amount  decimal.Decimal `json:"monto"`
}

// TransferRequest is the POST /transacciones/transferencia payload.
type TransferRequest struct {
	Origin      string          `json:"origen"`
	Destination string          `json:"destino"`
	Amount      decimal.Decimal `json:"monto"`
}
