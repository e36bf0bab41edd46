package domain

import "errors"

// Domain errors raised at the point of detection. The HTTP layer maps each
// group to a status code: absent entities to 404, business-rule violations
// to 409, malformed input to 422.
var (
	ErrClientNotFound      = errors.New("cliente no encontrado")
	ErrAccountNotFound     = errors.New("cuenta no encontrada")
	ErrTransactionNotFound = errors.New("transaccion no encontrada")

	ErrEmailTaken        = errors.New("email ya registrado")
	ErrClientHasAccounts = errors.New("el cliente tiene cuentas asociadas")
	ErrBalanceNotZero    = errors.New("la cuenta tiene saldo distinto de cero")
	ErrInsufficientFunds = errors.New("fondos insuficientes")

	ErrInvalidAmount      = errors.New("el monto debe ser mayor que cero")
	ErrSameAccount        = errors.New("cuenta origen y destino no pueden ser iguales")
	ErrInvalidAccountType = errors.New("tipo de cuenta invalido")
	ErrInvalidEmail       = errors.New("formato de email invalido")
	ErrEmptyName          = errors.New("el nombre es obligatorio")
	ErrInvalidNote        = errors.New("la nota debe tener entre 1 y 200 caracteres")
)
