package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"banco-api/internal/domain"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// seedAccount creates a client and a savings account, optionally funded
// through a deposit so the ledger stays consistent with the balance.
func seedAccount(t *testing.T, s *Store, email string, balance int64) domain.Account {
	t.Helper()
	c, err := s.CreateClient("Titular "+email, email)
	require.NoError(t, err)
	a, err := s.CreateAccount(c.ID, domain.AccountSavings)
	require.NoError(t, err)
	if balance > 0 {
		_, err = s.Deposit(a.Number, dec(balance))
		require.NoError(t, err)
		a, err = s.GetAccount(a.Number)
		require.NoError(t, err)
	}
	return a
}
