package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"banco-api/internal/domain"
)

// ListAccounts returns accounts in creation order. Non-nil filters are
// exact-match predicates and are AND-combined.
func (s *Store) ListAccounts(clientID *int, accType *domain.AccountType) []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		if clientID != nil && a.ClientID != *clientID {
			continue
		}
		if accType != nil && a.Type != *accType {
			continue
		}
		out = append(out, *a)
	}
	return out
}

// GetAccount returns the account with the given number.
func (s *Store) GetAccount(number string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, a := s.findAccount(number)
	if a == nil {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return *a, nil
}

// CreateAccount opens an account for an existing client with a zero balance
// and the next sequential number (ACC0001, ACC0002, ...).
func (s *Store) CreateAccount(clientID int, accType domain.AccountType) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, c := s.findClient(clientID); c == nil {
		return domain.Account{}, domain.ErrClientNotFound
	}
	s.accountSeq++
	a := &domain.Account{
		Number:   fmt.Sprintf("ACC%04d", s.accountSeq),
		ClientID: clientID,
		Type:     accType,
		Balance:  decimal.Zero,
	}
	s.accounts = append(s.accounts, a)
	return *a, nil
}

// UpdateAccountType changes the type of an existing account. Type is the
// only mutable account field.
func (s *Store) UpdateAccountType(number string, accType domain.AccountType) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, a := s.findAccount(number)
	if a == nil {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	a.Type = accType
	return *a, nil
}

// DeleteAccount removes an account. Only accounts with a zero balance can
// be deleted; the number is never reassigned.
func (s *Store) DeleteAccount(number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, a := s.findAccount(number)
	if a == nil {
		return domain.ErrAccountNotFound
	}
	if !a.Balance.IsZero() {
		return domain.ErrBalanceNotZero
	}
	s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
	return nil
}
