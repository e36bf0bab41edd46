package store

import (
	"time"

	"github.com/shopspring/decimal"

	"banco-api/internal/domain"
)

// appendTransaction records a ledger entry. Caller must hold s.mu; the
// balance mutation and the record append happen inside the same critical
// section so no reader observes one without the other.
func (s *Store) appendTransaction(kind domain.TransactionKind, account, counter string, amount decimal.Decimal) domain.Transaction {
	s.txSeq++
	t := &domain.Transaction{
		ID:             s.txSeq,
		Kind:           kind,
		Account:        account,
		CounterAccount: counter,
		Amount:         amount,
		Timestamp:      s.now(),
	}
	s.transactions = append(s.transactions, t)
	return *t
}

// Deposit credits an account and records a DEPOSITO transaction.
func (s *Store) Deposit(account string, amount decimal.Decimal) (domain.Transaction, error) {
	if amount.Sign() <= 0 {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, a := s.findAccount(account)
	if a == nil {
		return domain.Transaction{}, domain.ErrAccountNotFound
	}
	a.Balance = a.Balance.Add(amount)
	return s.appendTransaction(domain.KindDeposit, account, "", amount), nil
}

// Withdraw debits an account and records a RETIRO transaction. The balance
// check and the debit run under the same lock, so the balance never goes
// negative.
func (s *Store) Withdraw(account string, amount decimal.Decimal) (domain.Transaction, error) {
	if amount.Sign() <= 0 {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, a := s.findAccount(account)
	if a == nil {
		return domain.Transaction{}, domain.ErrAccountNotFound
	}
	if a.Balance.LessThan(amount) {
		return domain.Transaction{}, domain.ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return s.appendTransaction(domain.KindWithdrawal, account, "", amount), nil
}

// Transfer moves funds between two distinct accounts and records a single
// TRANSFERENCIA transaction referencing both. Both balance mutations and
// the record append are one atomic unit; a failed check leaves no partial
// state.
func (s *Store) Transfer(origin, destination string, amount decimal.Decimal) (domain.Transaction, error) {
	if origin == destination {
		return domain.Transaction{}, domain.ErrSameAccount
	}
	if amount.Sign() <= 0 {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, from := s.findAccount(origin)
	if from == nil {
		return domain.Transaction{}, domain.ErrAccountNotFound
	}
	_, to := s.findAccount(destination)
	if to == nil {
		return domain.Transaction{}, domain.ErrAccountNotFound
	}
	if from.Balance.LessThan(amount) {
		return domain.Transaction{}, domain.ErrInsufficientFunds
	}
	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)
	return s.appendTransaction(domain.KindTransfer, origin, destination, amount), nil
}

// ListTransactions returns ledger entries in creation order. The account
// filter matches participation (origin or destination); from/to bound the
// calendar date of the timestamp inclusively. All supplied filters are
// AND-combined.
func (s *Store) ListTransactions(account *string, from, to *time.Time) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if account != nil && t.Account != *account && t.CounterAccount != *account {
			continue
		}
		d := dateOf(t.Timestamp)
		if from != nil && d < dateOf(*from) {
			continue
		}
		if to != nil && d > dateOf(*to) {
			continue
		}
		out = append(out, *t)
	}
	return out
}

// GetTransaction returns the ledger entry with the given id.
func (s *Store) GetTransaction(id int) (domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, t := s.findTransaction(id)
	if t == nil {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	return *t, nil
}

// UpdateTransactionNote sets the note, the only mutable transaction field.
func (s *Store) UpdateTransactionNote(id int, note string) (domain.Transaction, error) {
	if !domain.ValidNote(note) {
		return domain.Transaction{}, domain.ErrInvalidNote
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, t := s.findTransaction(id)
	if t == nil {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	t.Note = note
	return *t, nil
}

// DeleteTransaction removes the record only. The balance effect it caused
// is NOT reversed; deletion is record-keeping, not a compensating entry.
func (s *Store) DeleteTransaction(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, t := s.findTransaction(id)
	if t == nil {
		return domain.ErrTransactionNotFound
	}
	s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
	return nil
}

// dateOf reduces a timestamp to an ordered calendar-date key in the
// timestamp's own location. Comparing date keys instead of instants keeps
// the inclusive bounds correct when timestamps and filter dates carry
// different zones.
func dateOf(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
