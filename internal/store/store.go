// Package store holds the three in-memory registries: clients, accounts and
// the transaction ledger. State lives for the process lifetime only.
package store

import (
	"sync"
	"time"

	"banco-api/internal/domain"
)

// Store owns the collections and their id counters. A single mutex
// serializes every check-then-mutate sequence, so cross-registry rules
// (client delete vs. account create, transfer vs. concurrent withdraw) hold
// under concurrent requests. Counters only ever advance; ids and account
// numbers are never reused, even after deletes.
type Store struct {
	mu sync.RWMutex

	clients   []*domain.Client
	clientSeq int

	accounts   []*domain.Account
	accountSeq int

	transactions []*domain.Transaction
	txSeq        int

	now func() time.Time
}

// New returns an empty Store ready for use.
func New() *Store {
	return &Store{now: time.Now}
}

// Lookup helpers. Callers must hold s.mu.

func (s *Store) findClient(id int) (int, *domain.Client) {
	for i, c := range s.clients {
		if c.ID == id {
			return i, c
		}
	}
	return -1, nil
}

func (s *Store) findAccount(number string) (int, *domain.Account) {
	for i, a := range s.accounts {
		if a.Number == number {
			return i, a
		}
	}
	return -1, nil
}

func (s *Store) findTransaction(id int) (int, *domain.Transaction) {
	for i, t := range s.transactions {
		if t.ID == id {
			return i, t
		}
	}
	return -1, nil
}
