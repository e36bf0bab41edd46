package store

import (
	"strings"

	"banco-api/internal/domain"
)

// ListClients returns all clients in creation order.
func (s *Store) ListClients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, *c)
	}
	return out
}

// GetClient returns the client with the given id.
func (s *Store) GetClient(id int) (domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, c := s.findClient(id)
	if c == nil {
		return domain.Client{}, domain.ErrClientNotFound
	}
	return *c, nil
}

// CreateClient registers a new client. Emails are unique across the
// registry (exact, case-sensitive match).
func (s *Store) CreateClient(name, email string) (domain.Client, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Client{}, domain.ErrEmptyName
	}
	if !domain.ValidEmail(email) {
		return domain.Client{}, domain.ErrInvalidEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		if c.Email == email {
			return domain.Client{}, domain.ErrEmailTaken
		}
	}
	s.clientSeq++
	c := &domain.Client{ID: s.clientSeq, Name: name, Email: email}
	s.clients = append(s.clients, c)
	return *c, nil
}

// UpdateClient applies a partial update. Nil fields are left untouched; a
// new email must still be well-formed and unused by any other client.
func (s *Store) UpdateClient(id int, name, email *string) (domain.Client, error) {
	if name != nil && strings.TrimSpace(*name) == "" {
		return domain.Client{}, domain.ErrEmptyName
	}
	if email != nil && !domain.ValidEmail(*email) {
		return domain.Client{}, domain.ErrInvalidEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, c := s.findClient(id)
	if c == nil {
		return domain.Client{}, domain.ErrClientNotFound
	}
	if email != nil {
		for _, other := range s.clients {
			if other.ID != id && other.Email == *email {
				return domain.Client{}, domain.ErrEmailTaken
			}
		}
		c.Email = *email
	}
	if name != nil {
		c.Name = *name
	}
	return *c, nil
}

// DeleteClient removes a client. Clients referenced by any account cannot
// be deleted.
func (s *Store) DeleteClient(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, c := s.findClient(id)
	if c == nil {
		return domain.ErrClientNotFound
	}
	for _, a := range s.accounts {
		if a.ClientID == id {
			return domain.ErrClientHasAccounts
		}
	}
	s.clients = append(s.clients[:i], s.clients[i+1:]...)
	return nil
}
