package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"banco-api/internal/domain"
)

func TestCreateClient_AssignsSequentialIDs(t *testing.T) {
	s := New()
	a, err := s.CreateClient("Ana", "ana@e.com")
	require.NoError(t, err)
	b, err := s.CreateClient("Beto", "beto@e.com")
	require.NoError(t, err)
	require.Equal(t, 1, a.ID)
	require.Equal(t, 2, b.ID)
}

func TestCreateClient_RejectsDuplicateEmail(t *testing.T) {
	s := New()
	_, err := s.CreateClient("Ana", "ana@e.com")
	require.NoError(t, err)

	_, err = s.CreateClient("Otra Ana", "ana@e.com")
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	// Uniqueness is an exact, case-sensitive match.
	_, err = s.CreateClient("Ana Mayus", "Ana@e.com")
	require.NoError(t, err)
}

func TestCreateClient_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cName   string
		email   string
		wantErr error
	}{
		{"empty name", "", "x@e.com", domain.ErrEmptyName},
		{"blank name", "   ", "x@e.com", domain.ErrEmptyName},
		{"no at sign", "X", "xe.com", domain.ErrInvalidEmail},
		{"no domain", "X", "x@", domain.ErrInvalidEmail},
		{"no tld", "X", "x@e", domain.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			_, err := s.CreateClient(tt.cName, tt.email)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateClient_PartialFields(t *testing.T) {
	s := New()
	c, err := s.CreateClient("Ana", "ana@e.com")
	require.NoError(t, err)

	name := "Ana Maria"
	got, err := s.UpdateClient(c.ID, &name, nil)
	require.NoError(t, err)
	require.Equal(t, "Ana Maria", got.Name)
	require.Equal(t, "ana@e.com", got.Email)

	email := "ana.maria@e.com"
	got, err = s.UpdateClient(c.ID, nil, &email)
	require.NoError(t, err)
	require.Equal(t, "Ana Maria", got.Name)
	require.Equal(t, "ana.maria@e.com", got.Email)
}

func TestUpdateClient_EmailRules(t *testing.T) {
	s := New()
	a, err := s.CreateClient("Ana", "ana@e.com")
	require.NoError(t, err)
	_, err = s.CreateClient("Beto", "beto@e.com")
	require.NoError(t, err)

	taken := "beto@e.com"
	_, err = s.UpdateClient(a.ID, nil, &taken)
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	// Re-submitting the client's own email is not a conflict.
	own := "ana@e.com"
	_, err = s.UpdateClient(a.ID, nil, &own)
	require.NoError(t, err)

	bad := "not-an-email"
	_, err = s.UpdateClient(a.ID, nil, &bad)
	require.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestUpdateClient_NotFound(t *testing.T) {
	s := New()
	name := "X"
	_, err := s.UpdateClient(42, &name, nil)
	require.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestDeleteClient_Rules(t *testing.T) {
	s := New()
	c, err := s.CreateClient("Ana", "ana@e.com")
	require.NoError(t, err)
	a, err := s.CreateAccount(c.ID, domain.AccountChecking)
	require.NoError(t, err)

	// Referenced by an account: always a conflict.
	require.ErrorIs(t, s.DeleteClient(c.ID), domain.ErrClientHasAccounts)

	// Free the account (zero balance), then deletion succeeds.
	require.NoError(t, s.DeleteAccount(a.Number))
	require.NoError(t, s.DeleteClient(c.ID))

	_, err = s.GetClient(c.ID)
	require.ErrorIs(t, err, domain.ErrClientNotFound)
	require.ErrorIs(t, s.DeleteClient(c.ID), domain.ErrClientNotFound)

	// Ids are never reused after deletion.
	next, err := s.CreateClient("Beto", "beto@e.com")
	require.NoError(t, err)
	require.Equal(t, 2, next.ID)
}

func TestListClients_CreationOrder(t *testing.T) {
	s := New()
	require.Empty(t, s.ListClients())

	_, err := s.CreateClient("Ana", "ana@e.com")
	require.NoError(t, err)
	_, err = s.CreateClient("Beto", "beto@e.com")
	require.NoError(t, err)

	got := s.ListClients()
	require.Len(t, got, 2)
	require.Equal(t, "Ana", got[0].Name)
	require.Equal(t, "Beto", got[1].Name)
}
