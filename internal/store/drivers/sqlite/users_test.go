package sqlite

import (
	"context"
	"testing"

	"github.com/quokkahq/gatehouse/internal/domain"
	"github.com/quokkahq/gatehouse/internal/store"
	"github.com/quokkahq/gatehouse/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
	}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	byEmail, err := s.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.Equal(t, "alice", byEmail.Username)
	require.Equal(t, u.PasswordHash, byEmail.PasswordHash)
	require.False(t, byEmail.CreatedAt.IsZero())

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, byEmail.Email, byID.Email)
}

func TestGetUserNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		Email:        "dup@example.com",
		PasswordHash: "hash-a",
	}
	require.NoError(t, s.Users().CreateUser(ctx, first))

	second := domain.User{
		ID:           idx.New().String(),
		Username:     "impostor",
		Email:        "dup@example.com",
		PasswordHash: "hash-b",
	}
	require.ErrorIs(t, s.Users().CreateUser(ctx, second), store.ErrAlreadyExists)

	// The original record is untouched.
	got, err := s.Users().GetUserByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)

	users, err := s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestListUsersOrdering(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	users, err := s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, s.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Username:     name,
			Email:        name + "@example.com",
			PasswordHash: "h",
		}))
	}

	users, err = s.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "a", users[0].Username)
	require.Equal(t, "c", users[2].Username)
}
