package identity

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/datarium/datarium/internal/common"
	"github.com/datarium/datarium/internal/logging"
	"github.com/datarium/datarium/internal/models"
	"github.com/datarium/datarium/internal/storage/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) kv.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)

	return kv.NewSQLiteRepository(db)
}

func newTestStore(t *testing.T) (*Store, kv.Repository) {
	t.Helper()
	repo := setupRepo(t)
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	return NewStore(repo, log, 0), repo
}

func TestRegister_CreatesUserAndSession(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	session, err := s.Register(ctx, "alice", "pass1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "alice", session.User.Username)
	assert.NotEmpty(t, session.User.ID)
	assert.NotEmpty(t, session.Token)

	// the token is derived from the new user's id
	userID, err := UserIDFromToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, userID)

	// session is active immediately
	id, ok := s.CurrentUserID()
	require.True(t, ok)
	assert.Equal(t, session.User.ID, id)

	// both records hit storage
	data, err := repo.Get(ctx, kv.KeyUsers)
	require.NoError(t, err)
	var users []models.User
	require.NoError(t, json.Unmarshal(data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "pass1", users[0].Password)

	data, err = repo.Get(ctx, kv.KeySession)
	require.NoError(t, err)
	assert.NotNil(t, data)
}

func TestRegister_DuplicateUsernameFails(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "pass1")
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, common.ErrDuplicateUser)

	// no duplicate record was created
	data, err := repo.Get(ctx, kv.KeyUsers)
	require.NoError(t, err)
	var users []models.User
	require.NoError(t, json.Unmarshal(data, &users))
	assert.Len(t, users, 1)
}

func TestRegister_EmptyInputRejected(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pass"},
		{"blank username", "   ", "pass"},
		{"empty password", "bob", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestSignIn(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "pass1")
	require.NoError(t, err)
	require.NoError(t, s.SignOut(ctx))

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.SignIn(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, common.ErrUnauthorized)
		_, ok := s.CurrentUserID()
		assert.False(t, ok)
	})

	t.Run("case sensitive username", func(t *testing.T) {
		_, err := s.SignIn(ctx, "Alice", "pass1")
		assert.ErrorIs(t, err, common.ErrUnauthorized)
	})

	t.Run("valid credentials", func(t *testing.T) {
		session, err := s.SignIn(ctx, "alice", "pass1")
		require.NoError(t, err)
		assert.Equal(t, "alice", session.User.Username)
		_, ok := s.CurrentUserID()
		assert.True(t, ok)
	})
}

func TestSignOut_Idempotent(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "pass1")
	require.NoError(t, err)

	require.NoError(t, s.SignOut(ctx))
	require.NoError(t, s.SignOut(ctx))

	assert.Nil(t, s.Current())
	data, err := repo.Get(ctx, kv.KeySession)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestRestore_SurvivesRestart(t *testing.T) {
	repo := setupRepo(t)
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	ctx := context.Background()

	s1 := NewStore(repo, log, 0)
	session, err := s1.Register(ctx, "alice", "pass1")
	require.NoError(t, err)

	// a fresh store over the same storage picks the session up
	s2 := NewStore(repo, log, 0)
	require.NoError(t, s2.Restore(ctx))

	restored := s2.Current()
	require.NotNil(t, restored)
	assert.Equal(t, session.User.ID, restored.User.ID)
	assert.Equal(t, session.Token, restored.Token)
}

func TestRestore_NoSessionIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Restore(context.Background()))
	assert.Nil(t, s.Current())
}
