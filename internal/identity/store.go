// Package identity implements the identity store: the registered-user table
// and the single active session. It is a leaf component; the portfolio ledger
// and the investor-profile store only consult it for the current partition
// key.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/datarium/datarium/internal/common"
	"github.com/datarium/datarium/internal/logging"
	"github.com/datarium/datarium/internal/models"
	"github.com/datarium/datarium/internal/storage/kv"
	"github.com/google/uuid"
)

// Store manages the registered-user table and the active session. The
// session lives on the Store instance, not in package state, and is
// persisted so it survives a restart.
//
// Contract:
//   - Register: create a user (unique username) and sign it in.
//   - SignIn: exact case-sensitive credential match, cosmetic fixed delay.
//   - SignOut: clear the session; idempotent.
//   - Restore: reload the persisted session on startup.
//   - Current/CurrentUserID: read-only accessors for collaborators.
//
// Storage failures are logged and returned as wrapped errors; the operation
// leaves prior state untouched.
type Store struct {
	repo        kv.Repository
	log         logging.Logger
	signInDelay time.Duration

	mu      sync.Mutex
	session *models.Session
}

// NewStore constructs a Store. signInDelay is applied to every sign-in
// attempt to mimic a network round trip; pass 0 to disable (tests).
func NewStore(repo kv.Repository, log logging.Logger, signInDelay time.Duration) *Store {
	return &Store{repo: repo, log: log, signInDelay: signInDelay}
}

// Restore loads the persisted session, if any. Called once on startup.
func (s *Store) Restore(ctx context.Context) error {
	data, err := s.repo.Get(ctx, kv.KeySession)
	if err != nil {
		s.log.Error(ctx, "failed to load persisted session", "error", err)
		return err
	}
	if data == nil {
		return nil
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		s.log.Error(ctx, "failed to decode persisted session", "error", err)
		return err
	}

	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()
	return nil
}

// Register creates a new user and signs it in. It fails with
// common.ErrDuplicateUser when the username is already taken and with
// common.ErrValidation on empty input; neither leaves any state behind.
func (s *Store) Register(ctx context.Context, username, password string) (*models.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == username {
			s.log.Warn(ctx, "registration attempt for existing username", "username", username)
			return nil, common.ErrDuplicateUser
		}
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: password,
	}

	if err := s.saveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}

	session, err := s.establishSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return session, nil
}

// SignIn authenticates against the registered-user table with plain equality
// on username and password. The configured delay is applied before the
// result is produced; a failed match returns common.ErrUnauthorized with no
// side effects.
func (s *Store) SignIn(ctx context.Context, username, password string) (*models.Session, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == username && u.Password == password {
			session, err := s.establishSession(ctx, u)
			if err != nil {
				return nil, err
			}
			s.log.Info(ctx, "user signed in", "user_id", u.ID)
			return session, nil
		}
	}

	return nil, common.ErrUnauthorized
}

// SignOut clears the in-memory session and removes the persisted record.
// Signing out without an active session is a no-op.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, kv.KeySession); err != nil {
		s.log.Error(ctx, "failed to remove persisted session", "error", err)
		return err
	}
	return nil
}

// Current returns a copy of the active session, or nil when signed out.
func (s *Store) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

// CurrentUserID returns the active user's id, used by collaborators as
// their storage partition key.
func (s *Store) CurrentUserID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return "", false
	}
	return s.session.User.ID, true
}

func (s *Store) sleep(ctx context.Context) error {
	if s.signInDelay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.signInDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// establishSession derives the token, persists the session record, and only
// then swaps it into memory.
func (s *Store) establishSession(ctx context.Context, user models.User) (*models.Session, error) {
	token, err := SessionToken(user.ID)
	if err != nil {
		s.log.Error(ctx, "failed to derive session token", "error", err)
		return nil, err
	}

	session := models.Session{User: user, Token: token}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Set(ctx, kv.KeySession, data); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()

	result := session
	return &result, nil
}

func (s *Store) loadUsers(ctx context.Context) ([]models.User, error) {
	data, err := s.repo.Get(ctx, kv.KeyUsers)
	if err != nil {
		s.log.Error(ctx, "failed to load registered users", "error", err)
		return nil, err
	}
	if data == nil {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		s.log.Error(ctx, "failed to decode registered users", "error", err)
		return nil, err
	}
	return users, nil
}

func (s *Store) saveUsers(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, kv.KeyUsers, data); err != nil {
		s.log.Error(ctx, "failed to persist registered users", "error", err)
		return err
	}
	return nil
}
