package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/datarium/datarium/internal/common"
	"github.com/datarium/datarium/internal/logging"
	"github.com/datarium/datarium/internal/storage/kv"
)

// SessionSource yields the active user's id; the identity store satisfies
// this.
type SessionSource interface {
	CurrentUserID() (string, bool)
}

// Store persists questionnaire answers, partitioned per user id like the
// asset and event partitions.
type Store struct {
	repo     kv.Repository
	sessions SessionSource
	log      logging.Logger
}

func NewStore(repo kv.Repository, sessions SessionSource, log logging.Logger) *Store {
	return &Store{repo: repo, sessions: sessions, log: log}
}

// Save validates answers against the question catalog and persists them for
// the current user, replacing any previous answers.
func (s *Store) Save(ctx context.Context, answers Answers) error {
	userID, ok := s.sessions.CurrentUserID()
	if !ok {
		return common.ErrNoActiveUser
	}

	for id, value := range answers {
		q, ok := QuestionByID(id)
		if !ok {
			return fmt.Errorf("%w: unknown question %q", common.ErrValidation, id)
		}
		valid := false
		for _, opt := range q.Options {
			if opt.Value == value {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("%w: invalid answer %q for question %q", common.ErrValidation, value, id)
		}
	}

	data, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, kv.ProfileKey(userID), data); err != nil {
		s.log.Error(ctx, "failed to persist investor profile", "user_id", userID, "error", err)
		return err
	}

	s.log.Info(ctx, "investor profile saved", "user_id", userID, "answers", len(answers))
	return nil
}

// Load returns the current user's saved answers, or an empty map when the
// questionnaire has not been filled in yet.
func (s *Store) Load(ctx context.Context) (Answers, error) {
	userID, ok := s.sessions.CurrentUserID()
	if !ok {
		return nil, common.ErrNoActiveUser
	}

	data, err := s.repo.Get(ctx, kv.ProfileKey(userID))
	if err != nil {
		s.log.Error(ctx, "failed to load investor profile", "user_id", userID, "error", err)
		return nil, err
	}
	if data == nil {
		return Answers{}, nil
	}

	var answers Answers
	if err := json.Unmarshal(data, &answers); err != nil {
		s.log.Error(ctx, "failed to decode investor profile", "user_id", userID, "error", err)
		return nil, err
	}
	return answers, nil
}
