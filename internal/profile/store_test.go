package profile

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/datarium/datarium/internal/common"
	"github.com/datarium/datarium/internal/logging"
	"github.com/datarium/datarium/internal/storage/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

type fakeSessions struct {
	userID string
}

func (f *fakeSessions) CurrentUserID() (string, bool) {
	if f.userID == "" {
		return "", false
	}
	return f.userID, true
}

func newTestStore(t *testing.T) (*Store, *fakeSessions) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)

	sessions := &fakeSessions{userID: "u1"}
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	return NewStore(kv.NewSQLiteRepository(db), sessions, log), sessions
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	answers := Answers{
		"experience": "some",
		"risk":       "avoid",
		"objective":  "income",
	}
	require.NoError(t, s.Save(ctx, answers))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, answers, loaded)
}

func TestSave_ReplacesPreviousAnswers(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Answers{"risk": "avoid", "esgInterest": "yes"}))
	require.NoError(t, s.Save(ctx, Answers{"risk": "high"}))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Answers{"risk": "high"}, loaded)
}

func TestSave_RejectsUnknownQuestion(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.Save(context.Background(), Answers{"shoeSize": "42"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestSave_RejectsUnknownOption(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.Save(context.Background(), Answers{"risk": "reckless"})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestSaveLoad_RequireActiveUser(t *testing.T) {
	s, sessions := newTestStore(t)
	sessions.userID = ""
	ctx := context.Background()

	err := s.Save(ctx, Answers{"risk": "avoid"})
	assert.ErrorIs(t, err, common.ErrNoActiveUser)

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, common.ErrNoActiveUser)
}

func TestLoad_EmptyWhenNeverSaved(t *testing.T) {
	s, _ := newTestStore(t)

	answers, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestProfiles_PartitionedPerUser(t *testing.T) {
	s, sessions := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, Answers{"risk": "avoid"}))

	sessions.userID = "u2"
	answers, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, answers)

	sessions.userID = "u1"
	answers, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Answers{"risk": "avoid"}, answers)
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID("risk")
	require.True(t, ok)
	assert.Len(t, q.Options, 3)

	_, ok = QuestionByID("missing")
	assert.False(t, ok)
}
