package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"debategame/db"
	"debategame/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJudge struct {
	score        int
	err          error
	calls        int
	lastPrevious string
}

func (j *stubJudge) ScoreArgument(_ context.Context, _, previous string) (int, error) {
	j.calls++
	j.lastPrevious = previous
	if j.err != nil {
		return 0, j.err
	}
	return j.score, nil
}

// staleTurnStore simulates losing the turn-advancement race.
type staleTurnStore struct {
	db.Store
}

func (s *staleTurnStore) AdvanceDebateTurn(context.Context, int64, string, string) error {
	return db.ErrStaleTurn
}

func newPrivateDebate(t *testing.T, store *db.MemoryStore, author, opponent string) *models.Debate {
	t.Helper()
	debate, err := NewDebateService(store, zerolog.Nop()).
		CreatePrivateDebate(context.Background(), author, opponent, "Topic")
	require.NoError(t, err)
	return debate
}

func TestSubmitPrivateArgumentOutOfTurn(t *testing.T) {
	store := newStoreWithUsers(t, "alice", "bob")
	debate := newPrivateDebate(t, store, "alice", "bob")
	svc := NewArgumentService(store, nil, zerolog.Nop())

	_, err := svc.SubmitPrivateArgument(context.Background(), debate.ID, "first", "bob")
	assert.ErrorIs(t, err, ErrNotYourTurn)
	assert.Equal(t, 0, store.ArgumentCount())
}

func TestSubmitPrivateArgumentAdvancesTurn(t *testing.T) {
	store := newStoreWithUsers(t, "alice", "bob")
	debate := newPrivateDebate(t, store, "alice", "bob")
	svc := NewArgumentService(store, nil, zerolog.Nop())

	argument, err := svc.SubmitPrivateArgument(context.Background(), debate.ID, "first", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", argument.AuthorUsername)
	assert.Equal(t, debate.ID, argument.DebateID)
	assert.Nil(t, argument.Score)

	updated, err := store.FindDebateByID(context.Background(), debate.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.TurnUsername)
	require.Len(t, updated.Arguments, 1)
	assert.Equal(t, "first", updated.Arguments[0].Content)

	user, err := store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Contains(t, user.ArgumentIDs, argument.ID)
}

func TestSubmitPrivateArgumentAlternation(t *testing.T) {
	store := newStoreWithUsers(t, "alice", "bob")
	debate := newPrivateDebate(t, store, "alice", "bob")
	svc := NewArgumentService(store, nil, zerolog.Nop())

	holders := []string{"alice", "bob"}
	for k := 0; k < 6; k++ {
		author := holders[k%2]
		_, err := svc.SubmitPrivateArgument(context.Background(), debate.ID, fmt.Sprintf("argument %d", k), author)
		require.NoError(t, err)

		updated, err := store.FindDebateByID(context.Background(), debate.ID)
		require.NoError(t, err)
		assert.Equal(t, holders[(k+1)%2], updated.TurnUsername, "holder after submission %d", k)
	}
}

func TestSubmitPrivateArgumentScenario(t *testing.T) {
	store := newStoreWithUsers(t, "alice", "bob")
	debate := newPrivateDebate(t, store, "alice", "bob")
	svc := NewArgumentService(store, nil, zerolog.Nop())

	_, err := svc.SubmitPrivateArgument(context.Background(), debate.ID, "x", "alice")
	require.NoError(t, err)

	_, err = svc.SubmitPrivateArgument(context.Background(), debate.ID, "y", "bob")
	require.NoError(t, err)

	updated, err := store.FindDebateByID(context.Background(), debate.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", updated.TurnUsername)

	// Simulate an out-of-order client retry: bob posts again off-turn.
	_, err = svc.SubmitPrivateArgument(context.Background(), debate.ID, "z", "bob")
	assert.ErrorIs(t, err, ErrNotYourTurn)
}

func TestSubmitPrivateArgumentDebateMissing(t *testing.T) {
	store := newStoreWithUsers(t, "alice")
	svc := NewArgumentService(store, nil, zerolog.Nop())

	_, err := svc.SubmitPrivateArgument(context.Background(), 42, "first", "alice")
	assert.ErrorIs(t, err, ErrDebateNotFound)
	assert.Equal(t, 0, store.ArgumentCount())
}

func TestSubmitPrivateArgumentTurnConflict(t *testing.T) {
	store := newStoreWithUsers(t, "alice", "bob")
	debate := newPrivateDebate(t, store, "alice", "bob")
	svc := NewArgumentService(&staleTurnStore{Store: store}, nil, zerolog.Nop())

	_, err := svc.SubmitPrivateArgument(context.Background(), debate.ID, "first", "alice")
	assert.ErrorIs(t, err, ErrTurnConflict)
}

func TestSubmitPrivateArgumentRejectsBadParticipantSet(t *testing.T) {
	store := newStoreWithUsers(t, "alice")
	debate := models.Debate{
		Title:          "broken",
		DebateType:     models.DebateTypePrivate,
		AuthorUsername: "alice",
		TurnUsername:   "alice",
		Participants:   []string{"alice", "bob", "carol"},
	}
	require.NoError(t, store.CreateDebate(context.Background(), &debate))
	svc := NewArgumentService(store, nil, zerolog.Nop())

	_, err := svc.SubmitPrivateArgument(context.Background(), debate.ID, "first", "alice")
	assert.ErrorIs(t, err, ErrInvalidParticipants)
	assert.Equal(t, 0, store.ArgumentCount())
}

func TestSubmitPrivateArgumentAttachesScore(t *testing.T) {
	store := newStoreWithUsers(t, "alice", "bob")
	debate := newPrivateDebate(t, store, "alice", "bob")
	judge := &stubJudge{score: 87}
	svc := NewArgumentService(store, judge, zerolog.Nop())

	argument, err := svc.SubmitPrivateArgument(context.Background(), debate.ID, "opener", "alice")
	require.NoError(t, err)
	require.NotNil(t, argument.Score)
	assert.Equal(t, 87, *argument.Score)
	assert.Equal(t, "", judge.lastPrevious, "opener has no previous argument")

	_, err = svc.SubmitPrivateArgument(context.Background(), debate.ID, "rebuttal", "bob")
	require.NoError(t, err)
	assert.Equal(t, "opener", judge.lastPrevious)
	assert.Equal(t, 2, judge.calls)
}

func TestSubmitPrivateArgumentJudgeFailureIsNonFatal(t *testing.T) {
	store := newStoreWithUsers(t, "alice", "bob")
	debate := newPrivateDebate(t, store, "alice", "bob")
	judge := &stubJudge{err: errors.New("model timeout")}
	svc := NewArgumentService(store, judge, zerolog.Nop())

	argument, err := svc.SubmitPrivateArgument(context.Background(), debate.ID, "opener", "alice")
	require.NoError(t, err)
	assert.Nil(t, argument.Score)

	updated, err := store.FindDebateByID(context.Background(), debate.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", updated.TurnUsername, "turn still advances when scoring fails")
}

func TestSubmitPublicArgumentIgnoresTurnState(t *testing.T) {
	store := newStoreWithUsers(t, "alice", "bob")
	debateSvc := NewDebateService(store, zerolog.Nop())
	debate, err := debateSvc.CreatePublicDebate(context.Background(), "alice", "Open topic")
	require.NoError(t, err)

	svc := NewArgumentService(store, nil, zerolog.Nop())

	// bob never held the turn and is not even a participant; public debates
	// accept submissions from any existing user in any order.
	for _, author := range []string{"bob", "bob", "alice"} {
		_, err := svc.SubmitPublicArgument(context.Background(), debate.ID, "point", author)
		require.NoError(t, err)
	}

	updated, err := store.FindDebateByID(context.Background(), debate.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.TurnUsername, "turn field untouched")
	assert.Len(t, updated.Arguments, 3)
}

func TestSubmitPublicArgumentDebateMissing(t *testing.T) {
	store := newStoreWithUsers(t, "alice")
	svc := NewArgumentService(store, nil, zerolog.Nop())

	_, err := svc.SubmitPublicArgument(context.Background(), 42, "point", "alice")
	assert.ErrorIs(t, err, ErrDebateNotFound)
	assert.Equal(t, 0, store.ArgumentCount())
}
