package services

import (
	"context"
	"testing"
	"time"

	"debategame/db"
	"debategame/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWithUsers(t *testing.T, usernames ...string) *db.MemoryStore {
	t.Helper()
	store := db.NewMemoryStore()
	for _, username := range usernames {
		now := time.Now()
		err := store.CreateUser(context.Background(), &models.User{
			Username:  username,
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)
	}
	return store
}

func TestCreatePrivateDebate(t *testing.T) {
	store := newStoreWithUsers(t, "alice", "bob")
	svc := NewDebateService(store, zerolog.Nop())

	debate, err := svc.CreatePrivateDebate(context.Background(), "alice", "bob", "Cats vs dogs")
	require.NoError(t, err)

	assert.Equal(t, models.DebateTypePrivate, debate.DebateType)
	assert.Equal(t, "Cats vs dogs", debate.Title)
	assert.ElementsMatch(t, []string{"alice", "bob"}, debate.Participants)
	assert.Equal(t, "alice", debate.TurnUsername)
	assert.Equal(t, "alice", debate.AuthorUsername)
	assert.NotZero(t, debate.ID)
}

func TestCreatePrivateDebateOpponentMissing(t *testing.T) {
	store := newStoreWithUsers(t, "alice")
	svc := NewDebateService(store, zerolog.Nop())

	_, err := svc.CreatePrivateDebate(context.Background(), "alice", "nobody", "Topic")
	assert.ErrorIs(t, err, ErrOpponentNotFound)
	assert.Equal(t, 0, store.DebateCount(), "failed creation must not write")
}

func TestCreatePrivateDebateAuthorMissing(t *testing.T) {
	store := newStoreWithUsers(t, "bob")
	svc := NewDebateService(store, zerolog.Nop())

	_, err := svc.CreatePrivateDebate(context.Background(), "nobody", "bob", "Topic")
	assert.ErrorIs(t, err, ErrAuthorNotFound)
	assert.Equal(t, 0, store.DebateCount())
}

func TestCreatePrivateDebateAgainstSelf(t *testing.T) {
	store := newStoreWithUsers(t, "alice")
	svc := NewDebateService(store, zerolog.Nop())

	_, err := svc.CreatePrivateDebate(context.Background(), "alice", "alice", "Topic")
	assert.ErrorIs(t, err, ErrInvalidParticipants)
	assert.Equal(t, 0, store.DebateCount())
}

func TestCreatePublicDebate(t *testing.T) {
	store := newStoreWithUsers(t, "alice")
	svc := NewDebateService(store, zerolog.Nop())

	debate, err := svc.CreatePublicDebate(context.Background(), "alice", "Open topic")
	require.NoError(t, err)

	assert.Equal(t, models.DebateTypePublic, debate.DebateType)
	assert.Equal(t, []string{"alice"}, debate.Participants)

	user, err := store.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Contains(t, user.DebateIDs, debate.ID)
}

func TestCreatePublicDebateAuthorMissing(t *testing.T) {
	store := db.NewMemoryStore()
	svc := NewDebateService(store, zerolog.Nop())

	_, err := svc.CreatePublicDebate(context.Background(), "nobody", "Open topic")
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestGetDebate(t *testing.T) {
	store := newStoreWithUsers(t, "alice", "bob")
	svc := NewDebateService(store, zerolog.Nop())

	created, err := svc.CreatePrivateDebate(context.Background(), "alice", "bob", "Topic")
	require.NoError(t, err)

	debate, err := svc.GetDebate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, debate.ID)
	assert.Empty(t, debate.Arguments)

	_, err = svc.GetDebate(context.Background(), 999)
	assert.ErrorIs(t, err, ErrDebateNotFound)
}
