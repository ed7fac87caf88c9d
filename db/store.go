package db

import (
	"context"
	"errors"

	"debategame/models"
)

var (
	// ErrNotFound is returned when the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when creating an entity whose identity is taken.
	ErrDuplicate = errors.New("already exists")
	// ErrStaleTurn is returned when a turn advancement lost a race: the
	// debate's current-turn holder no longer matches the expected one.
	ErrStaleTurn = errors.New("stale turn holder")
)

// Store is the record-store surface the debate workflow runs against.
// FindDebateByID returns the full graph with arguments embedded.
type Store interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	CreateDebate(ctx context.Context, debate *models.Debate) error
	FindDebateByID(ctx context.Context, id int64) (*models.Debate, error)

	CreateArgument(ctx context.Context, argument *models.Argument) error
	LinkArgumentToDebate(ctx context.Context, debateID, argumentID int64) error
	LinkArgumentToUser(ctx context.Context, username string, argumentID int64) error
	LinkDebateToUser(ctx context.Context, username string, debateID int64) error

	// AdvanceDebateTurn moves the turn holder from `from` to `to` only if
	// `from` still holds the turn. A lost race yields ErrStaleTurn.
	AdvanceDebateTurn(ctx context.Context, debateID int64, from, to string) error

	AttachArgumentScore(ctx context.Context, argumentID int64, score int) error
}
