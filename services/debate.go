package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"debategame/db"
	"debategame/models"

	"github.com/rs/zerolog"
)

// DebateService is the turn engine: it owns debate lifecycle, participant
// validation, and the initial turn assignment.
type DebateService struct {
	store  db.Store
	logger zerolog.Logger
}

func NewDebateService(store db.Store, logger zerolog.Logger) *DebateService {
	return &DebateService{store: store, logger: logger}
}

// CreatePrivateDebate opens a strictly alternating two-party debate. Both
// parties must already exist; the author holds the first turn.
func (s *DebateService) CreatePrivateDebate(ctx context.Context, authorUsername, opponentUsername, title string) (*models.Debate, error) {
	if authorUsername == opponentUsername {
		return nil, ErrInvalidParticipants
	}

	author, err := s.store.FindUserByUsername(ctx, authorUsername)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.logger.Warn().Str("username", authorUsername).Msg("debate author not found")
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to query author: %w", err)
	}

	opponent, err := s.store.FindUserByUsername(ctx, opponentUsername)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.logger.Warn().Str("username", opponentUsername).Msg("debate opponent not found")
			return nil, ErrOpponentNotFound
		}
		return nil, fmt.Errorf("failed to query opponent: %w", err)
	}

	now := time.Now()
	debate := &models.Debate{
		Title:          title,
		DebateType:     models.DebateTypePrivate,
		AuthorUsername: author.Username,
		TurnUsername:   author.Username,
		Participants:   []string{author.Username, opponent.Username},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.CreateDebate(ctx, debate); err != nil {
		return nil, fmt.Errorf("failed to create debate: %w", err)
	}

	s.logger.Info().
		Int64("debateId", debate.ID).
		Str("author", author.Username).
		Str("opponent", opponent.Username).
		Msg("private debate created")
	return debate, nil
}

// CreatePublicDebate opens an open debate with the author as the only
// initial participant. Turn state exists but is never enforced.
func (s *DebateService) CreatePublicDebate(ctx context.Context, authorUsername, title string) (*models.Debate, error) {
	author, err := s.store.FindUserByUsername(ctx, authorUsername)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to query author: %w", err)
	}

	now := time.Now()
	debate := &models.Debate{
		Title:          title,
		DebateType:     models.DebateTypePublic,
		AuthorUsername: author.Username,
		TurnUsername:   author.Username,
		Participants:   []string{author.Username},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.CreateDebate(ctx, debate); err != nil {
		return nil, fmt.Errorf("failed to create debate: %w", err)
	}

	if err := s.store.LinkDebateToUser(ctx, author.Username, debate.ID); err != nil {
		// The debate exists but is missing from the author's collection.
		// Same no-rollback policy as argument links.
		s.logger.Error().Err(err).Int64("debateId", debate.ID).Msg("failed to link debate to author")
		return nil, fmt.Errorf("failed to link debate to author: %w", err)
	}

	s.logger.Info().
		Int64("debateId", debate.ID).
		Str("author", author.Username).
		Msg("public debate created")
	return debate, nil
}

// GetDebate returns the full debate graph with its arguments embedded.
func (s *DebateService) GetDebate(ctx context.Context, id int64) (*models.Debate, error) {
	debate, err := s.store.FindDebateByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrDebateNotFound
		}
		return nil, fmt.Errorf("failed to query debate: %w", err)
	}
	return debate, nil
}
