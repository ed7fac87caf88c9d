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

// ArgumentService is the submission pipeline: it validates a submission
// against turn state, persists the argument and its links, invokes the
// judge, and advances the turn. Later steps never roll back earlier ones:
// an argument that was created but not fully linked stays behind as a
// harmless orphan.
type ArgumentService struct {
	store  db.Store
	judge  Judge
	logger zerolog.Logger
}

func NewArgumentService(store db.Store, judge Judge, logger zerolog.Logger) *ArgumentService {
	return &ArgumentService{store: store, judge: judge, logger: logger}
}

// SubmitPrivateArgument accepts an argument only from the current turn
// holder and hands the turn to the other participant. The advancement is a
// compare-and-swap against the holder read at step one, so a concurrent
// submission that won the race surfaces as ErrTurnConflict.
func (s *ArgumentService) SubmitPrivateArgument(ctx context.Context, debateID int64, content, authorUsername string) (*models.Argument, error) {
	debate, err := s.store.FindDebateByID(ctx, debateID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrDebateNotFound
		}
		return nil, fmt.Errorf("failed to query debate: %w", err)
	}

	if debate.TurnUsername != authorUsername {
		s.logger.Warn().
			Int64("debateId", debateID).
			Str("author", authorUsername).
			Str("turn", debate.TurnUsername).
			Msg("submission out of turn")
		return nil, ErrNotYourTurn
	}

	// Turn advancement picks "the participant who is not the holder",
	// which is only well defined for exactly two participants.
	if len(debate.Participants) != 2 {
		return nil, ErrInvalidParticipants
	}
	next, ok := debate.OtherParticipant(debate.TurnUsername)
	if !ok {
		return nil, ErrInvalidParticipants
	}

	argument, err := s.createAndLink(ctx, debate, content, authorUsername)
	if err != nil {
		return nil, err
	}

	if err := s.store.AdvanceDebateTurn(ctx, debateID, debate.TurnUsername, next); err != nil {
		switch {
		case errors.Is(err, db.ErrStaleTurn):
			return nil, ErrTurnConflict
		case errors.Is(err, db.ErrNotFound):
			return nil, fmt.Errorf("debate %d vanished before turn advancement: %w", debateID, err)
		default:
			return nil, fmt.Errorf("failed to advance turn: %w", err)
		}
	}

	s.scoreArgument(ctx, argument, lastArgumentContent(debate))

	s.logger.Info().
		Int64("debateId", debateID).
		Int64("argumentId", argument.ID).
		Str("author", authorUsername).
		Str("nextTurn", next).
		Msg("argument accepted")
	return argument, nil
}

// SubmitPublicArgument persists an argument with no turn check and no turn
// advancement: public debates are open to concurrent submissions.
func (s *ArgumentService) SubmitPublicArgument(ctx context.Context, debateID int64, content, authorUsername string) (*models.Argument, error) {
	debate, err := s.store.FindDebateByID(ctx, debateID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrDebateNotFound
		}
		return nil, fmt.Errorf("failed to query debate: %w", err)
	}

	argument, err := s.createAndLink(ctx, debate, content, authorUsername)
	if err != nil {
		return nil, err
	}

	s.scoreArgument(ctx, argument, lastArgumentContent(debate))

	s.logger.Info().
		Int64("debateId", debateID).
		Int64("argumentId", argument.ID).
		Str("author", authorUsername).
		Msg("public argument accepted")
	return argument, nil
}

// createAndLink persists the argument and connects it to the debate and the
// author. A failure after creation leaves the argument unlinked.
func (s *ArgumentService) createAndLink(ctx context.Context, debate *models.Debate, content, authorUsername string) (*models.Argument, error) {
	now := time.Now()
	argument := &models.Argument{
		DebateID:       debate.ID,
		AuthorUsername: authorUsername,
		Content:        content,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.CreateArgument(ctx, argument); err != nil {
		return nil, fmt.Errorf("failed to create argument: %w", err)
	}

	if err := s.store.LinkArgumentToDebate(ctx, debate.ID, argument.ID); err != nil {
		s.logger.Error().Err(err).Int64("argumentId", argument.ID).Msg("failed to link argument to debate")
		return nil, fmt.Errorf("failed to link argument to debate: %w", err)
	}

	if err := s.store.LinkArgumentToUser(ctx, authorUsername, argument.ID); err != nil {
		s.logger.Error().Err(err).Int64("argumentId", argument.ID).Msg("failed to link argument to user")
		return nil, fmt.Errorf("failed to link argument to user: %w", err)
	}

	return argument, nil
}

// scoreArgument asks the judge for a score and attaches it. Scoring is best
// effort: any failure is logged and the submission stands without a score.
func (s *ArgumentService) scoreArgument(ctx context.Context, argument *models.Argument, previous string) {
	if s.judge == nil {
		s.logger.Debug().Int64("argumentId", argument.ID).Msg("no judge configured, skipping scoring")
		return
	}

	score, err := s.judge.ScoreArgument(ctx, argument.Content, previous)
	if err != nil {
		s.logger.Warn().Err(err).Int64("argumentId", argument.ID).Msg("scoring unavailable")
		return
	}

	if err := s.store.AttachArgumentScore(ctx, argument.ID, score); err != nil {
		s.logger.Warn().Err(err).Int64("argumentId", argument.ID).Msg("failed to attach score")
		return
	}
	argument.Score = &score
}

// lastArgumentContent returns the content of the most recent argument in
// the graph read at the start of the submission, or "" for the opener.
func lastArgumentContent(debate *models.Debate) string {
	if len(debate.Arguments) == 0 {
		return ""
	}
	return debate.Arguments[len(debate.Arguments)-1].Content
}
