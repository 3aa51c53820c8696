package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/sketchphone/internal/common/clock"
	"github.com/KirkDiggler/sketchphone/internal/models"
	roundRepo "github.com/KirkDiggler/sketchphone/internal/repositories/round"
)

type service struct {
	roundRepo roundRepo.Repository
	clock     clock.Clock
}

// New creates a new ledger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoundRepo == nil {
		return nil, ErrNilRoundRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		roundRepo: cfg.RoundRepo,
		clock:     cfg.Clock,
	}, nil
}

func checkRound(game *models.Game, round int) error {
	if game == nil {
		return ErrNilGame
	}
	if round < 0 || round > game.FinalRound() {
		return fmt.Errorf("%w: %d", ErrInvalidRound, round)
	}
	return nil
}

// RecordSubmission marks the player's entry for the round answered
func (s *service) RecordSubmission(ctx context.Context, input *RecordSubmissionInput) (*RecordSubmissionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := checkRound(input.Game, input.Round); err != nil {
		return nil, err
	}

	if !input.Game.HasPlayer(input.PlayerID) {
		return nil, ErrUnknownPlayer
	}

	entry, err := s.roundRepo.AnswerEntry(ctx, &roundRepo.AnswerEntryInput{
		GameID:      input.Game.ID,
		Round:       input.Round,
		PlayerID:    input.PlayerID,
		Payload:     input.Payload,
		SubmittedAt: s.clock.Now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, roundRepo.ErrEntryAnswered):
			return nil, ErrDuplicateSubmission
		case errors.Is(err, roundRepo.ErrEntryNotFound):
			return nil, ErrNotPrompted
		}
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}

	return &RecordSubmissionOutput{
		Entry: entry,
	}, nil
}

// PendingCount lists participants without an answered entry for the round
func (s *service) PendingCount(ctx context.Context, input *PendingCountInput) (*PendingCountOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := checkRound(input.Game, input.Round); err != nil {
		return nil, err
	}

	result, err := s.roundRepo.GetRoundEntries(ctx, &roundRepo.GetRoundEntriesInput{
		GameID: input.Game.ID,
		Round:  input.Round,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get round entries: %w", err)
	}

	answered := make(map[string]bool, len(result.Entries))
	for _, entry := range result.Entries {
		if entry.Answered() {
			answered[entry.PlayerID] = true
		}
	}

	pending := make([]string, 0, input.Game.PlayerCount())
	for _, playerID := range input.Game.PlayerIDs {
		if !answered[playerID] {
			pending = append(pending, playerID)
		}
	}

	return &PendingCountOutput{
		Count:     len(pending),
		PlayerIDs: pending,
	}, nil
}

// IsRoundComplete reports whether nobody is pending for the round
func (s *service) IsRoundComplete(ctx context.Context, input *IsRoundCompleteInput) (*IsRoundCompleteOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	pending, err := s.PendingCount(ctx, &PendingCountInput{
		Game:  input.Game,
		Round: input.Round,
	})
	if err != nil {
		return nil, err
	}

	return &IsRoundCompleteOutput{
		Complete: pending.Count == 0,
	}, nil
}

// IsGameComplete checks the final round, N-1
func (s *service) IsGameComplete(ctx context.Context, input *IsGameCompleteInput) (*IsGameCompleteOutput, error) {
	if input == nil || input.Game == nil {
		return nil, ErrNilGame
	}

	round, err := s.IsRoundComplete(ctx, &IsRoundCompleteInput{
		Game:  input.Game,
		Round: input.Game.FinalRound(),
	})
	if err != nil {
		return nil, err
	}

	return &IsGameCompleteOutput{
		Complete: round.Complete,
	}, nil
}
