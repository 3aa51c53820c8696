package round

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sketchphone/internal/repositories/round Repository

import (
	"context"

	"github.com/KirkDiggler/sketchphone/internal/models"
)

// Repository defines the interface for round entry persistence
type Repository interface {
	// CreateEntries stores unanswered entries for a round. Existing entries are never overwritten.
	CreateEntries(ctx context.Context, input *CreateEntriesInput) error

	// GetEntry retrieves the entry of one player for one round
	GetEntry(ctx context.Context, input *GetEntryInput) (*models.RoundEntry, error)

	// AnswerEntry records a payload on an unanswered entry
	AnswerEntry(ctx context.Context, input *AnswerEntryInput) (*models.RoundEntry, error)

	// GetRoundEntries retrieves every entry of a round, ordered by player ID
	GetRoundEntries(ctx context.Context, input *GetRoundEntriesInput) (*GetRoundEntriesOutput, error)

	// ExpireRounds sets an expiry on every round of a finished game
	ExpireRounds(ctx context.Context, input *ExpireRoundsInput) error
}
