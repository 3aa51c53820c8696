package ledger

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/sketchphone/internal/services/ledger Service

// Service records answers and decides when rounds and games are complete
type Service interface {
	// RecordSubmission stores a player's answer for a round. A second answer is rejected, never overwritten.
	RecordSubmission(ctx context.Context, input *RecordSubmissionInput) (*RecordSubmissionOutput, error)

	// IsRoundComplete reports whether every participant answered the round
	IsRoundComplete(ctx context.Context, input *IsRoundCompleteInput) (*IsRoundCompleteOutput, error)

	// IsGameComplete reports whether the final round is fully answered
	IsGameComplete(ctx context.Context, input *IsGameCompleteInput) (*IsGameCompleteOutput, error)

	// PendingCount returns the participants still owing an answer for the round
	PendingCount(ctx context.Context, input *PendingCountInput) (*PendingCountOutput, error)
}
