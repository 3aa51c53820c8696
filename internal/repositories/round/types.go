package round

import (
	"time"

	"github.com/KirkDiggler/sketchphone/internal/models"
)

// CreateEntriesInput contains parameters for creating round entries
type CreateEntriesInput struct {
	Entries []*models.RoundEntry
}

// GetEntryInput contains parameters for retrieving a round entry
type GetEntryInput struct {
	GameID   string
	Round    int
	PlayerID string
}

// AnswerEntryInput contains parameters for answering a round entry
type AnswerEntryInput struct {
	GameID      string
	Round       int
	PlayerID    string
	Payload     models.Payload
	SubmittedAt time.Time
}

// GetRoundEntriesInput contains parameters for retrieving a round's entries
type GetRoundEntriesInput struct {
	GameID string
	Round  int
}

// ExpireRoundsInput contains parameters for expiring a game's rounds
type ExpireRoundsInput struct {
	GameID string

	// Rounds is the number of rounds the game had
	Rounds int
	TTL    time.Duration
}

// GetRoundEntriesOutput contains the entries of a round
type GetRoundEntriesOutput struct {
	Entries []*models.RoundEntry
}
