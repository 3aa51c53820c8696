package ledger

import (
	"github.com/KirkDiggler/sketchphone/internal/common/clock"
	"github.com/KirkDiggler/sketchphone/internal/models"
	roundRepo "github.com/KirkDiggler/sketchphone/internal/repositories/round"
)

// Config holds the dependencies of the ledger service
type Config struct {
	RoundRepo roundRepo.Repository
	Clock     clock.Clock
}

// RecordSubmissionInput contains parameters for recording an answer
type RecordSubmissionInput struct {
	Game     *models.Game
	Round    int
	PlayerID string
	Payload  models.Payload
}

// RecordSubmissionOutput contains the answered entry
type RecordSubmissionOutput struct {
	Entry *models.RoundEntry
}

// IsRoundCompleteInput contains parameters for checking a round
type IsRoundCompleteInput struct {
	Game  *models.Game
	Round int
}

// IsRoundCompleteOutput contains the result of checking a round
type IsRoundCompleteOutput struct {
	Complete bool
}

// IsGameCompleteInput contains parameters for checking a game
type IsGameCompleteInput struct {
	Game *models.Game
}

// IsGameCompleteOutput contains the result of checking a game
type IsGameCompleteOutput struct {
	Complete bool
}

// PendingCountInput contains parameters for counting missing answers
type PendingCountInput struct {
	Game  *models.Game
	Round int
}

// PendingCountOutput contains the players still to answer, in join order
type PendingCountOutput struct {
	Count     int
	PlayerIDs []string
}
