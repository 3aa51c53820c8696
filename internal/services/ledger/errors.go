package ledger

import "github.com/KirkDiggler/sketchphone/internal/common/apperrors"

// LedgerError is returned for misconfiguration and misuse of the ledger
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    LedgerError = "config cannot be nil"
	ErrNilRoundRepo LedgerError = "round repository cannot be nil"
	ErrNilClock     LedgerError = "clock cannot be nil"
	ErrNilGame      LedgerError = "game cannot be nil"
	ErrInvalidRound LedgerError = "round is outside the game"
)

var (
	ErrUnknownPlayer       = apperrors.NotFound("unknown_player", "You are not a player in this game.")
	ErrDuplicateSubmission = apperrors.StateConflict("duplicate_submission", "You already answered this round.")
	ErrNotPrompted         = apperrors.StateConflict("not_prompted", "No prompt was sent to you for this round.")
)
