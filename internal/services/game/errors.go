package game

import (
	"github.com/KirkDiggler/sketchphone/internal/common/apperrors"
	"github.com/KirkDiggler/sketchphone/internal/models"
)

// GameError is a custom error type for service misconfiguration
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilPlayerRepo      GameError = "player repository cannot be nil"
	ErrNilRoundRepo       GameError = "round repository cannot be nil"
	ErrNilLedger          GameError = "ledger cannot be nil"
	ErrNilPlanner         GameError = "rotation planner cannot be nil"
	ErrNilMessenger       GameError = "messaging service cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
	ErrNilCodeGenerator   GameError = "game code generator cannot be nil"
	ErrCodeSpaceExhausted GameError = "could not find an unused game code"
)

// Errors players can act on. They never change state.
var (
	ErrGameNotFound        = apperrors.NotFound("game_not_found", "That game does not exist.")
	ErrNotPlaying          = apperrors.NotFound("not_playing", "You are not playing a game.")
	ErrNotInGame           = apperrors.NotFound("not_in_game", "You are not a player in that game.")
	ErrMalformedGameCode   = apperrors.Validation("malformed_game_code", "Did not understand game ID.")
	ErrAmbiguousPayload    = apperrors.Validation("ambiguous_payload", "Please send either an image or text, not both.")
	ErrEmptyPayload        = apperrors.Validation("empty_payload", "Please send either an image or text.")
	ErrWrongPayloadKind    = apperrors.Validation("wrong_payload_kind", "That is not the kind of response this round asks for.")
	ErrPlayerInAnotherGame = apperrors.StateConflict("in_another_game", "You are in another game and must quit (/sketch leave) or complete it before starting another.")
	ErrGameAlreadyStarted  = apperrors.StateConflict("game_already_started", "That game has already started and cannot be joined.")
	ErrGameFull            = apperrors.StateConflict("game_full", "That game is full.")
	ErrNotHost             = apperrors.StateConflict("not_host", "Only the host can start the game.")
	ErrInsufficientPlayers = apperrors.StateConflict("insufficient_players", "There are no other players. Cannot start game.")
	ErrNoPendingPrompt     = apperrors.StateConflict("no_pending_prompt", "You have no prompt waiting for a response.")
	ErrGameOver            = apperrors.StateConflict("game_over", "That game has already ended.")
	ErrGameNotFinished     = apperrors.StateConflict("game_not_finished", "That game is not finished yet.")
)

// wrongPayloadKind matches ErrWrongPayloadKind and names what the round expects
func wrongPayloadKind(expected models.TurnKind) error {
	if expected == models.TurnKindDraw {
		return apperrors.Validation(ErrWrongPayloadKind.Code, "This round asks for a drawing, please send an image.")
	}
	return apperrors.Validation(ErrWrongPayloadKind.Code, "This round asks for text, please send a word or phrase.")
}
