package messaging

import (
	"github.com/KirkDiggler/sketchphone/internal/models"
)

// GetPromptMessageInput contains parameters for building a prompt
type GetPromptMessageInput struct {
	// Round is the zero-based round index
	Round int

	// TotalRounds is the number of rounds in the game
	TotalRounds int

	// Kind is the turn kind the prompt asks for
	Kind models.TurnKind

	// PreviousText is the text to draw, set on DRAW rounds
	PreviousText string
}

// GetPromptMessageOutput contains the prompt text
type GetPromptMessageOutput struct {
	Message string
}

// GetProgressMessageInput contains parameters for a progress note
type GetProgressMessageInput struct {
	PlayerName  string
	Round       int
	TotalRounds int
	Pending     int
}

// GetProgressMessageOutput contains the progress note
type GetProgressMessageOutput struct {
	Message string
}

// GetGameStatusMessageInput is the input for GetGameStatusMessage
type GetGameStatusMessageInput struct {
	GameID      string
	GameStatus  models.GameStatus
	PlayerCount int
	Round       int
	TotalRounds int
	Pending     int

	// AwaitingYou is set when the asking player still owes an answer
	AwaitingYou bool
}

// GetGameStatusMessageOutput is the output for GetGameStatusMessage
type GetGameStatusMessageOutput struct {
	Message string
}

// GetGalleryMessageInput contains parameters for the completion notice
type GetGalleryMessageInput struct {
	GameID string

	// GalleryURL is the base URL the game code is appended to
	GalleryURL string
}

// GetGalleryMessageOutput contains the completion notice
type GetGalleryMessageOutput struct {
	Message string
}

// GetAbandonedMessageInput contains parameters for the abandonment notice
type GetAbandonedMessageInput struct {
	GameID string
}

// GetAbandonedMessageOutput contains the abandonment notice
type GetAbandonedMessageOutput struct {
	Message string
}

// GetGameCreatedMessageInput contains parameters for the creation reply
type GetGameCreatedMessageInput struct {
	GameID string
}

// GetGameCreatedMessageOutput contains the creation reply
type GetGameCreatedMessageOutput struct {
	Title   string
	Message string
}

// GetJoinGameMessageInput contains parameters for getting a join game message
type GetJoinGameMessageInput struct {
	// PlayerName is the name of the player joining
	PlayerName string

	// GameID is the code of the joined game
	GameID string

	// PlayerCount is the number of players after the join
	PlayerCount int

	// AlreadyJoined indicates if the player was already in the game
	AlreadyJoined bool
}

// GetJoinGameMessageOutput contains the result of getting a join game message
type GetJoinGameMessageOutput struct {
	Message string
}

// GetSubmissionReceivedMessageInput contains parameters for the acknowledgement
type GetSubmissionReceivedMessageInput struct {
	// RoundClosed is set when the answer completed the round
	RoundClosed bool

	// GameCompleted is set when the answer completed the game
	GameCompleted bool

	// Resumed is set when the answer was already in and the call only
	// moved a stalled game on
	Resumed bool
}

// GetSubmissionReceivedMessageOutput contains the acknowledgement
type GetSubmissionReceivedMessageOutput struct {
	Message string
}

// GetHelpMessageInput contains parameters for the help text
type GetHelpMessageInput struct{}

// GetHelpMessageOutput contains the help text
type GetHelpMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string

	// Internal is set when the error is not one players can act on
	Internal bool
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed for the flavour text picker; zero uses the current time
	Seed int64
}
