package game

import (
	"time"

	"github.com/KirkDiggler/sketchphone/internal/common/clock"
	"github.com/KirkDiggler/sketchphone/internal/common/gamecode"
	"github.com/KirkDiggler/sketchphone/internal/common/keylock"
	"github.com/KirkDiggler/sketchphone/internal/common/uuid"
	"github.com/KirkDiggler/sketchphone/internal/models"
	gameRepo "github.com/KirkDiggler/sketchphone/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/sketchphone/internal/repositories/player"
	roundRepo "github.com/KirkDiggler/sketchphone/internal/repositories/round"
	"github.com/KirkDiggler/sketchphone/internal/rotation"
	"github.com/KirkDiggler/sketchphone/internal/services/ledger"
	"github.com/KirkDiggler/sketchphone/internal/services/messaging"
)

const (
	// DefaultMaxCodeAttempts bounds game code regeneration on collision
	DefaultMaxCodeAttempts = 20

	// DefaultRetention is how long a finished game stays readable
	DefaultRetention = 7 * 24 * time.Hour
)

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per game, zero for no limit
	MaxPlayers int

	// Maximum number of codes tried before CreateGame gives up
	MaxCodeAttempts int

	// GalleryURL is the base URL the game code is appended to in completion notices
	GalleryURL string

	// Retention is how long finished games, their rounds and their player
	// index are kept before their code can be reused
	Retention time.Duration

	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	RoundRepo  roundRepo.Repository

	// Service dependencies
	Ledger        ledger.Service
	Planner       rotation.Planner
	Messenger     messaging.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	CodeGenerator gamecode.Generator

	// Locker serialises work per game, a fresh one is used when nil
	Locker *keylock.Locker
}

// CreateGameInput contains parameters for creating a game
type CreateGameInput struct {
	HostID   string
	HostName string
}

// CreateGameOutput contains the result of creating a game
type CreateGameOutput struct {
	Game   *models.Game
	Player *models.Player
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	GameID     string
	PlayerID   string
	PlayerName string
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	Game          *models.Game
	Player        *models.Player
	AlreadyJoined bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	GameID   string
	PlayerID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Game    *models.Game
	Effects []*models.Effect

	// AlreadyStarted is set when the call was a no-op
	AlreadyStarted bool
}

// SubmitInput contains parameters for answering the current round
type SubmitInput struct {
	GameID   string
	PlayerID string
	Payload  models.Payload
}

// SubmitOutput contains the result of a submission
type SubmitOutput struct {
	Game    *models.Game
	Entry   *models.RoundEntry
	Effects []*models.Effect

	// Remaining is the number of players still to answer the submitted round
	Remaining int

	// RoundClosed is set when the submission completed its round
	RoundClosed bool

	// GameCompleted is set when the submission completed the final round
	GameCompleted bool

	// Resumed is set when the call closed a round an earlier submission
	// left complete but unsaved. The payload was not recorded.
	Resumed bool
}

// RepeatPromptInput contains parameters for repeating a prompt
type RepeatPromptInput struct {
	GameID   string
	PlayerID string
}

// RepeatPromptOutput contains the rebuilt prompt
type RepeatPromptOutput struct {
	Effects []*models.Effect

	// Resumed is set when there was no prompt to repeat but a stalled
	// round was closed instead. Effects then hold the next round's prompts
	// or the gallery notices.
	Resumed bool
}

// QuitInput contains parameters for leaving a game
type QuitInput struct {
	GameID   string
	PlayerID string
}

// QuitOutput contains the result of leaving a game
type QuitOutput struct {
	Game    *models.Game
	Effects []*models.Effect
}

// GetStatusInput contains parameters for reading a game's status
type GetStatusInput struct {
	GameID string

	// PlayerID is optional; when set AwaitingYou is filled in
	PlayerID string
}

// GetStatusOutput contains the status of a game
type GetStatusOutput struct {
	Game        *models.Game
	Round       int
	TotalRounds int
	Pending     int
	AwaitingYou bool
}

// FindActiveGameInput contains parameters for finding a player's game
type FindActiveGameInput struct {
	PlayerID string
}

// FindActiveGameOutput contains the player's unfinished game
type FindActiveGameOutput struct {
	Game   *models.Game
	Player *models.Player
}

// GetGalleryInput contains parameters for reading a finished game
type GetGalleryInput struct {
	GameID string
}

// GalleryStep is one player's contribution to a chain
type GalleryStep struct {
	Round      int
	PlayerID   string
	PlayerName string
	Kind       models.TurnKind
	Payload    models.Payload
}

// GalleryChain follows one player's seed phrase through the game
type GalleryChain struct {
	OriginID   string
	OriginName string
	Steps      []*GalleryStep
}

// GetGalleryOutput contains every chain of a completed game, in join order of the originators
type GetGalleryOutput struct {
	Game   *models.Game
	Chains []*GalleryChain
}
