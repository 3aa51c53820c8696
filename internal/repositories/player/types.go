package player

import (
	"time"

	"github.com/KirkDiggler/sketchphone/internal/models"
)

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayersInGameInput contains parameters for retrieving players in a game
type GetPlayersInGameInput struct {
	GameID string
}

// GetPlayersInGameOutput contains the result of retrieving players in a game
type GetPlayersInGameOutput struct {
	Players []*models.Player
}

// ExpireGamePlayersInput contains parameters for expiring a game's player index
type ExpireGamePlayersInput struct {
	GameID string
	TTL    time.Duration
}
