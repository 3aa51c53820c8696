package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sketchphone/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/sketchphone/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player and indexes them under their current game
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayersInGame retrieves every player who joined a game
	GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error)

	// ExpireGamePlayers sets an expiry on a finished game's player index
	ExpireGamePlayers(ctx context.Context, input *ExpireGamePlayersInput) error
}
