package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sketchphone/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/sketchphone/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// CreateGame persists a new game, failing with ErrGameExists if the code is taken
	CreateGame(ctx context.Context, input *CreateGameInput) error

	// SaveGame persists an existing game; terminal games expire after the input TTL
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetActiveGames retrieves all games that have not finished
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}
