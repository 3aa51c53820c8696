package game

import (
	"time"

	"github.com/KirkDiggler/sketchphone/internal/models"
)

type CreateGameInput struct {
	Game *models.Game
}

type SaveGameInput struct {
	Game *models.Game

	// TTL expires a terminal game so its code can be reused; zero keeps it
	TTL time.Duration
}

type GetGameInput struct {
	GameID string
}

type GetActiveGamesInput struct {
}

type GetActiveGamesOutput struct {
	Games []*models.Game
}
