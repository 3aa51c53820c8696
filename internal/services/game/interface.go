package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/sketchphone/internal/services/game Service

// Service defines the interface for game operations. Mutating operations
// return the effects to deliver once they have committed.
type Service interface {
	// CreateGame creates a new game hosted by a player
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to a game that has not started
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// StartGame fixes the rotation and sends the first prompts
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// Submit records a player's answer for the current round
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// RepeatPrompt rebuilds the prompt a player still has to answer
	RepeatPrompt(ctx context.Context, input *RepeatPromptInput) (*RepeatPromptOutput, error)

	// Quit abandons the game for everyone
	Quit(ctx context.Context, input *QuitInput) (*QuitOutput, error)

	// GetStatus reports where a game stands
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// FindActiveGame returns the unfinished game a player is in
	FindActiveGame(ctx context.Context, input *FindActiveGameInput) (*FindActiveGameOutput, error)

	// GetGallery returns every chain of a completed game
	GetGallery(ctx context.Context, input *GetGalleryInput) (*GetGalleryOutput, error)
}
