package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetPromptMessage returns the prompt text a player receives for a round
	GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error)

	// GetProgressMessage returns the note the host receives when someone answers
	GetProgressMessage(ctx context.Context, input *GetProgressMessageInput) (*GetProgressMessageOutput, error)

	// GetGameStatusMessage returns a summary of where a game stands
	GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error)

	// GetGalleryMessage returns the notice sent to every player when a game completes
	GetGalleryMessage(ctx context.Context, input *GetGalleryMessageInput) (*GetGalleryMessageOutput, error)

	// GetAbandonedMessage returns the notice sent when a player quits
	GetAbandonedMessage(ctx context.Context, input *GetAbandonedMessageInput) (*GetAbandonedMessageOutput, error)

	// GetGameCreatedMessage returns the reply to the host of a new game
	GetGameCreatedMessage(ctx context.Context, input *GetGameCreatedMessageInput) (*GetGameCreatedMessageOutput, error)

	// GetJoinGameMessage returns a message for when a player joins a game
	GetJoinGameMessage(ctx context.Context, input *GetJoinGameMessageInput) (*GetJoinGameMessageOutput, error)

	// GetSubmissionReceivedMessage returns the acknowledgement for an answer
	GetSubmissionReceivedMessage(ctx context.Context, input *GetSubmissionReceivedMessageInput) (*GetSubmissionReceivedMessageOutput, error)

	// GetHelpMessage returns the rules and the list of commands
	GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
