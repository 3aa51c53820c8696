package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/sketchphone/internal/common/apperrors"
	"github.com/KirkDiggler/sketchphone/internal/models"
)

const (
	firstRoundPrompt = "FIRST ROUND: Respond with a word or phrase."
	describeAction   = "DESCRIBE the image"
	drawAction       = "DRAW"
	genericError     = "Something went wrong, please try again."
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// GetPromptMessage builds the prompt for a round. The text depends only on
// the input, so repeating a prompt produces the same message.
func (s *service) GetPromptMessage(ctx context.Context, input *GetPromptMessageInput) (*GetPromptMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Round == 0 {
		return &GetPromptMessageOutput{
			Message: firstRoundPrompt,
		}, nil
	}

	var action string
	switch input.Kind {
	case models.TurnKindDraw:
		action = fmt.Sprintf("%s %q", drawAction, input.PreviousText)
	case models.TurnKindWrite:
		action = describeAction
	default:
		return nil, fmt.Errorf("unknown turn kind %q", input.Kind)
	}

	return &GetPromptMessageOutput{
		Message: fmt.Sprintf("Starting round %d of %d. %s", input.Round+1, input.TotalRounds, action),
	}, nil
}

// GetProgressMessage tells the host someone answered and how many are left
func (s *service) GetProgressMessage(ctx context.Context, input *GetProgressMessageInput) (*GetProgressMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetProgressMessageOutput{
		Message: fmt.Sprintf("%s responded. On round %d of %d, waiting on %s to send responses.",
			input.PlayerName, input.Round+1, input.TotalRounds, pluralize(input.Pending, "player")),
	}, nil
}

// GetGameStatusMessage describes the game from the asking player's view
func (s *service) GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch input.GameStatus {
	case models.GameStatusCreated:
		message = fmt.Sprintf("Game %s has %s. Waiting for host to start the game.",
			input.GameID, pluralize(input.PlayerCount, "player"))
	case models.GameStatusStarted, models.GameStatusInProgress:
		message = fmt.Sprintf("On round %d of %d, waiting on %s to send responses.",
			input.Round+1, input.TotalRounds, pluralize(input.Pending, "player"))
		if input.AwaitingYou {
			message += " We are waiting on you!"
		} else {
			message += " You have already submitted a response for this round."
		}
	case models.GameStatusCompleted:
		message = fmt.Sprintf("Game %s is over.", input.GameID)
	case models.GameStatusAbandoned:
		message = fmt.Sprintf("Game %s was abandoned.", input.GameID)
	default:
		return nil, fmt.Errorf("unknown game status %q", input.GameStatus)
	}

	return &GetGameStatusMessageOutput{
		Message: message,
	}, nil
}

// GetGalleryMessage points every player to the finished game
func (s *service) GetGalleryMessage(ctx context.Context, input *GetGalleryMessageInput) (*GetGalleryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetGalleryMessageOutput{
		Message: fmt.Sprintf("Game is over! Visit %s%s to view the final results.", input.GalleryURL, input.GameID),
	}, nil
}

// GetAbandonedMessage tells the remaining players the game ended early
func (s *service) GetAbandonedMessage(ctx context.Context, input *GetAbandonedMessageInput) (*GetAbandonedMessageOutput, error) {
	return &GetAbandonedMessageOutput{
		Message: "A player abandoned the game, it has now ended.",
	}, nil
}

// GetGameCreatedMessage tells the host how others join
func (s *service) GetGameCreatedMessage(ctx context.Context, input *GetGameCreatedMessageInput) (*GetGameCreatedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetGameCreatedMessageOutput{
		Title: fmt.Sprintf("Game %s created", input.GameID),
		Message: fmt.Sprintf("Send this code to your friends: they join with `/sketch join code:%s`.\n"+
			"Use `/sketch start` when everyone has joined to begin the game.", input.GameID),
	}, nil
}

// GetJoinGameMessage returns a message for when a player joins a game
func (s *service) GetJoinGameMessage(ctx context.Context, input *GetJoinGameMessageInput) (*GetJoinGameMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.AlreadyJoined {
		return &GetJoinGameMessageOutput{
			Message: fmt.Sprintf("You're already in game %s. You will receive a message when the game has started.", input.GameID),
		}, nil
	}

	flavour := s.pick([]string{
		"Sharpen your pencils!",
		"Warm up those drawing fingers.",
		"Stick figures are welcome.",
		"No artistic talent required.",
		"May your handwriting be legible.",
	})

	return &GetJoinGameMessageOutput{
		Message: fmt.Sprintf("%s joined game %s (%s). %s You will receive a message when the game has started.",
			input.PlayerName, input.GameID, pluralize(input.PlayerCount, "player"), flavour),
	}, nil
}

// GetSubmissionReceivedMessage acknowledges an answer
func (s *service) GetSubmissionReceivedMessage(ctx context.Context, input *GetSubmissionReceivedMessageInput) (*GetSubmissionReceivedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := "Received. Waiting for next round to start."
	switch {
	case input.Resumed:
		message = "Your answer was already in. The game has moved on, check your messages."
	case input.GameCompleted:
		message = "Received. That was the last round!"
	case input.RoundClosed:
		message = "Received. Everyone is in, the next round is starting."
	}

	return &GetSubmissionReceivedMessageOutput{
		Message: message,
	}, nil
}

const helpMessage = `**Telephone Pictionary**
Everyone starts by writing a word or phrase. Each round you are sent what the player before you made: draw the phrase you get, or describe the drawing you get. Rounds alternate until every phrase has passed through every player, then everyone gets a link to the gallery.

Answer prompts by replying to the bot's direct messages with text or a single image.

**Commands**
` + "`/sketch create`" + ` host a new game
` + "`/sketch join code:ABCD`" + ` join a game before it starts
` + "`/sketch start`" + ` start the game you host
` + "`/sketch status`" + ` see where your game stands
` + "`/sketch repeat`" + ` get your current prompt again
` + "`/sketch leave`" + ` quit, ending the game for everyone
` + "`/sketch help`" + ` show this message`

// GetHelpMessage explains the game and lists the commands
func (s *service) GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetHelpMessageOutput{
		Message: helpMessage,
	}, nil
}

// GetErrorMessage returns the player-facing text of an error. Errors
// outside the game taxonomy get a generic reply.
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	var appErr *apperrors.Error
	if errors.As(input.Err, &appErr) {
		return &GetErrorMessageOutput{
			Message: appErr.Message,
		}, nil
	}

	return &GetErrorMessageOutput{
		Message:  genericError,
		Internal: true,
	}, nil
}
