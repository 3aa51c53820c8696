package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/sketchphone/internal/models"
	"github.com/KirkDiggler/sketchphone/internal/services/delivery"
	"github.com/KirkDiggler/sketchphone/internal/services/game"
	"github.com/KirkDiggler/sketchphone/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const commandName = "sketch"

// SketchCommand handles the /sketch command
type SketchCommand struct {
	BaseCommand
	gameService game.Service
	messenger   messaging.Service
	delivery    delivery.Service
	publicURL   string
}

// NewSketchCommand creates a new sketch command handler
func NewSketchCommand(gameService game.Service, messenger messaging.Service, deliverySvc delivery.Service, publicURL string) *SketchCommand {
	return &SketchCommand{
		BaseCommand: BaseCommand{
			Name:        commandName,
			Description: "Telephone pictionary played over direct messages",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new game and host it",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join a game that has not started yet",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "code",
							Description: "The four letter game code",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start the game you are hosting",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show where your game stands",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "repeat",
					Description: "Send your current prompt again",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Quit your game, ending it for everyone",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "help",
					Description: "Show the rules and commands",
				},
			},
		},
		gameService: gameService,
		messenger:   messenger,
		delivery:    deliverySvc,
		publicURL:   strings.TrimSuffix(publicURL, "/"),
	}
}

// Handle processes a Discord interaction for the sketch command
func (c *SketchCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	userID, username := interactionUser(i)
	if userID == "" {
		return errors.New("interaction has no user")
	}

	subcommand := data.Options[0]
	switch subcommand.Name {
	case "create":
		return c.handleCreate(ctx, s, i, userID, username)
	case "join":
		return c.handleJoin(ctx, s, i, userID, username, optionString(subcommand.Options, "code"))
	case "start":
		return c.handleStart(ctx, s, i, userID)
	case "status":
		return c.handleStatus(ctx, s, i, userID)
	case "repeat":
		return c.handleRepeat(ctx, s, i, userID)
	case "leave":
		return c.handleLeave(ctx, s, i, userID)
	case "help":
		return c.handleHelp(ctx, s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", subcommand.Name))
	}
}

// handleCreate handles the create subcommand
func (c *SketchCommand) handleCreate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	output, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		HostID:   userID,
		HostName: username,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	created, err := c.messenger.GetGameCreatedMessage(ctx, &messaging.GetGameCreatedMessageInput{
		GameID: output.Game.ID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	var qrURL string
	if c.publicURL != "" {
		qrURL = fmt.Sprintf("%s/games/%s/qr", c.publicURL, output.Game.ID)
	}

	return RespondWithEmbed(s, i, renderGameCreated(created.Title, created.Message, output.Game.ID, qrURL))
}

// handleJoin handles the join subcommand
func (c *SketchCommand) handleJoin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username, code string) error {
	output, err := c.gameService.JoinGame(ctx, &game.JoinGameInput{
		GameID:     code,
		PlayerID:   userID,
		PlayerName: username,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	joined, err := c.messenger.GetJoinGameMessage(ctx, &messaging.GetJoinGameMessageInput{
		PlayerName:    username,
		GameID:        output.Game.ID,
		PlayerCount:   output.Game.PlayerCount(),
		AlreadyJoined: output.AlreadyJoined,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	if output.AlreadyJoined {
		return RespondWithEphemeralMessage(s, i, joined.Message)
	}
	return RespondWithMessage(s, i, joined.Message)
}

// handleStart handles the start subcommand
func (c *SketchCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	active, err := c.gameService.FindActiveGame(ctx, &game.FindActiveGameInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	output, err := c.gameService.StartGame(ctx, &game.StartGameInput{
		GameID:   active.Game.ID,
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	if output.AlreadyStarted {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Game %s has already started.", output.Game.ID))
	}

	err = RespondWithMessage(s, i, fmt.Sprintf("Game %s started with %d players! Check your direct messages for your first prompt.",
		output.Game.ID, output.Game.PlayerCount()))

	c.deliver(ctx, output.Effects)
	return err
}

// handleStatus handles the status subcommand
func (c *SketchCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	active, err := c.gameService.FindActiveGame(ctx, &game.FindActiveGameInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	status, err := c.gameService.GetStatus(ctx, &game.GetStatusInput{
		GameID:   active.Game.ID,
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	message, err := c.messenger.GetGameStatusMessage(ctx, &messaging.GetGameStatusMessageInput{
		GameID:      status.Game.ID,
		GameStatus:  status.Game.Status,
		PlayerCount: status.Game.PlayerCount(),
		Round:       status.Round,
		TotalRounds: status.TotalRounds,
		Pending:     status.Pending,
		AwaitingYou: status.AwaitingYou,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderStatus(message.Message, status)},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// handleRepeat handles the repeat subcommand
func (c *SketchCommand) handleRepeat(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	active, err := c.gameService.FindActiveGame(ctx, &game.FindActiveGameInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	output, err := c.gameService.RepeatPrompt(ctx, &game.RepeatPromptInput{
		GameID:   active.Game.ID,
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	reply := "Your prompt is on its way to your direct messages."
	if output.Resumed {
		reply = "Everyone had answered but the game had not moved on. It has now, check your direct messages."
	}
	err = RespondWithEphemeralMessage(s, i, reply)

	c.deliver(ctx, output.Effects)
	return err
}

// handleLeave handles the leave subcommand
func (c *SketchCommand) handleLeave(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	active, err := c.gameService.FindActiveGame(ctx, &game.FindActiveGameInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	output, err := c.gameService.Quit(ctx, &game.QuitInput{
		GameID:   active.Game.ID,
		PlayerID: userID,
	})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	err = RespondWithEphemeralMessage(s, i, fmt.Sprintf("You left game %s. It has ended for everyone.", output.Game.ID))

	c.deliver(ctx, output.Effects)
	return err
}

// handleHelp handles the help subcommand
func (c *SketchCommand) handleHelp(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.messenger.GetHelpMessage(ctx, &messaging.GetHelpMessageInput{})
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, output.Message)
}

// respondWithServiceError renders err through the messenger as an ephemeral reply
func (c *SketchCommand) respondWithServiceError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	return RespondWithError(s, i, errorText(ctx, c.messenger, err))
}

// deliver sends effects once the interaction has been answered
func (c *SketchCommand) deliver(ctx context.Context, effects []*models.Effect) {
	deliverEffects(ctx, c.delivery, effects)
}

// errorText maps err to the text shown to a player, logging errors they cannot act on
func errorText(ctx context.Context, messenger messaging.Service, err error) string {
	output, msgErr := messenger.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		log.Printf("Error rendering error message: %v", msgErr)
		return "Something went wrong, please try again."
	}
	if output.Internal {
		log.Printf("Error handling request: %v", err)
	}
	return output.Message
}

// deliverEffects hands effects to the delivery service and logs what failed
func deliverEffects(ctx context.Context, deliverySvc delivery.Service, effects []*models.Effect) {
	if len(effects) == 0 {
		return
	}

	output, err := deliverySvc.Deliver(ctx, &delivery.DeliverInput{
		Effects: effects,
	})
	if err != nil {
		log.Printf("Error delivering %d effects: %v", len(effects), err)
		return
	}

	if len(output.Failed) > 0 {
		log.Printf("Delivered %d of %d effects", len(output.Delivered), len(effects))
	}
}

// optionString returns the string value of the named option, or empty
func optionString(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
