package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/sketchphone/internal/models"
	"github.com/KirkDiggler/sketchphone/internal/services/delivery"
	"github.com/KirkDiggler/sketchphone/internal/services/game"
	"github.com/KirkDiggler/sketchphone/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	messenger   messaging.Service
	delivery    delivery.Service
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened Discord session
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// PublicURL is where the web API is reachable, used for QR codes
	PublicURL string

	// Services
	GameService game.Service
	Messenger   messaging.Service
	Delivery    delivery.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	if cfg.Delivery == nil {
		return nil, errors.New("delivery service cannot be nil")
	}

	bot := &Bot{
		session:     cfg.Session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		messenger:   cfg.Messenger,
		delivery:    cfg.Delivery,
		config:      cfg,
	}

	// Slash commands arrive through guilds; submissions are direct messages
	cfg.Session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages

	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleDirectMessage)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	sketchCmd := NewSketchCommand(b.gameService, b.messenger, b.delivery, b.config.PublicURL)
	if err := b.RegisterCommand(sketchCmd); err != nil {
		return fmt.Errorf("failed to register sketch command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.appID()

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// appID falls back to the session user ID if no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			log.Printf("Error handling command %s: %v", name, err)
		}
	}
}

// handleDirectMessage treats every direct message to the bot as a submission
// for the sender's active game
func (b *Bot) handleDirectMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID != "" {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	ctx := context.Background()

	reply, effects, err := b.submit(ctx, m.Message)
	if err != nil {
		reply = directMessageErrorText(ctx, b.messenger, err)
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		log.Printf("Error replying to %s: %v", m.Author.ID, err)
	}

	deliverEffects(ctx, b.delivery, effects)
}

// directMessageErrorText is errorText, pointing strangers who message the bot at the rules
func directMessageErrorText(ctx context.Context, messenger messaging.Service, err error) string {
	text := errorText(ctx, messenger, err)
	if errors.Is(err, game.ErrNotPlaying) {
		text += " Use /sketch help to see how to play."
	}
	return text
}

// submit records m as the author's answer and returns the acknowledgement
// along with the effects to deliver after it
func (b *Bot) submit(ctx context.Context, m *discordgo.Message) (string, []*models.Effect, error) {
	active, err := b.gameService.FindActiveGame(ctx, &game.FindActiveGameInput{
		PlayerID: m.Author.ID,
	})
	if err != nil {
		return "", nil, err
	}

	output, err := b.gameService.Submit(ctx, &game.SubmitInput{
		GameID:   active.Game.ID,
		PlayerID: m.Author.ID,
		Payload:  payloadFromMessage(m),
	})
	if err != nil {
		return "", nil, err
	}

	received, err := b.messenger.GetSubmissionReceivedMessage(ctx, &messaging.GetSubmissionReceivedMessageInput{
		RoundClosed:   output.RoundClosed,
		GameCompleted: output.GameCompleted,
		Resumed:       output.Resumed,
	})
	if err != nil {
		return "", output.Effects, err
	}

	return received.Message, output.Effects, nil
}
