package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/sketchphone/internal/services/delivery"
	"github.com/bwmarrin/discordgo"
)

// DMSender delivers messages to players as Discord direct messages
type DMSender struct {
	session *discordgo.Session

	mu       sync.Mutex
	channels map[string]string // Maps user ID to DM channel ID
}

// NewDMSender creates a sender that uses session
func NewDMSender(session *discordgo.Session) (*DMSender, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &DMSender{
		session:  session,
		channels: make(map[string]string),
	}, nil
}

// Send opens (or reuses) the recipient's DM channel and posts the message
func (d *DMSender) Send(ctx context.Context, input *delivery.SendInput) (*delivery.SendOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.RecipientID == "" {
		return nil, errors.New("recipient ID cannot be empty")
	}

	channelID, err := d.channelFor(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}

	msg, err := d.session.ChannelMessageSendComplex(channelID, buildDirectMessage(input), discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to send direct message to %s: %w", input.RecipientID, err)
	}

	return &delivery.SendOutput{
		Handle: msg.ID,
	}, nil
}

func (d *DMSender) channelFor(ctx context.Context, userID string) (string, error) {
	d.mu.Lock()
	channelID, ok := d.channels[userID]
	d.mu.Unlock()
	if ok {
		return channelID, nil
	}

	channel, err := d.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to open direct message channel with %s: %w", userID, err)
	}

	d.mu.Lock()
	d.channels[userID] = channel.ID
	d.mu.Unlock()

	return channel.ID, nil
}

// buildDirectMessage renders a delivery as a Discord message, embedding the
// image when there is one
func buildDirectMessage(input *delivery.SendInput) *discordgo.MessageSend {
	msg := &discordgo.MessageSend{
		Content: input.Text,
	}

	if input.MediaURL != "" {
		msg.Embeds = []*discordgo.MessageEmbed{
			{
				Image: &discordgo.MessageEmbedImage{URL: input.MediaURL},
			},
		}
	}

	return msg
}
