package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/sketchphone/internal/models"
	"github.com/KirkDiggler/sketchphone/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

const (
	colorSuccess = 0x00ff00
	colorError   = 0xff0000
	colorInfo    = 0x3498db
)

// renderError renders an error embed
func renderError(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       colorError,
	}
}

// renderGameCreated renders the reply to the host of a new game. qrURL is
// optional and points at a QR code of the join command.
func renderGameCreated(title, message, code, qrURL string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Game Code",
				Value:  code,
				Inline: true,
			},
			{
				Name:   "Join With",
				Value:  fmt.Sprintf("`%s`", joinCommand(code)),
				Inline: true,
			},
		},
	}

	if qrURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: qrURL}
	}

	return embed
}

// renderStatus renders a game's status for the player who asked
func renderStatus(message string, status *game.GetStatusOutput) *discordgo.MessageEmbed {
	g := status.Game

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Status",
			Value:  string(g.Status),
			Inline: true,
		},
		{
			Name:   "Players",
			Value:  fmt.Sprintf("%d", g.PlayerCount()),
			Inline: true,
		},
	}

	if g.Status.IsPlaying() {
		fields = append(fields,
			&discordgo.MessageEmbedField{
				Name:   "Round",
				Value:  fmt.Sprintf("%d of %d (%s)", status.Round+1, status.TotalRounds, models.TurnKindForRound(status.Round)),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:   "Waiting On",
				Value:  fmt.Sprintf("%d", status.Pending),
				Inline: true,
			},
		)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Game %s", g.ID),
		Description: message,
		Color:       colorInfo,
		Fields:      fields,
	}
}

// joinCommand is the slash command other players type to join code
func joinCommand(code string) string {
	return fmt.Sprintf("/%s join code:%s", commandName, code)
}

// payloadFromMessage turns a direct message into a submission. The first
// attachment becomes the image; text is trimmed.
func payloadFromMessage(m *discordgo.Message) models.Payload {
	payload := models.Payload{
		Text: strings.TrimSpace(m.Content),
	}
	if len(m.Attachments) > 0 && m.Attachments[0] != nil {
		payload.MediaURL = m.Attachments[0].URL
	}
	return payload
}
