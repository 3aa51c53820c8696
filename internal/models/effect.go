package models

// EffectKind categorises an outbound action
type EffectKind string

const (
	// EffectKindPrompt asks a player for their next response
	EffectKindPrompt EffectKind = "prompt"

	// EffectKindProgress tells the host how many responses are still missing
	EffectKindProgress EffectKind = "progress"

	// EffectKindGallery tells a player the game finished and where to see it
	EffectKindGallery EffectKind = "gallery"

	// EffectKindAbandoned tells a player the game ended early
	EffectKindAbandoned EffectKind = "abandoned"
)

// Effect describes a message that must be delivered after a state transition
type Effect struct {
	// Kind is the category of the message
	Kind EffectKind

	// GameID is the game that produced the effect
	GameID string

	// Round is the round index the effect refers to
	Round int

	// RecipientID is the player the message goes to
	RecipientID string

	// TurnKind is set on prompts only
	TurnKind TurnKind

	// Text is the message body
	Text string

	// MediaURL is an image to attach, if any
	MediaURL string
}
