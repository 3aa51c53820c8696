package models

import (
	"time"
)

// TurnKind is the kind of response a round asks for
type TurnKind string

const (
	// TurnKindWrite asks for text: the seed phrase or a caption of a drawing
	TurnKindWrite TurnKind = "WRITE"

	// TurnKindDraw asks for an image of the previous text
	TurnKindDraw TurnKind = "DRAW"
)

// TurnKindForRound returns the kind of turn played in round. Round 0 is the
// written seed; afterwards odd rounds draw and even rounds describe.
func TurnKindForRound(round int) TurnKind {
	if round%2 == 1 {
		return TurnKindDraw
	}
	return TurnKindWrite
}

// Payload is a player's response. Text and MediaURL are mutually exclusive.
type Payload struct {
	Text     string
	MediaURL string
}

// IsEmpty reports whether neither text nor media is set
func (p Payload) IsEmpty() bool {
	return p.Text == "" && p.MediaURL == ""
}

// IsAmbiguous reports whether both text and media are set
func (p Payload) IsAmbiguous() bool {
	return p.Text != "" && p.MediaURL != ""
}

// Kind returns the turn kind this payload answers
func (p Payload) Kind() TurnKind {
	if p.MediaURL != "" {
		return TurnKindDraw
	}
	return TurnKindWrite
}

// RoundEntry is the prompt dispatched to one player for one round, and their answer
type RoundEntry struct {
	// ID is a unique identifier for the entry
	ID string

	// GameID is the game the entry belongs to
	GameID string

	// Round is the zero-based round index
	Round int

	// PlayerID is the player who received the prompt
	PlayerID string

	// Kind is derived from the round parity
	Kind TurnKind

	// Payload is empty until the player answers
	Payload Payload

	// PromptedAt is when the prompt was dispatched
	PromptedAt time.Time

	// SubmittedAt is when the answer was recorded
	SubmittedAt *time.Time
}

// Answered reports whether a payload has been recorded
func (e *RoundEntry) Answered() bool {
	return !e.Payload.IsEmpty()
}
