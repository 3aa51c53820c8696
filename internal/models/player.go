package models

import (
	"time"
)

// PlayerStatus represents whether a player is still taking part in their game
type PlayerStatus string

const (
	// PlayerStatusActive indicates the player is playing
	PlayerStatusActive PlayerStatus = "ACTIVE"

	// PlayerStatusQuit indicates the player left their game
	PlayerStatusQuit PlayerStatus = "QUIT"
)

// Player represents a participant in a game
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Name is the display name of the player
	Name string

	// GameID is the ID of the game the player most recently joined
	GameID string

	// IsHost indicates the player created the game and may start it
	IsHost bool

	// Status is the player's lifecycle status within GameID
	Status PlayerStatus

	// JoinedAt is when the player joined GameID
	JoinedAt time.Time
}
