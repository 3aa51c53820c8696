package models

import (
	"fmt"
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusCreated indicates a game is waiting for players to join
	GameStatusCreated GameStatus = "CREATED"

	// GameStatusStarted indicates the host started the game and the rotation is fixed
	GameStatusStarted GameStatus = "STARTED"

	// GameStatusInProgress indicates prompts have been dispatched and rounds are being played
	GameStatusInProgress GameStatus = "IN_PROGRESS"

	// GameStatusAbandoned indicates a player quit before the game finished
	GameStatusAbandoned GameStatus = "ABANDONED"

	// GameStatusCompleted indicates the final round closed
	GameStatusCompleted GameStatus = "COMPLETED"
)

// Valid reports whether s is one of the five known statuses
func (s GameStatus) Valid() bool {
	switch s {
	case GameStatusCreated, GameStatusStarted, GameStatusInProgress, GameStatusAbandoned, GameStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no transition can leave s
func (s GameStatus) IsTerminal() bool {
	switch s {
	case GameStatusAbandoned, GameStatusCompleted:
		return true
	case GameStatusCreated, GameStatusStarted, GameStatusInProgress:
		return false
	}
	return false
}

// IsPlaying reports whether prompts may be pending for s
func (s GameStatus) IsPlaying() bool {
	switch s {
	case GameStatusStarted, GameStatusInProgress:
		return true
	case GameStatusCreated, GameStatusAbandoned, GameStatusCompleted:
		return false
	}
	return false
}

// MarshalText implements encoding.TextMarshaler
func (s GameStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid game status %q", string(s))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects unknown statuses
func (s *GameStatus) UnmarshalText(text []byte) error {
	status := GameStatus(text)
	if !status.Valid() {
		return fmt.Errorf("invalid game status %q", string(text))
	}
	*s = status
	return nil
}

// Game represents one telephone pictionary session
type Game struct {
	// ID is the short join code for the game
	ID string

	// HostID is the ID of the player who created the game
	HostID string

	// Status is the current state of the game
	Status GameStatus

	// PlayerIDs contains the IDs of players in the game, in join order
	PlayerIDs []string

	// CurrentRound is the zero-based index of the round being played
	CurrentRound int

	// Rotation is fixed when the game starts and never changes afterwards
	Rotation Rotation

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// PlayerCount returns the number of participants
func (g *Game) PlayerCount() int {
	return len(g.PlayerIDs)
}

// FinalRound returns the index of the last round. Every player's content
// passes through all N-1 other players, so the last index is N-1.
func (g *Game) FinalRound() int {
	return len(g.PlayerIDs) - 1
}

// HasPlayer reports whether playerID participates in the game
func (g *Game) HasPlayer(playerID string) bool {
	for _, id := range g.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}
