// Package rotation plans the path each player's content takes through a game.
package rotation

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/sketchphone/internal/models"
)

var (
	// ErrInvalidParticipantCount is returned for fewer than two players
	ErrInvalidParticipantCount = errors.New("rotation needs at least two participants")

	// ErrDuplicateParticipant is returned when a player id appears twice
	ErrDuplicateParticipant = errors.New("rotation participants must be distinct")
)

//go:generate mockgen -package=mocks -destination=mocks/mock_planner.go github.com/KirkDiggler/sketchphone/internal/rotation Planner

// Planner computes rotation maps
type Planner interface {
	Plan(playerIDs []string) (models.Rotation, error)
}

// Config for the rotation planner
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomPlanner builds rotations from a seedable random source
type RandomPlanner struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new rotation planner
func New(cfg *Config) *RandomPlanner {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomPlanner{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Plan returns, for every player, the ordered list of the other players their
// content visits. Each list is a cyclic rotation of a shuffled base order, so
// in every round each player receives from exactly one distinct sender.
func (p *RandomPlanner) Plan(playerIDs []string) (models.Rotation, error) {
	n := len(playerIDs)
	if n < 2 {
		return nil, ErrInvalidParticipantCount
	}

	seen := make(map[string]bool, n)
	for _, id := range playerIDs {
		if seen[id] {
			return nil, ErrDuplicateParticipant
		}
		seen[id] = true
	}

	base := make([]string, n)
	copy(base, playerIDs)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.random.Shuffle(n, func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})

	rotations := make([][]string, n)
	for i := range rotations {
		rotations[i] = rotateRight(base, i)
	}

	p.random.Shuffle(n, func(i, j int) {
		rotations[i], rotations[j] = rotations[j], rotations[i]
	})

	plan := make(models.Rotation, n)
	for _, r := range rotations {
		tail := make([]string, n-1)
		copy(tail, r[1:])
		plan[r[0]] = tail
	}

	return plan, nil
}

func rotateRight(players []string, times int) []string {
	n := len(players)
	out := make([]string, n)
	for i, p := range players {
		out[(i+times)%n] = p
	}
	return out
}
