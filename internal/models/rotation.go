package models

import "fmt"

// Rotation maps each originating player to the ordered players their
// content travels through, one per round after the seed round.
type Rotation map[string][]string

// Chain returns origin followed by its receive sequence. Index r of the
// chain is the player holding origin's content in round r.
func (r Rotation) Chain(origin string) []string {
	sequence, ok := r[origin]
	if !ok {
		return nil
	}
	chain := make([]string, 0, len(sequence)+1)
	chain = append(chain, origin)
	return append(chain, sequence...)
}

// Origin returns the player whose content playerID holds in round
func (r Rotation) Origin(playerID string, round int) (string, bool) {
	if round == 0 {
		_, ok := r[playerID]
		return playerID, ok
	}
	for origin, sequence := range r {
		if round-1 < len(sequence) && sequence[round-1] == playerID {
			return origin, true
		}
	}
	return "", false
}

// Predecessor returns the player whose round-1 answer playerID must respond
// to in round. It is undefined for round 0.
func (r Rotation) Predecessor(playerID string, round int) (string, bool) {
	if round < 1 {
		return "", false
	}
	origin, ok := r.Origin(playerID, round)
	if !ok {
		return "", false
	}
	chain := r.Chain(origin)
	return chain[round-1], true
}

// Validate checks that r covers players exactly once and that every round
// is a permutation with no player receiving their own content.
func (r Rotation) Validate(players []string) error {
	n := len(players)
	if len(r) != n {
		return fmt.Errorf("rotation has %d origins, want %d", len(r), n)
	}
	known := make(map[string]bool, n)
	for _, p := range players {
		known[p] = true
	}
	for origin, sequence := range r {
		if !known[origin] {
			return fmt.Errorf("rotation origin %s is not a player", origin)
		}
		if len(sequence) != n-1 {
			return fmt.Errorf("rotation for %s has %d steps, want %d", origin, len(sequence), n-1)
		}
		seen := map[string]bool{origin: true}
		for _, p := range sequence {
			if !known[p] {
				return fmt.Errorf("rotation for %s visits unknown player %s", origin, p)
			}
			if seen[p] {
				return fmt.Errorf("rotation for %s visits %s twice", origin, p)
			}
			seen[p] = true
		}
	}
	for round := 0; round < n-1; round++ {
		receivers := make(map[string]bool, n)
		for _, sequence := range r {
			if receivers[sequence[round]] {
				return fmt.Errorf("player %s receives twice in round %d", sequence[round], round+1)
			}
			receivers[sequence[round]] = true
		}
	}
	return nil
}
