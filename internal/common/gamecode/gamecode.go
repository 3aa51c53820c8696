// Package gamecode generates the short codes players type to join a game.
package gamecode

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
	"strings"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/sketchphone/internal/common/gamecode Generator

const (
	// Length is the number of characters in a game code
	Length = 4

	// Alphabet excludes letters that are easily confused in chat
	Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// Generator produces candidate game codes. Callers check uniqueness and ask again on collision.
type Generator interface {
	NewCode() string
}

// DefaultGenerator draws codes from crypto/rand
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewCode returns a random code of Length characters from Alphabet
func (g *DefaultGenerator) NewCode() string {
	code := make([]byte, Length)
	for i := range code {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(Alphabet))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = Alphabet[rand.Intn(len(Alphabet))]
			continue
		}
		code[i] = Alphabet[n.Int64()]
	}
	return string(code)
}

// Normalize upper-cases and trims user input
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports whether code has the shape of a generated code
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for _, c := range code {
		if !strings.ContainsRune(Alphabet, c) {
			return false
		}
	}
	return true
}
