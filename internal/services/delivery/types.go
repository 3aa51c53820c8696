package delivery

import (
	"time"

	"github.com/KirkDiggler/sketchphone/internal/common/uuid"
	"github.com/KirkDiggler/sketchphone/internal/models"
)

const (
	// DefaultMaxAttempts is used when Config.MaxAttempts is not set
	DefaultMaxAttempts = 3

	// DefaultRetryDelay is used when Config.RetryDelay is not set
	DefaultRetryDelay = 500 * time.Millisecond
)

// Config holds configuration for the delivery service
type Config struct {
	Sender        Sender
	UUIDGenerator uuid.UUID

	// MaxAttempts is the number of tries per effect
	MaxAttempts int

	// RetryDelay is the pause between tries
	RetryDelay time.Duration
}

// SendInput is a single outbound message
type SendInput struct {
	RecipientID string
	Text        string
	MediaURL    string
}

// SendOutput identifies the sent message on the transport
type SendOutput struct {
	Handle string
}

// DeliverInput contains the effects to send
type DeliverInput struct {
	Effects []*models.Effect
}

// Receipt records a delivered effect
type Receipt struct {
	ID       string
	Effect   *models.Effect
	Handle   string
	Attempts int
}

// Failure records an effect that could not be delivered
type Failure struct {
	ID       string
	Effect   *models.Effect
	Err      error
	Attempts int
}

// DeliverOutput contains the result of a delivery run
type DeliverOutput struct {
	Delivered []*Receipt
	Failed    []*Failure
}
