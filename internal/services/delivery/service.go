package delivery

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/KirkDiggler/sketchphone/internal/common/uuid"
	"github.com/KirkDiggler/sketchphone/internal/models"
)

type service struct {
	sender        Sender
	uuidGenerator uuid.UUID
	maxAttempts   int
	retryDelay    time.Duration
}

// New creates a new delivery service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	retryDelay := cfg.RetryDelay
	if retryDelay < 0 {
		retryDelay = 0
	} else if retryDelay == 0 {
		retryDelay = DefaultRetryDelay
	}

	return &service{
		sender:        cfg.Sender,
		uuidGenerator: cfg.UUIDGenerator,
		maxAttempts:   maxAttempts,
		retryDelay:    retryDelay,
	}, nil
}

// Deliver sends every effect, retrying each one independently
func (s *service) Deliver(ctx context.Context, input *DeliverInput) (*DeliverOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &DeliverOutput{
		Delivered: make([]*Receipt, 0, len(input.Effects)),
	}

	for _, effect := range input.Effects {
		if effect == nil {
			continue
		}

		id := s.uuidGenerator.NewUUID()
		handle, attempts, err := s.send(ctx, effect)
		if err != nil {
			log.Printf("Delivery %s of %s to %s for game %s failed after %d attempts: %v",
				id, effect.Kind, effect.RecipientID, effect.GameID, attempts, err)
			output.Failed = append(output.Failed, &Failure{
				ID:       id,
				Effect:   effect,
				Err:      err,
				Attempts: attempts,
			})
			continue
		}

		output.Delivered = append(output.Delivered, &Receipt{
			ID:       id,
			Effect:   effect,
			Handle:   handle,
			Attempts: attempts,
		})
	}

	return output, nil
}

func (s *service) send(ctx context.Context, effect *models.Effect) (string, int, error) {
	input := &SendInput{
		RecipientID: effect.RecipientID,
		Text:        effect.Text,
		MediaURL:    effect.MediaURL,
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if attempt > 1 {
			timer := time.NewTimer(s.retryDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return "", attempt - 1, errors.Join(lastErr, ctx.Err())
			case <-timer.C:
			}
		}

		sent, err := s.sender.Send(ctx, input)
		if err == nil {
			return sent.Handle, attempt, nil
		}
		lastErr = err
	}

	return "", s.maxAttempts, lastErr
}
