package delivery

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go github.com/KirkDiggler/sketchphone/internal/services/delivery Sender
//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/sketchphone/internal/services/delivery Service

// Sender puts one message in front of one player
type Sender interface {
	Send(ctx context.Context, input *SendInput) (*SendOutput, error)
}

// Service executes the effects produced by game transitions
type Service interface {
	// Deliver sends effects in order. Failures are reported in the output, never rolled back.
	Deliver(ctx context.Context, input *DeliverInput) (*DeliverOutput, error)
}
