package usecase

import (
	"context"

	"bsm-service/pkg/bsm"
)

// StatusHandler defines the interface for change-of-status handlers
type StatusHandler interface {
	// CanHandle determines if this handler acts on the given change of status
	CanHandle(status bsm.ChangeOfStatus) bool

	// Handle applies the message to the stored bag state
	Handle(ctx context.Context, frame *bsm.Frame) error
}

// StatusRouter routes messages to the appropriate handler based on change of status
type StatusRouter interface {
	// Register registers a handler
	Register(handler StatusHandler)

	// GetHandler returns the first handler that accepts the change of status
	GetHandler(status bsm.ChangeOfStatus) StatusHandler
}
