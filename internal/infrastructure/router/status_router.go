package router

import (
	"bsm-service/internal/usecase"
	"bsm-service/pkg/bsm"
	"bsm-service/pkg/logger"
)

// StatusRouter routes messages to appropriate handlers based on change of status
type StatusRouter struct {
	handlers []usecase.StatusHandler
	logger   logger.Logger
}

// NewStatusRouter creates a new status router
func NewStatusRouter(logger logger.Logger) *StatusRouter {
	return &StatusRouter{
		handlers: make([]usecase.StatusHandler, 0),
		logger:   logger,
	}
}

// Register registers a handler. Handlers are tried in registration order.
func (r *StatusRouter) Register(handler usecase.StatusHandler) {
	r.handlers = append(r.handlers, handler)
	r.logger.Info("Registered handler", "handler", handler)
}

// GetHandler returns the appropriate handler for a given change of status
func (r *StatusRouter) GetHandler(status bsm.ChangeOfStatus) usecase.StatusHandler {
	for _, handler := range r.handlers {
		if handler.CanHandle(status) {
			return handler
		}
	}
	return nil
}
