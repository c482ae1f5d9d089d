package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bsm-service/pkg/bsm"
	"bsm-service/pkg/logger"
	"bsm-service/pkg/metrics"
)

// MessageProcessor validates, logs and routes every received message
type MessageProcessor struct {
	router  StatusRouter
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewMessageProcessor creates a new message processor. A nil router only logs; nil metrics are not recorded.
func NewMessageProcessor(router StatusRouter, logger logger.Logger, metrics *metrics.Metrics) *MessageProcessor {
	return &MessageProcessor{
		router:  router,
		logger:  logger,
		metrics: metrics,
	}
}

// Process handles one received message. Handler failures are logged and returned
// so the caller can keep draining the stream.
func (p *MessageProcessor) Process(ctx context.Context, frame *bsm.Frame) error {
	start := time.Now()
	if p.metrics != nil {
		p.metrics.MessagesReceived.Inc()
		defer func() { p.metrics.ProcessingTime.Observe(time.Since(start).Seconds()) }()
	}

	text := string(frame.Bytes())
	if issues := frame.Validate(); len(issues) > 0 {
		details := make([]string, 0, len(issues))
		for _, issue := range issues {
			details = append(details, issue.String())
		}
		p.logger.Warn("Received invalid BSM", "message", text, "issues", details)
		if p.metrics != nil {
			p.metrics.InvalidMessages.Inc()
		}
	} else {
		p.logger.Info("Received valid BSM", "message", text)
	}

	if p.router == nil {
		return nil
	}

	status := frame.Message.ChangeOfStatus
	handler := p.router.GetHandler(status)
	if handler == nil {
		p.logger.Debug("No handler found for message", "status", status)
		return nil
	}

	if err := handler.Handle(ctx, frame); err != nil {
		if errors.Is(err, ErrNoTagNumber) {
			p.logger.Warn("Skipping message without tag number", "status", status)
			return nil
		}

		p.logger.Error("Handler failed to process message",
			"handler", fmt.Sprintf("%v", handler),
			"status", status,
			"error", err)
		if p.metrics != nil {
			p.metrics.ErrorsCount.WithLabelValues("process").Inc()
		}
		return err
	}

	return nil
}
