package usecase

import (
	"context"
	"errors"
	"time"

	"bsm-service/internal/infrastructure/tcp"
	"bsm-service/pkg/bsm"
	"bsm-service/pkg/logger"
	"bsm-service/pkg/metrics"
)

// Receiver is the client side of the Type-B transport
type Receiver interface {
	Connect(ctx context.Context, addr string) error
	IsConnected() bool
	ReceiveAndParse(ctx context.Context) ([]*bsm.Frame, error)
	Disconnect() error
}

// ReceiveWorker keeps a client connected to the server and processes what it receives
type ReceiveWorker struct {
	client    Receiver
	addr      string
	interval  time.Duration
	processor *MessageProcessor
	logger    logger.Logger
	metrics   *metrics.Metrics
}

// NewReceiveWorker creates a new receive worker
func NewReceiveWorker(client Receiver, addr string, interval time.Duration, processor *MessageProcessor, logger logger.Logger, metrics *metrics.Metrics) *ReceiveWorker {
	return &ReceiveWorker{
		client:    client,
		addr:      addr,
		interval:  interval,
		processor: processor,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run receives every interval until ctx is done, then disconnects
func (w *ReceiveWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := w.client.Disconnect(); err != nil {
				w.logger.Warn("Receiver disconnect failed", "error", err)
			}
			w.logger.Info("Receive worker stopped")
			return nil
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick connects if needed, then processes every complete message received since the last tick
func (w *ReceiveWorker) Tick(ctx context.Context) {
	if !w.client.IsConnected() {
		if err := w.client.Connect(ctx, w.addr); err != nil {
			w.logger.Warn("Receiver failed to connect", "addr", w.addr, "error", err)
			w.countError("connect")
			return
		}
		w.logger.Info("Receiver connected", "addr", w.addr)
	}

	frames, err := w.client.ReceiveAndParse(ctx)
	for _, frame := range frames {
		// failures are logged and counted by the processor
		_ = w.processor.Process(ctx, frame)
	}

	switch {
	case err == nil:
	case errors.Is(err, tcp.ErrBufferOverflow):
		w.logger.Warn("Receive buffer overflow, pending bytes dropped")
		w.countError("receive")
	case errors.Is(err, tcp.ErrNotConnected):
		w.logger.Warn("Receiver lost connection", "addr", w.addr, "error", err)
		w.countError("receive")
	case ctx.Err() != nil:
	default:
		w.logger.Error("Receive failed", "error", err)
		w.countError("receive")
	}
}

func (w *ReceiveWorker) countError(operation string) {
	if w.metrics != nil {
		w.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}
