package usecase

import (
	"context"
	"time"

	"bsm-service/internal/infrastructure/tcp"
	"bsm-service/pkg/bsm"
	"bsm-service/pkg/logger"
	"bsm-service/pkg/metrics"
)

// Broadcaster is the server side of the Type-B transport
type Broadcaster interface {
	ConnectionCount() int
	SendToAll(ctx context.Context, frame tcp.Frame) int
	StaleConnections() []string
	Disconnect(ids ...string) int
}

// BroadcastWorker periodically generates a message and sends it to every connected client
type BroadcastWorker struct {
	server    Broadcaster
	generator *bsm.Generator
	interval  time.Duration
	logger    logger.Logger
	metrics   *metrics.Metrics
}

// NewBroadcastWorker creates a new broadcast worker. It is the only caller of the generator.
func NewBroadcastWorker(server Broadcaster, generator *bsm.Generator, interval time.Duration, logger logger.Logger, metrics *metrics.Metrics) *BroadcastWorker {
	return &BroadcastWorker{
		server:    server,
		generator: generator,
		interval:  interval,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run broadcasts every interval until ctx is done
func (w *BroadcastWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Broadcast worker stopped")
			return nil
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick sends one generated message when clients are connected, then drops stale connections
func (w *BroadcastWorker) Tick(ctx context.Context) {
	connected := w.server.ConnectionCount()
	if connected > 0 {
		m := w.generator.Generate()
		sent := w.server.SendToAll(ctx, bsm.NewFrame(m))

		w.logger.Info("Sent BSM", "tag", m.Tags.TagNumbers[0], "flight", m.Flight.Airline+m.Flight.FlightNumber, "clients", sent)
		if w.metrics != nil {
			w.metrics.MessagesSent.Add(float64(sent))
			if failed := connected - sent; failed > 0 {
				w.metrics.ErrorsCount.WithLabelValues("send").Add(float64(failed))
			}
		}
	}

	if stale := w.server.StaleConnections(); len(stale) > 0 {
		closed := w.server.Disconnect(stale...)
		w.logger.Info("Disconnected stale clients", "count", closed)
		if w.metrics != nil {
			w.metrics.StaleConnections.Add(float64(closed))
		}
	}

	if w.metrics != nil {
		w.metrics.ConnectionsActive.Set(float64(w.server.ConnectionCount()))
	}
}
