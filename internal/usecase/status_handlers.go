package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"bsm-service/internal/domain/entity"
	"bsm-service/internal/domain/repository"
	"bsm-service/pkg/bsm"
	"bsm-service/pkg/logger"
)

// ErrNoTagNumber is returned for messages that carry no bag tag to key the record on
var ErrNoTagNumber = errors.New("message has no tag number")

// UpsertHandler stores the bag state for ADD and CHG messages
type UpsertHandler struct {
	repo     repository.BaggageMessageRepository
	logger   logger.Logger
	statuses []bsm.ChangeOfStatus
}

// NewUpsertHandler creates a handler for ADD and CHG messages
func NewUpsertHandler(repo repository.BaggageMessageRepository, logger logger.Logger) *UpsertHandler {
	return &UpsertHandler{
		repo:     repo,
		logger:   logger,
		statuses: []bsm.ChangeOfStatus{bsm.Add, bsm.Change},
	}
}

// CanHandle checks if this handler can process the change of status
func (h *UpsertHandler) CanHandle(status bsm.ChangeOfStatus) bool {
	return slices.Contains(h.statuses, status)
}

// Handle upserts the record keyed by the first tag number
func (h *UpsertHandler) Handle(ctx context.Context, frame *bsm.Frame) error {
	record := entity.NewBaggageMessage(frame.Message)
	if record.TagNumber == "" {
		return ErrNoTagNumber
	}

	if err := h.repo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to upsert bag %s: %w", record.TagNumber, err)
	}

	h.logger.Debug("Bag stored", "tag", record.TagNumber, "status", record.ChangeOfStatus, "valid", record.Valid)
	return nil
}

// String names the handler in logs
func (h *UpsertHandler) String() string {
	return "upsert"
}

// DeleteHandler removes the bag state for DEL messages
type DeleteHandler struct {
	repo   repository.BaggageMessageRepository
	logger logger.Logger
}

// NewDeleteHandler creates a handler for DEL messages
func NewDeleteHandler(repo repository.BaggageMessageRepository, logger logger.Logger) *DeleteHandler {
	return &DeleteHandler{
		repo:   repo,
		logger: logger,
	}
}

// CanHandle checks if this handler can process the change of status
func (h *DeleteHandler) CanHandle(status bsm.ChangeOfStatus) bool {
	return status == bsm.Delete
}

// Handle deletes the record keyed by the first tag number. Deleting an unknown bag is not an error.
func (h *DeleteHandler) Handle(ctx context.Context, frame *bsm.Frame) error {
	m := frame.Message
	if m.Tags == nil || len(m.Tags.TagNumbers) == 0 {
		return ErrNoTagNumber
	}
	tag := m.Tags.TagNumbers[0]

	err := h.repo.DeleteByTagNumber(ctx, tag)
	if errors.Is(err, repository.ErrNotFound) {
		h.logger.Debug("Delete for unknown bag", "tag", tag)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete bag %s: %w", tag, err)
	}

	h.logger.Debug("Bag deleted", "tag", tag)
	return nil
}

// String names the handler in logs
func (h *DeleteHandler) String() string {
	return "delete"
}
