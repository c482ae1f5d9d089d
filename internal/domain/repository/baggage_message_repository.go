package repository

import (
	"context"
	"errors"

	"bsm-service/internal/domain/entity"
)

// ErrNotFound is returned when no record matches the lookup key
var ErrNotFound = errors.New("record not found")

// BaggageMessageRepository defines the interface for stored baggage messages
type BaggageMessageRepository interface {
	FindByTagNumber(ctx context.Context, tagNumber string) (*entity.BaggageMessage, error)
	Upsert(ctx context.Context, record *entity.BaggageMessage) error
	DeleteByTagNumber(ctx context.Context, tagNumber string) error
}
