package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"bsm-service/internal/domain/entity"
	"bsm-service/internal/domain/repository"
)

// MemoryBaggageMessageRepository keeps baggage messages in process memory.
// It backs the service when no MongoDB DSN is configured.
type MemoryBaggageMessageRepository struct {
	mu      sync.RWMutex
	records map[string]entity.BaggageMessage
}

// NewMemoryBaggageMessageRepository creates an empty in-memory repository
func NewMemoryBaggageMessageRepository() *MemoryBaggageMessageRepository {
	return &MemoryBaggageMessageRepository{
		records: make(map[string]entity.BaggageMessage),
	}
}

var _ repository.BaggageMessageRepository = (*MemoryBaggageMessageRepository)(nil)

// FindByTagNumber returns a copy of the stored record
func (r *MemoryBaggageMessageRepository) FindByTagNumber(ctx context.Context, tagNumber string) (*entity.BaggageMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[tagNumber]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &record, nil
}

// Upsert creates or replaces the record keyed by its tag number
func (r *MemoryBaggageMessageRepository) Upsert(ctx context.Context, record *entity.BaggageMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	record.UpdatedAt = now
	if existing, ok := r.records[record.TagNumber]; ok {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	} else {
		record.ID = uuid.NewString()
		record.CreatedAt = now
	}

	r.records[record.TagNumber] = *record
	return nil
}

// DeleteByTagNumber removes the record keyed by tagNumber
func (r *MemoryBaggageMessageRepository) DeleteByTagNumber(ctx context.Context, tagNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[tagNumber]; !ok {
		return repository.ErrNotFound
	}
	delete(r.records, tagNumber)
	return nil
}

// Len returns the number of stored records
func (r *MemoryBaggageMessageRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
