package repository

import (
	"context"

	"bsm-service/internal/domain/entity"
)

// AirportRepository defines the interface for airport operations
type AirportRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Airport, error)
	ListDestinations(ctx context.Context) ([]*entity.Airport, error)
}
